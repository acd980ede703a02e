// Package config loads a declarative scene description in YAML format and
// populates a physics.World from it.
//
// Adapted from gui.Builder's ParseString/YAML-struct-tag pattern in
// g3n-engine (itself built on gopkg.in/yaml.v2): a description is
// unmarshalled into a plain Go struct tree with one field per scene
// attribute, then walked to construct the real domain objects, rather
// than hand-rolling a parser.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/mcp-tool-shop-org/tablesim/body"
	"github.com/mcp-tool-shop-org/tablesim/constraint"
	"github.com/mcp-tool-shop-org/tablesim/forcefield"
	"github.com/mcp-tool-shop-org/tablesim/physics"
	"github.com/mcp-tool-shop-org/tablesim/vecmath"
)

// Scene is the root of a parsed scene description.
type Scene struct {
	GravityX, GravityY float32
	Substeps           int `yaml:"substeps,omitempty"`
	VelocityIterations int `yaml:"velocityIterations,omitempty"`

	Bounds      *BoundsDesc      `yaml:"bounds,omitempty"`
	ForceFields []ForceFieldDesc `yaml:"forceFields,omitempty"`
	Bodies      []BodyDesc       `yaml:"bodies"`
	Constraints []ConstraintDesc `yaml:"constraints,omitempty"`
}

// BoundsDesc describes a World's optional play-area rectangle.
type BoundsDesc struct {
	MinX float32 `yaml:"minX"`
	MinY float32 `yaml:"minY"`
	MaxX float32 `yaml:"maxX"`
	MaxY float32 `yaml:"maxY"`
}

// ForceFieldDesc describes one force field. Kind selects which other
// fields are meaningful, mirroring forcefield.ForceField's tagged union.
type ForceFieldDesc struct {
	Kind        string // gravity | drag | wind | attraction
	X, Y        float32
	Strength    float32
	Coefficient float32
	Falloff     string // none | linear | quadratic
}

// ShapeDesc describes a body's shape. Kind selects which other fields are
// meaningful, mirroring body.Shape's tagged union.
type ShapeDesc struct {
	Kind          string // circle | rect
	Radius        float32
	Width, Height float32
}

// BodyDesc describes one body. Zero-valued Restitution/Friction/Shape are
// left to body.New's defaults by leaving the corresponding pointer nil.
type BodyDesc struct {
	ID          string
	X, Y        float32
	VX, VY      float32
	Mass        float32
	IsStatic    bool     `yaml:"isStatic"`
	Restitution *float32 `yaml:"restitution,omitempty"`
	Friction    *float32 `yaml:"friction,omitempty"`
	Shape       *ShapeDesc `yaml:"shape,omitempty"`
}

// ConstraintDesc describes one constraint between two bodies, named by ID.
// A zero-valued Length is left to constraint.New's defaults by leaving the
// pointer nil, so an author who omits it gets the pair's initial anchor
// distance instead of rest length zero.
type ConstraintDesc struct {
	ID               string
	Kind             string // spring | distance | pin | hinge
	BodyA            string `yaml:"bodyA"`
	BodyB            string `yaml:"bodyB"`
	AnchorAX, AnchorAY float32
	AnchorBX, AnchorBY float32
	Stiffness        float32
	Damping          float32
	Length           *float32 `yaml:"length,omitempty"`
}

// Parse unmarshals a YAML scene description.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: parse scene: %w", err)
	}
	return &s, nil
}

// ParseFile reads and parses a scene description from path.
func ParseFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read scene file: %w", err)
	}
	return Parse(data)
}

// Build constructs a fresh physics.World from s.
func (s *Scene) Build() (*physics.World, error) {
	w := physics.NewWorld()

	w.Gravity = vecmath.NewVector2(s.GravityX, s.GravityY)
	if s.Substeps > 0 {
		w.Substeps = s.Substeps
	}
	if s.VelocityIterations > 0 {
		w.VelocityIterations = s.VelocityIterations
	}

	if s.Bounds != nil {
		w.Bounds = &physics.Bounds{
			Min: vecmath.NewVector2(s.Bounds.MinX, s.Bounds.MinY),
			Max: vecmath.NewVector2(s.Bounds.MaxX, s.Bounds.MaxY),
		}
	}

	for _, fd := range s.ForceFields {
		f, err := fd.build()
		if err != nil {
			return nil, err
		}
		w.AddForceField(f)
	}

	for _, bd := range s.Bodies {
		b, err := bd.build()
		if err != nil {
			return nil, err
		}
		w.AddBody(b)
	}

	for _, cd := range s.Constraints {
		c, err := cd.build()
		if err != nil {
			return nil, err
		}
		w.AddConstraint(c)
	}

	return w, nil
}

func (fd ForceFieldDesc) build() (forcefield.ForceField, error) {
	switch fd.Kind {
	case "", "gravity":
		return forcefield.NewGravity(vecmath.NewVector2(fd.X, fd.Y)), nil
	case "drag":
		return forcefield.NewDrag(fd.Coefficient), nil
	case "wind":
		return forcefield.NewWind(vecmath.NewVector2(fd.X, fd.Y), fd.Strength), nil
	case "attraction":
		falloff := forcefield.FalloffNone
		switch fd.Falloff {
		case "linear":
			falloff = forcefield.FalloffLinear
		case "quadratic":
			falloff = forcefield.FalloffQuadratic
		}
		return forcefield.NewAttraction(vecmath.NewVector2(fd.X, fd.Y), fd.Strength, falloff), nil
	default:
		return forcefield.ForceField{}, fmt.Errorf("config: unknown force field kind %q", fd.Kind)
	}
}

func (bd BodyDesc) build() (*body.Body, error) {
	var shape *body.Shape
	if bd.Shape != nil {
		s, err := bd.Shape.build()
		if err != nil {
			return nil, err
		}
		shape = &s
	}

	return body.New(body.Def{
		ID:          bd.ID,
		Position:    vecmath.NewVector2(bd.X, bd.Y),
		Velocity:    vecmath.NewVector2(bd.VX, bd.VY),
		Mass:        bd.Mass,
		IsStatic:    bd.IsStatic,
		Restitution: bd.Restitution,
		Friction:    bd.Friction,
		Shape:       shape,
	}), nil
}

func (sd ShapeDesc) build() (body.Shape, error) {
	switch sd.Kind {
	case "", "circle":
		return body.NewCircle(sd.Radius), nil
	case "rect":
		return body.NewRect(sd.Width, sd.Height), nil
	default:
		return body.Shape{}, fmt.Errorf("config: unknown shape kind %q", sd.Kind)
	}
}

func (cd ConstraintDesc) build() (constraint.Constraint, error) {
	kind, err := parseConstraintKind(cd.Kind)
	if err != nil {
		return constraint.Constraint{}, err
	}
	return constraint.New(constraint.Def{
		ID:      cd.ID,
		Kind:    kind,
		BodyA:   cd.BodyA,
		BodyB:   cd.BodyB,
		AnchorA: vecmath.NewVector2(cd.AnchorAX, cd.AnchorAY),
		AnchorB: vecmath.NewVector2(cd.AnchorBX, cd.AnchorBY),
		Stiffness: cd.Stiffness,
		Damping:   cd.Damping,
		Length:    cd.Length,
	}), nil
}

func parseConstraintKind(k string) (constraint.Kind, error) {
	switch k {
	case "", "spring":
		return constraint.Spring, nil
	case "distance":
		return constraint.Distance, nil
	case "pin":
		return constraint.Pin, nil
	case "hinge":
		return constraint.Hinge, nil
	default:
		return 0, fmt.Errorf("config: unknown constraint kind %q", k)
	}
}
