package scene

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ogeom/oerror"
	"github.com/oomph-ac/ogeom/omath"
	"github.com/pelletier/go-toml/v2"
)

const (
	AngleUnitRadians = "radians"
	AngleUnitDegrees = "degrees"
)

// Scene is a transform composed from a list of steps, together with the named points it should be
// applied to.
type Scene struct {
	// Transform is the product of every step, with the first step applied first.
	Transform omath.Matrix
	// Steps holds the matrix of each individual step in file order.
	Steps []omath.Matrix
	// Points holds the untransformed points keyed by name, in the order they were declared.
	Points *orderedmap.OrderedMap[string, omath.Vector3]
}

// file mirrors the TOML layout of a scene file.
type file struct {
	Angles         string  `toml:"angles"`
	Orthonormalize bool    `toml:"orthonormalize"`
	Steps          []step  `toml:"step"`
	Points         []point `toml:"point"`
}

type step struct {
	Euler   *[3]float32    `toml:"euler"`
	RotateX *float32       `toml:"rotate_x"`
	RotateY *float32       `toml:"rotate_y"`
	RotateZ *float32       `toml:"rotate_z"`
	Scale   *[3]float32    `toml:"scale"`
	Basis   *[3][3]float32 `toml:"basis"`
}

type point struct {
	Name string     `toml:"name"`
	At   [3]float32 `toml:"at"`
}

// Load reads and decodes the scene file at path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, oerror.Wrap(err, "unable to read scene %s", path)
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes a scene from r. Unknown keys, steps with zero or several transforms and duplicate
// point names are rejected.
func Decode(r io.Reader) (Scene, error) {
	var f file
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		return Scene{}, oerror.Wrap(err, "unable to decode scene")
	}

	var toRadians func(float32) float32
	switch strings.ToLower(f.Angles) {
	case "", AngleUnitRadians:
		toRadians = func(a float32) float32 { return a }
	case AngleUnitDegrees:
		toRadians = mgl32.DegToRad
	default:
		return Scene{}, oerror.New("unknown angle unit %q, expected %q or %q", f.Angles, AngleUnitRadians, AngleUnitDegrees)
	}

	s := Scene{
		Transform: omath.Identity(),
		Steps:     make([]omath.Matrix, 0, len(f.Steps)),
		Points:    orderedmap.NewOrderedMap[string, omath.Vector3](),
	}
	for i, st := range f.Steps {
		m, err := st.matrix(toRadians)
		if err != nil {
			return Scene{}, oerror.Wrap(err, "step %d", i+1)
		}
		s.Steps = append(s.Steps, m)
		// Each step is applied after the ones before it.
		s.Transform = m.Mul(s.Transform)
	}
	if f.Orthonormalize {
		s.Transform.Orthonormalize()
	}

	for i, p := range f.Points {
		if p.Name == "" {
			return Scene{}, oerror.New("point %d has no name", i+1)
		}
		if !s.Points.Set(p.Name, omath.Vector3(p.At)) {
			return Scene{}, oerror.New("duplicate point %q", p.Name)
		}
	}
	return s, nil
}

// Apply returns every point transformed by the scene's transform, in declaration order.
func (s Scene) Apply() *orderedmap.OrderedMap[string, omath.Vector3] {
	out := orderedmap.NewOrderedMap[string, omath.Vector3]()
	for el := s.Points.Front(); el != nil; el = el.Next() {
		out.Set(el.Key, s.Transform.Transform(el.Value))
	}
	return out
}

// matrix returns the transform described by the step, which must set exactly one key.
func (st step) matrix(toRadians func(float32) float32) (omath.Matrix, error) {
	var (
		m   omath.Matrix
		set int
	)
	if st.Euler != nil {
		m = omath.FromEulerAngles(toRadians(st.Euler[0]), toRadians(st.Euler[1]), toRadians(st.Euler[2]))
		set++
	}
	if st.RotateX != nil {
		m = omath.RotationX(toRadians(*st.RotateX))
		set++
	}
	if st.RotateY != nil {
		m = omath.RotationY(toRadians(*st.RotateY))
		set++
	}
	if st.RotateZ != nil {
		m = omath.RotationZ(toRadians(*st.RotateZ))
		set++
	}
	if st.Scale != nil {
		m = omath.ScaleVec(omath.Vector3(*st.Scale))
		set++
	}
	if st.Basis != nil {
		m = omath.NewMatrix(omath.Vector3(st.Basis[0]), omath.Vector3(st.Basis[1]), omath.Vector3(st.Basis[2]))
		set++
	}

	switch set {
	case 0:
		return omath.Matrix{}, oerror.New("no transform given")
	case 1:
		return m, nil
	default:
		return omath.Matrix{}, oerror.New("%d transforms given, expected exactly one", set)
	}
}
