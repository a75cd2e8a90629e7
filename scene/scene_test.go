package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/oomph-ac/ogeom/oerror"
	"github.com/oomph-ac/ogeom/omath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const turret = `
angles = "degrees"

[[step]]
scale = [2.0, 2.0, 2.0]

[[step]]
rotate_y = 90.0

[[point]]
name = "muzzle"
at = [0.0, 0.0, 1.0]

[[point]]
name = "base"
at = [0.0, 0.0, 0.0]

[[point]]
name = "sight"
at = [0.0, 1.0, 0.5]
`

func TestDecodeComposesInFileOrder(t *testing.T) {
	s, err := Decode(strings.NewReader(turret))
	require.NoError(t, err)
	require.Len(t, s.Steps, 2)

	want := omath.RotationY(math32.Pi / 2).Mul(omath.Scale(2, 2, 2))
	assert.True(t, s.Transform.Equal(want), "transform %v, want %v", s.Transform, want)

	out := s.Apply()
	require.Equal(t, 3, out.Len())

	var names []string
	for el := out.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	assert.Equal(t, []string{"muzzle", "base", "sight"}, names)

	muzzle, ok := out.Get("muzzle")
	require.True(t, ok)
	assert.True(t, muzzle.IsNear(omath.Vector3{2, 0, 0}, 1e-5), "muzzle at %v", muzzle)

	sight, _ := out.Get("sight")
	assert.True(t, sight.IsNear(omath.Vector3{1, 2, 0}, 1e-5), "sight at %v", sight)
}

func TestDecodeStepKinds(t *testing.T) {
	tests := []struct {
		name string
		step string
		want omath.Matrix
	}{
		{"euler", "euler = [0.1, 0.2, 0.3]", omath.FromEulerAngles(0.1, 0.2, 0.3)},
		{"rotate x", "rotate_x = 0.5", omath.RotationX(0.5)},
		{"rotate z", "rotate_z = -1.25", omath.RotationZ(-1.25)},
		{"scale", "scale = [1.0, 0.5, 3.0]", omath.Scale(1, 0.5, 3)},
		{"basis", "basis = [[0.0, 1.0, 0.0], [-1.0, 0.0, 0.0], [0.0, 0.0, 1.0]]", omath.RotationZ(math32.Pi / 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader("[[step]]\n" + tt.step + "\n"))
			require.NoError(t, err)
			assert.True(t, s.Transform.Equal(tt.want), "got %v, want %v", s.Transform, tt.want)
			assert.Equal(t, 0, s.Points.Len())
		})
	}
}

func TestDecodeOrthonormalize(t *testing.T) {
	s, err := Decode(strings.NewReader(`
orthonormalize = true

[[step]]
basis = [[3.0, 0.0, 0.0], [1.0, 2.0, 0.0], [0.0, 0.0, -4.0]]
`))
	require.NoError(t, err)
	assert.True(t, s.Transform.IsIdentity(omath.Epsilon), "got %v", s.Transform)
}

func TestDecodeEmpty(t *testing.T) {
	s, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, omath.Identity(), s.Transform)
	assert.Equal(t, 0, s.Points.Len())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"empty step", "[[step]]\n", "no transform given"},
		{"two transforms", "[[step]]\nrotate_x = 1.0\nrotate_y = 1.0\n", "2 transforms given"},
		{"unknown key", "[[step]]\ntranslate = [1.0, 0.0, 0.0]\n", "unable to decode scene"},
		{"unknown unit", "angles = \"turns\"\n", "unknown angle unit"},
		{"duplicate point", "[[point]]\nname = \"a\"\n[[point]]\nname = \"a\"\n", "duplicate point"},
		{"unnamed point", "[[point]]\nat = [1.0, 2.0, 3.0]\n", "has no name"},
		{"malformed", "[[step]\n", "unable to decode scene"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)

			var oerr *oerror.OError
			assert.True(t, errors.As(err, &oerr))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turret.toml")
	require.NoError(t, os.WriteFile(path, []byte(turret), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Points.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
