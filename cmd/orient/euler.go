package main

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ogeom/oerror"
	"github.com/oomph-ac/ogeom/omath"
	"github.com/spf13/cobra"
)

func newEulerCommand(opts *options) *cobra.Command {
	var degrees bool
	cmd := &cobra.Command{
		Use:   "euler PITCH YAW ROLL",
		Short: "Build a basis from Euler angles and decompose it again",
		Long: `Build the rotation basis for PITCH (about x), YAW (about y) and ROLL (about z),
applied roll first, then pitch, then yaw. The basis is printed together with its
determinant and the angles recovered from it.`,
		Example: "  orient euler --degrees -- 30 -45 10",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var angles omath.Vector3
			for i, arg := range args {
				f, err := strconv.ParseFloat(arg, 32)
				if err != nil {
					return oerror.Wrap(err, "invalid angle %q", arg)
				}
				angles[i] = float32(f)
				if degrees {
					angles[i] = mgl32.DegToRad(angles[i])
				}
			}

			m := omath.FromEulerAnglesVec(angles)
			recovered := m.EulerAngles()
			locked := m.GimbalLocked()
			opts.log.Debug("built rotation", "pitch", angles[0], "yaw", angles[1], "roll", angles[2])
			if locked {
				opts.log.Warn("pitch is at ±90°, yaw and roll share an axis; roll is reported as 0")
			}

			if degrees {
				for i := range recovered {
					recovered[i] = mgl32.RadToDeg(recovered[i])
				}
			}

			r := newReport(opts)
			r.matrix(m)
			r.number("determinant", m.Determinant())
			r.vector("angles", recovered)
			r.field("gimbal lock", "%t", locked)
			return r.flush(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&degrees, "degrees", false, "angles are given and printed in degrees")
	return cmd
}
