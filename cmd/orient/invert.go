package main

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/ogeom/oerror"
	"github.com/oomph-ac/ogeom/omath"
	"github.com/spf13/cobra"
)

func newInvertCommand(opts *options) *cobra.Command {
	var basis []float32
	cmd := &cobra.Command{
		Use:   "invert --basis r1,r2,r3,u1,u2,u3,f1,f2,f3",
		Short: "Invert a 3x3 basis",
		Long: `Invert the basis given as its right, up and forward columns. A basis whose
determinant is below 1e-6 in magnitude has no usable inverse and the identity is
printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(basis) != 9 {
				return oerror.New("--basis needs 9 values, got %d", len(basis))
			}
			m := omath.NewMatrix(
				omath.NewVector3(basis[0], basis[1], basis[2]),
				omath.NewVector3(basis[3], basis[4], basis[5]),
				omath.NewVector3(basis[6], basis[7], basis[8]),
			)
			det := m.Determinant()
			singular := math32.Abs(det) < omath.Epsilon
			opts.log.Debug("inverting basis", "determinant", det)
			if singular {
				opts.log.Warn("basis is singular, printing the identity", "determinant", det)
			}

			r := newReport(opts)
			r.number("determinant", det)
			r.field("singular", "%t", singular)
			r.blank()
			r.matrix(m.Inverse())
			return r.flush(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float32SliceVar(&basis, "basis", nil, "the nine basis components, column by column")
	_ = cmd.MarkFlagRequired("basis")
	return cmd
}
