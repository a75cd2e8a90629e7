package main

import (
	"github.com/oomph-ac/ogeom/scene"
	"github.com/oomph-ac/ogeom/worker"
	"github.com/spf13/cobra"
)

func newSceneCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scene FILE...",
		Short: "Apply TOML transform scenes to their points",
		Long: `Load every scene file, compose its steps in file order and print the resulting
basis followed by each named point after the transform. Scenes are printed in the
order they were given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes := make([]scene.Scene, len(args))
			errs := make([]error, len(args))
			worker.Each(len(args), func(i int) {
				scenes[i], errs[i] = scene.Load(args[i])
			})
			for _, err := range errs {
				if err != nil {
					return err
				}
			}

			r := newReport(opts)
			for i, s := range scenes {
				opts.log.Debug("loaded scene", "path", args[i], "steps", len(s.Steps), "points", s.Points.Len())
				if i > 0 {
					r.blank()
				}
				r.field("scene", "%s", args[i])
				r.matrix(s.Transform)
				for el := s.Apply().Front(); el != nil; el = el.Next() {
					r.vector(el.Key, el.Value)
				}
			}
			return r.flush(cmd.OutOrStdout())
		},
	}
}
