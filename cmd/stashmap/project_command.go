package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stashmap/internal/worldmap"
)

func newProjectCommand() *cobra.Command {
	var mapIndex int

	cmd := &cobra.Command{
		Use:         "project <x> <z>",
		Short:       "Project world coordinates to map texture pixels",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse x %q: %w", args[0], err)
			}
			z, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse z %q: %w", args[1], err)
			}
			tr, ok := worldmap.ForIndex(mapIndex)
			if !ok {
				return fmt.Errorf("map index must be 0..%d", len(worldmap.Maps)-1)
			}

			px, pz := tr.ConvertX(x), tr.ConvertZ(z)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%gx%g texture)\n", worldmap.Name(mapIndex), tr.TexW, tr.TexH)
			fmt.Fprintf(out, "world (%g, %g) -> pixel (%.1f, %.1f)\n", x, z, px, pz)
			if !tr.InBounds(px, pz) {
				fmt.Fprintln(out, statusLine(statusWarn, "projected point falls outside the texture"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&mapIndex, "map", "m", 0, "Map index (0=Lumiose City, 1=Lysandre Labs, 2=The Sewers, 3=The Sewers B)")
	return cmd
}
