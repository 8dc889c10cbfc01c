package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stashmap/internal/spawner"
	"stashmap/internal/worldmap"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Spawner catalog utilities",
	}

	catalogCmd.AddCommand(newCatalogStatsCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))

	return catalogCmd
}

func (c *commandContext) loadCatalog() (*spawner.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}
	catalog := spawner.NewCatalog()
	if err := catalog.LoadStandard(cfg.SpawnerFiles(), logger); err != nil {
		return nil, err
	}
	return catalog, nil
}

func newCatalogStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the loaded spawner catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(worldmap.Names)+1)
			for mapIndex := range worldmap.Names {
				rows = append(rows, []string{
					worldmap.Name(mapIndex),
					strconv.Itoa(len(catalog.ByMap(mapIndex))),
				})
			}
			rows = append(rows, []string{"Total (distinct)", strconv.Itoa(catalog.Len())})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Map", "Spawners"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			if skipped := catalog.Skipped(); skipped > 0 {
				fmt.Fprintln(out, statusLine(statusWarn, fmt.Sprintf("%d malformed catalog lines skipped", skipped)))
			}
			return nil
		},
	}
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var mapIndex int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spawner locations for one map",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mapIndex < 0 || mapIndex >= len(worldmap.Names) {
				return fmt.Errorf("map index must be 0..%d", len(worldmap.Names)-1)
			}
			catalog, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			locations := catalog.ByMap(mapIndex)
			collator := collate.New(language.English)
			sort.SliceStable(locations, func(i, j int) bool {
				return collator.CompareString(locations[i].Name, locations[j].Name) < 0
			})

			rows := make([][]string, 0, len(locations))
			for _, location := range locations {
				rows = append(rows, []string{
					location.Name,
					fmt.Sprintf("%016X", location.Hash),
					fmt.Sprintf("(%.1f, %.1f, %.1f)", location.X, location.Y, location.Z),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d spawners\n", worldmap.Name(mapIndex), len(locations))
			fmt.Fprintln(out, renderTable(
				[]string{"Location", "Hash", "World"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&mapIndex, "map", "m", 0, "Map index (0=Lumiose City, 1=Lysandre Labs, 2=The Sewers, 3=The Sewers B)")
	return cmd
}
