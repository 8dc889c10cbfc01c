package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stashmap/internal/dex"
)

func newDexCommand(ctx *commandContext) *cobra.Command {
	dexCmd := &cobra.Command{
		Use:   "dex",
		Short: "Species lookup utilities",
	}

	dexCmd.AddCommand(newDexNationalCommand(ctx))
	dexCmd.AddCommand(newDexFindCommand(ctx))

	return dexCmd
}

func (c *commandContext) loadNames() (*dex.Names, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	names, err := dex.LoadNames(cfg.SpeciesPath())
	if err != nil {
		return nil, fmt.Errorf("load species names: %w", err)
	}
	return names, nil
}

func newDexNationalCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "national <internal-ordinal>",
		Short: "Convert an internal species ordinal to its national dex number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ordinal, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return fmt.Errorf("parse ordinal %q: %w", args[0], err)
			}
			names, err := ctx.loadNames()
			if err != nil {
				return err
			}

			national := dex.ToNational(uint16(ordinal))
			fmt.Fprintf(cmd.OutOrStdout(), "internal %d -> national %d (%s)\n",
				ordinal, national, names.Name(national))
			return nil
		},
	}
}

func newDexFindCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Look up a species by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			names, err := ctx.loadNames()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if national, ok := names.Find(query); ok {
				fmt.Fprintf(out, "%s is national dex #%d\n", names.Name(national), national)
				return nil
			}

			suggestions := names.ClosestMatches(query, 3)
			if len(suggestions) == 0 {
				return fmt.Errorf("no species named %q", query)
			}
			return fmt.Errorf("no species named %q (did you mean %s?)",
				query, strings.Join(suggestions, ", "))
		},
	}
}
