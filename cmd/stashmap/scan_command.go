package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"stashmap/internal/console"
	"stashmap/internal/dex"
	"stashmap/internal/spawner"
	"stashmap/internal/stash"
	"stashmap/internal/worldmap"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var pixels bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Read the shiny stash from the connected console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			lock := flock.New(cfg.Scan.LockPath)
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire scan lock %s: %w", cfg.Scan.LockPath, err)
			}
			if !locked {
				return fmt.Errorf("another scan is already running (lock %s)", cfg.Scan.LockPath)
			}
			defer func() { _ = lock.Unlock() }()

			catalog := spawner.NewCatalog()
			if err := catalog.LoadStandard(cfg.SpawnerFiles(), logger); err != nil {
				return err
			}
			names, err := dex.LoadNames(cfg.SpeciesPath())
			if err != nil {
				return fmt.Errorf("load species names: %w", err)
			}

			connector, err := ctx.connector()
			if err != nil {
				return err
			}
			if !cfg.Console.ProbeOnConnect {
				connector = skipProbe{connector}
			}

			scanner := stash.NewScanner(connector, catalog, logger)
			result, err := scanner.Scan(cmd.Context())
			if errors.Is(err, stash.ErrEmptyResult) {
				out := cmd.OutOrStdout()
				if jsonOut {
					return writeJSON(cmd, newScanReport(result, names, pixels))
				}
				fmt.Fprintln(out, statusLine(statusWarn, result.Status))
				fmt.Fprintf(out, "Game version %s (build %s)\n", result.Version, result.BuildID)
				return nil
			}
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, newScanReport(result, names, pixels))
			}
			return renderScan(cmd, result, names, pixels)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the scan result as JSON")
	cmd.Flags().BoolVar(&pixels, "pixels", false, "Include projected map pixel coordinates")
	return cmd
}

// skipProbe disables the pre-connect reachability check when the config turns
// probing off, leaving connection errors to surface from Connect itself.
type skipProbe struct {
	console.Connector
}

func (skipProbe) Available(context.Context) bool { return true }

type scanReportEntry struct {
	Hash            string     `json:"hash"`
	Species         string     `json:"species"`
	NationalDex     uint16     `json:"national_dex"`
	SpeciesInternal uint16     `json:"species_internal"`
	Location        string     `json:"location"`
	Map             string     `json:"map"`
	World           [3]float32 `json:"world"`
	PixelX          *float64   `json:"pixel_x,omitempty"`
	PixelZ          *float64   `json:"pixel_z,omitempty"`
}

type scanReport struct {
	ScanID  string            `json:"scan_id"`
	Version string            `json:"game_version"`
	BuildID string            `json:"build_id"`
	Status  string            `json:"status"`
	Entries []scanReportEntry `json:"entries"`
}

func newScanReport(result *stash.Result, names *dex.Names, pixels bool) scanReport {
	report := scanReport{
		ScanID:  result.ScanID,
		Version: result.Version,
		BuildID: result.BuildID,
		Status:  result.Status,
		Entries: make([]scanReportEntry, 0, len(result.Entries)),
	}
	for _, entry := range result.Entries {
		item := scanReportEntry{
			Hash:            fmt.Sprintf("%016X", entry.Hash),
			Species:         names.Name(entry.National),
			NationalDex:     entry.National,
			SpeciesInternal: entry.SpeciesInternal,
			Location:        entry.Location.Name,
			Map:             worldmap.Name(entry.Location.MapIndex),
			World:           [3]float32{entry.Location.X, entry.Location.Y, entry.Location.Z},
		}
		if pixels {
			if tr, ok := worldmap.ForIndex(entry.Location.MapIndex); ok {
				px := tr.ConvertX(float64(entry.Location.X))
				pz := tr.ConvertZ(float64(entry.Location.Z))
				item.PixelX, item.PixelZ = &px, &pz
			}
		}
		report.Entries = append(report.Entries, item)
	}
	return report
}

func renderScan(cmd *cobra.Command, result *stash.Result, names *dex.Names, pixels bool) error {
	out := cmd.OutOrStdout()

	headers := []string{"#", "Species", "Dex", "Location", "Map"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft}
	if pixels {
		headers = append(headers, "Pixel")
		aligns = append(aligns, alignLeft)
	}

	rows := make([][]string, 0, len(result.Entries))
	for i, entry := range result.Entries {
		row := []string{
			strconv.Itoa(i + 1),
			names.Name(entry.National),
			strconv.Itoa(int(entry.National)),
			entry.Location.Name,
			worldmap.Name(entry.Location.MapIndex),
		}
		if pixels {
			row = append(row, formatPixel(entry.Location))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(out, statusLine(statusOK, result.Status))
	fmt.Fprintf(out, "Game version %s (build %s)\n", result.Version, result.BuildID)
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return nil
}

func formatPixel(location spawner.Location) string {
	tr, ok := worldmap.ForIndex(location.MapIndex)
	if !ok {
		return "-"
	}
	px := tr.ConvertX(float64(location.X))
	pz := tr.ConvertZ(float64(location.Z))
	if !tr.InBounds(px, pz) {
		return fmt.Sprintf("(%.0f, %.0f) off-map", px, pz)
	}
	return fmt.Sprintf("(%.0f, %.0f)", px, pz)
}
