package spawner

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"stashmap/internal/logging"
)

// Catalog indexes spawner locations by hash across every loaded map file.
type Catalog struct {
	byHash  map[uint64]Location
	all     []Location
	skipped int
}

// NewCatalog returns an empty catalog ready for LoadFile calls.
func NewCatalog() *Catalog {
	return &Catalog{byHash: make(map[uint64]Location)}
}

// LoadFile parses one spawner dump for the given map index, keeping every
// well-formed line and counting the rest. Duplicate hashes within or across
// files overwrite the earlier lookup entry, matching the dump files' own
// convention that later lines are corrections.
func (c *Catalog) LoadFile(path string, mapIndex int, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open spawner catalog: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	loaded, skipped := 0, 0
	for scanner.Scan() {
		location, reason := ParseLine(scanner.Text(), mapIndex)
		if reason != skipNone {
			skipped++
			continue
		}
		c.byHash[location.Hash] = location
		c.all = append(c.all, location)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read spawner catalog: %w", err)
	}
	c.skipped += skipped

	logger.Debug("spawner catalog loaded",
		logging.String("path", path),
		logging.Int("map_index", mapIndex),
		logging.Int("entries", loaded),
		logging.Int("skipped", skipped))
	return nil
}

// LoadStandard loads the four per-map dump files in map-index order. Missing
// files are logged and skipped so a partial data directory still yields a
// usable catalog; any other read failure aborts the load.
func (c *Catalog) LoadStandard(paths [4]string, logger *slog.Logger) error {
	for mapIndex, path := range paths {
		err := c.LoadFile(path, mapIndex, logger)
		if err == nil {
			continue
		}
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("spawner catalog file missing",
				logging.String("path", path),
				logging.Int("map_index", mapIndex))
			continue
		}
		return err
	}
	return nil
}

// Lookup returns the location registered for hash.
func (c *Catalog) Lookup(hash uint64) (Location, bool) {
	location, ok := c.byHash[hash]
	return location, ok
}

// Len reports the number of distinct hashes in the catalog.
func (c *Catalog) Len() int {
	return len(c.byHash)
}

// Skipped reports how many malformed lines were dropped across all loads.
func (c *Catalog) Skipped() int {
	return c.skipped
}

// ByMap returns the loaded locations for one map index, in file order.
func (c *Catalog) ByMap(mapIndex int) []Location {
	var locations []Location
	for _, location := range c.all {
		if location.MapIndex == mapIndex {
			locations = append(locations, location)
		}
	}
	return locations
}

// All returns every loaded location in file order, duplicates included.
func (c *Catalog) All() []Location {
	return c.all
}
