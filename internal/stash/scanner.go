package stash

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stashmap/internal/console"
	"stashmap/internal/dex"
	"stashmap/internal/gamever"
	"stashmap/internal/logging"
	"stashmap/internal/pkx"
	"stashmap/internal/spawner"
)

const (
	// windowSize is the raw stash window pulled in one read: ten slots.
	windowSize = 4960
	// slotSize is the stride between slots (0x1F0).
	slotSize = 0x1F0
	// recordOffset skips the slot's leading spawner hash.
	recordOffset = 8
	// terminatorHash is the FNV-1a offset basis the game writes into the
	// slot after the last live entry.
	terminatorHash = 0xCBF29CE484222645
)

// Entry is one decoded shiny stash slot resolved against the spawner catalog.
type Entry struct {
	Hash            uint64
	SpeciesInternal uint16
	National        uint16
	Location        spawner.Location
}

// Result carries the outcome of one scan.
type Result struct {
	ScanID   string
	Entries  []Entry
	Version  string
	BuildID  string
	Status   string
	Duration time.Duration
}

// Scanner orchestrates the full read pipeline against one console.
type Scanner struct {
	connector console.Connector
	catalog   *spawner.Catalog
	logger    *slog.Logger
}

// NewScanner wires a scanner to a console connector and a loaded spawner
// catalog.
func NewScanner(connector console.Connector, catalog *spawner.Catalog, logger *slog.Logger) *Scanner {
	return &Scanner{
		connector: connector,
		catalog:   catalog,
		logger:    logging.WithComponent(logger, "scanner"),
	}
}

// Scan connects, verifies the target, and decodes the stash. When the stash
// holds no entries the returned error wraps ErrEmptyResult and the Result is
// still populated with the detected version, so callers can report both.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{ScanID: uuid.NewString()}
	logger := s.logger.With(logging.String(logging.FieldScanID, result.ScanID))

	if !s.connector.Available(ctx) {
		return nil, Wrap(ErrTargetUnavailable, "connect", "console is not reachable", nil)
	}
	session, err := s.connector.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrTargetUnavailable, "connect", "", err)
	}
	defer session.Close()

	meta, err := session.Metadata(ctx)
	if err != nil {
		return nil, Wrap(ErrTargetUnavailable, "metadata", "", err)
	}
	if meta.TitleID != gamever.TitleID {
		return nil, Wrap(ErrUnsupportedVersion, "metadata",
			fmt.Sprintf("running title %#016x is not Pokemon Legends: Z-A", meta.TitleID), nil)
	}
	result.BuildID = meta.BuildIDHex()

	profile, ok := gamever.Detect(meta.BuildID)
	if !ok {
		return nil, Wrap(ErrUnsupportedVersion, "detect version",
			fmt.Sprintf("build %s (supported: %s)", meta.BuildIDHex(), gamever.SupportedLabels()), nil)
	}
	result.Version = profile.Label
	logger.Info("game detected",
		logging.String("version", profile.Label),
		logging.String("build_id", result.BuildID))

	addr, err := resolveStash(ctx, session, meta.MainBase, profile.StashBase)
	if err != nil {
		return nil, err
	}
	logger.Debug("stash window resolved", logging.Uint64("address", addr))

	window, err := session.ReadBytes(ctx, addr, windowSize)
	if err != nil {
		return nil, Wrap(ErrMemoryRead, "read stash", fmt.Sprintf("window at %#x", addr), err)
	}
	if len(window) < windowSize {
		return nil, Wrap(ErrAllocation, "read stash",
			fmt.Sprintf("wanted %d bytes, got %d", windowSize, len(window)), nil)
	}

	result.Entries = s.decodeWindow(window, logger)
	result.Duration = time.Since(start)

	if len(result.Entries) == 0 {
		result.Status = "shiny stash is empty"
		return result, Wrap(ErrEmptyResult, "decode", fmt.Sprintf("version %s", profile.Label), nil)
	}
	result.Status = fmt.Sprintf("%d shiny entries loaded (v%s)", len(result.Entries), profile.Label)
	logger.Info("scan complete",
		logging.Int("entries", len(result.Entries)),
		logging.Duration("duration", result.Duration))
	return result, nil
}

// decodeWindow walks the slot array until the terminator, decrypting each
// record and keeping only catalog-resolved, non-empty, first-seen entries.
func (s *Scanner) decodeWindow(window []byte, logger *slog.Logger) []Entry {
	var entries []Entry
	seen := make(map[uint64]bool)

	for off := 0; off+slotSize <= len(window); off += slotSize {
		hash := binary.LittleEndian.Uint64(window[off:])
		if hash == 0 || hash == terminatorHash {
			break
		}

		record := make([]byte, pkx.RecordLen)
		copy(record, window[off+recordOffset:])
		pkx.Decrypt(record)

		species := pkx.Species(record)
		if species == 0 {
			continue
		}
		location, ok := s.catalog.Lookup(hash)
		if !ok {
			logger.Debug("no spawner for stash entry",
				logging.Uint64("hash", hash),
				logging.Int("species_internal", int(species)))
			continue
		}
		if seen[hash] {
			continue
		}
		seen[hash] = true

		entries = append(entries, Entry{
			Hash:            hash,
			SpeciesInternal: species,
			National:        dex.ToNational(species),
			Location:        location,
		})
	}
	return entries
}
