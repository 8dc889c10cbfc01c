package dex

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Names is a national-number-indexed species name catalog. Line N of the
// source file names species N, so line 0 is a placeholder.
type Names struct {
	entries []string
}

// LoadNames reads a species name catalog, one name per line. Carriage returns
// are stripped so Windows-edited files load cleanly.
func LoadNames(path string) (*Names, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open species catalog: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entries = append(entries, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read species catalog: %w", err)
	}
	return &Names{entries: entries}, nil
}

// Len reports how many catalog lines were loaded.
func (n *Names) Len() int {
	return len(n.entries)
}

// Name returns the display name for a national dex number, falling back to a
// numeric placeholder for entries past the end of the catalog.
func (n *Names) Name(national uint16) string {
	if int(national) < len(n.entries) && n.entries[national] != "" {
		return n.entries[national]
	}
	return fmt.Sprintf("Species #%d", national)
}

// Find returns the national number of the species whose name matches query
// case-insensitively.
func (n *Names) Find(query string) (uint16, bool) {
	for i, name := range n.entries {
		if name != "" && strings.EqualFold(name, query) {
			return uint16(i), true
		}
	}
	return 0, false
}

// ClosestMatches returns up to limit catalog names ranked by edit distance to
// query, for "did you mean" suggestions after a failed lookup.
func (n *Names) ClosestMatches(query string, limit int) []string {
	type candidate struct {
		name     string
		distance int
	}
	lowered := strings.ToLower(query)
	candidates := make([]candidate, 0, len(n.entries))
	for _, name := range n.entries {
		if name == "" {
			continue
		}
		candidates = append(candidates, candidate{
			name:     name,
			distance: levenshtein.ComputeDistance(lowered, strings.ToLower(name)),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if limit > len(candidates) {
		limit = len(candidates)
	}
	matches := make([]string, limit)
	for i := range matches {
		matches[i] = candidates[i].name
	}
	return matches
}
