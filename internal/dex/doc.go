// Package dex translates the game's internal species ordinals into national
// dex numbers and resolves display names from a bundled name catalog.
//
// Only ordinals in a narrow generation window need translation; everything
// below or past the delta table passes through unchanged.
package dex
