// Package gamever maps a running game build to its known memory layout.
//
// Each supported game version is identified by the first eight bytes of its
// main module build ID and carries the static offset of the shiny stash
// pointer for that build. Detection is an exact byte match; anything else is
// an unsupported version.
package gamever
