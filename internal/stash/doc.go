// Package stash reads the shiny stash out of a running game and turns it
// into spawner-resolved entries.
//
// A scan connects to the console's debug service, verifies the running title
// and build, walks the stash pointer chain, pulls the raw slot window, and
// decodes each record until the terminator. The scanner owns the error
// taxonomy for the whole pipeline so callers can classify failures with
// errors.Is against the exported sentinels.
package stash
