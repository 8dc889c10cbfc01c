// Package spawner loads the point-spawner location catalogs that map a
// spawner's 64-bit hash to a named position on one of the game maps.
//
// The catalogs are community-maintained text dumps, one spawner per line:
//
//	"Area Name" - 0123456789ABCDEF - V3f(12.5, 3.0, -401.25)
//
// Loading is deliberately tolerant. Lines that do not fit the shape are
// counted and skipped rather than failing the load, since the dumps routinely
// carry comments, blank lines, and hand-edited noise.
package spawner
