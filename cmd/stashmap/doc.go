// Command stashmap reads the shiny stash out of a running game over the
// console's remote debug service and reports each entry's species and spawn
// location.
package main
