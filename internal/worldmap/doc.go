// Package worldmap projects in-game world coordinates onto the pixel grid of
// each area's map texture.
//
// Every map carries its own affine transform: a per-axis scale derived from
// the texture's usable range, a direction sign, and a world-space offset. The
// calibration constants were measured against the community map images and
// only hold for those exact texture dimensions.
package worldmap
