package worldmap

// Transform converts world X/Z coordinates to texture pixels for one map.
type Transform struct {
	TexW, TexH       float64
	rangeX, rangeZ   float64
	scaleX, scaleZ   float64
	dirX, dirZ       float64
	offsetX, offsetZ float64
}

// ConvertX maps a world X coordinate to a horizontal texture pixel.
func (t Transform) ConvertX(x float64) float64 {
	return t.TexW/2 + t.dirX*(t.rangeX/t.scaleX)*(x+t.offsetX)
}

// ConvertZ maps a world Z coordinate to a vertical texture pixel. The game's
// Z axis runs along the map's vertical dimension; Y is elevation and never
// projects.
func (t Transform) ConvertZ(z float64) float64 {
	return t.TexH/2 + t.dirZ*(t.rangeZ/t.scaleZ)*(z+t.offsetZ)
}

// InBounds reports whether a projected pixel pair lands on the texture.
func (t Transform) InBounds(px, pz float64) bool {
	return px >= 0 && px < t.TexW && pz >= 0 && pz < t.TexH
}

// Maps holds the calibrated transform for each map index, in the same order
// the spawner catalogs use.
var Maps = []Transform{
	{TexW: 4096, TexH: 4096, rangeX: 3940, rangeZ: 3940, scaleX: 1000, scaleZ: 1000, dirX: -1, dirZ: -1, offsetX: 500, offsetZ: 500},
	{TexW: 2160, TexH: 2160, rangeX: 1662, rangeZ: 2041, scaleX: 1662.0 / 10.291021, scaleZ: 2041.0 / 10.291021, dirX: -1, dirZ: -1, offsetX: -3, offsetZ: -80},
	{TexW: 2160, TexH: 2160, rangeX: 1364, rangeZ: 1975, scaleX: 1364.0 / 6.2, scaleZ: 1975.0 / 6.2, dirX: 1, dirZ: 1, offsetX: 1, offsetZ: 146},
	{TexW: 2160, TexH: 2160, rangeX: 1521, rangeZ: 1966, scaleX: 1521.0 / 16.714285, scaleZ: 1966.0 / 16.714285, dirX: 1, dirZ: 1, offsetX: 39, offsetZ: 45},
}

// Names labels each map index for display.
var Names = []string{"Lumiose City", "Lysandre Labs", "The Sewers", "The Sewers B"}

// Name returns the display label for a map index, or a placeholder for
// indexes outside the known set.
func Name(mapIndex int) string {
	if mapIndex >= 0 && mapIndex < len(Names) {
		return Names[mapIndex]
	}
	return "Unknown Map"
}

// ForIndex returns the transform for a map index.
func ForIndex(mapIndex int) (Transform, bool) {
	if mapIndex >= 0 && mapIndex < len(Maps) {
		return Maps[mapIndex], true
	}
	return Transform{}, false
}
