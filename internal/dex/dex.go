package dex

// renumberBase is the first internal ordinal whose national number diverges.
const renumberBase = 917

// deltas holds the signed national-number adjustment for each internal ordinal
// starting at renumberBase. Extracted from the game's species table; entries
// of -1 or 0 still mean "add the delta", not passthrough.
var deltas = [109]int8{
	65, -1, -1, -1, -1, 31, 31, 47, 47, 29, 29, 53, 31, 31, 46, 44, 30, 30, -7, -7, -7, 13, 13,
	-2, -2, 23, 23, 24, -21, -21, 27, 27, 47, 47, 47, 26, 14, -33, -33, -33, -17, -17, 3, -29,
	12, -12, -31, -31, -31, 3, 3, -24, -24, -44, -44, -30, -30, -28, -28, 23, 23, 6, 7, 29, 8,
	3, 4, 4, 20, 4, 23, 6, 3, 3, 4, -1, 13, 9, 7, 5, 7, 9, 9, -43, -43, -43, -68, -68, -68, -58,
	-58, -25, -29, -31, 6, -1, 6, 0, 0, 0, 3, 3, 4, 2, 3, 3, -5, -12, -12,
}

// ToNational converts an internal species ordinal to its national dex number.
// Ordinals outside the remapped window are already national numbers and pass
// through unchanged.
func ToNational(internal uint16) uint16 {
	idx := int(internal) - renumberBase
	if idx < 0 || idx >= len(deltas) {
		return internal
	}
	return uint16(int(internal) + int(deltas[idx]))
}
