package spawner

import (
	"strconv"
	"strings"
)

// Location is one resolved spawner: its identity hash, world position, and
// which map it belongs to.
type Location struct {
	Hash     uint64
	X, Y, Z  float32
	MapIndex int
	Name     string
}

// SkipReason classifies why a catalog line was rejected.
type SkipReason int

const (
	skipNone SkipReason = iota
	// SkipTooShort rejects lines under the minimum plausible length.
	SkipTooShort
	// SkipMissingDelimiter rejects lines without both " - " separators.
	SkipMissingDelimiter
	// SkipBadHash rejects hash fields that are not exactly 16 hex digits.
	SkipBadHash
	// SkipMissingVector rejects lines without a V3f(...) coordinate group.
	SkipMissingVector
	// SkipBadCoordinates rejects coordinate groups that do not hold three
	// floats.
	SkipBadCoordinates
)

func (r SkipReason) String() string {
	switch r {
	case skipNone:
		return "ok"
	case SkipTooShort:
		return "too short"
	case SkipMissingDelimiter:
		return "missing delimiter"
	case SkipBadHash:
		return "bad hash"
	case SkipMissingVector:
		return "missing coordinate vector"
	case SkipBadCoordinates:
		return "bad coordinates"
	default:
		return "unknown"
	}
}

// ParseLine parses one catalog line. A zero SkipReason means the location is
// valid; anything else explains why the line was dropped.
func ParseLine(line string, mapIndex int) (Location, SkipReason) {
	if len(line) < 20 {
		return Location{}, SkipTooShort
	}

	d1 := strings.Index(line, " - ")
	if d1 < 0 {
		return Location{}, SkipMissingDelimiter
	}
	rest := line[d1+3:]
	d2 := strings.Index(rest, " - ")
	if d2 < 0 {
		return Location{}, SkipMissingDelimiter
	}

	hashStr := rest[:d2]
	if len(hashStr) != 16 {
		return Location{}, SkipBadHash
	}
	hash, err := strconv.ParseUint(hashStr, 16, 64)
	if err != nil {
		return Location{}, SkipBadHash
	}

	v := strings.Index(line, "V3f(")
	if v < 0 {
		return Location{}, SkipMissingVector
	}
	coords := line[v+4:]
	end := strings.IndexByte(coords, ')')
	if end < 0 {
		return Location{}, SkipMissingVector
	}
	parts := strings.Split(coords[:end], ",")
	if len(parts) != 3 {
		return Location{}, SkipBadCoordinates
	}
	var xyz [3]float32
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return Location{}, SkipBadCoordinates
		}
		xyz[i] = float32(f)
	}

	return Location{
		Hash:     hash,
		X:        xyz[0],
		Y:        xyz[1],
		Z:        xyz[2],
		MapIndex: mapIndex,
		Name:     strings.Trim(line[:d1], " \t\""),
	}, skipNone
}
