package gamever

import "strings"

// TitleID is the title the scanner targets: Pokémon Legends: Z-A.
const TitleID = 0x0100F43008C44000

// Profile describes one supported game build.
type Profile struct {
	BuildID   [8]byte
	Label     string
	StashBase uint64
}

// Offsets shift whenever the game binary is rebuilt, so every patch release
// needs its own entry here.
var profiles = []Profile{
	{BuildID: [8]byte{0xBC, 0xE5, 0xD5, 0x39, 0x3B, 0x5A, 0xA3, 0xA8}, Label: "2.0.1", StashBase: 0x610A710},
	{BuildID: [8]byte{0x8A, 0x1C, 0x86, 0xC4, 0x37, 0x39, 0x4B, 0x69}, Label: "2.0.0", StashBase: 0x6105710},
	{BuildID: [8]byte{0x17, 0x9C, 0x38, 0x43, 0xB9, 0x84, 0xF8, 0x78}, Label: "1.0.3", StashBase: 0x5F0E250},
}

// Detect returns the profile whose build ID exactly matches buildID.
func Detect(buildID [8]byte) (Profile, bool) {
	for _, profile := range profiles {
		if profile.BuildID == buildID {
			return profile, true
		}
	}
	return Profile{}, false
}

// SupportedLabels lists the known version labels for diagnostics, newest
// first.
func SupportedLabels() string {
	labels := make([]string, len(profiles))
	for i, profile := range profiles {
		labels[i] = profile.Label
	}
	return strings.Join(labels, ", ")
}
