package console

import (
	"context"
	"encoding/hex"
	"strings"
)

// Metadata identifies the process currently running on the console.
type Metadata struct {
	TitleID  uint64
	BuildID  [8]byte
	MainBase uint64
}

// BuildIDHex renders the build fingerprint as 16 uppercase hex digits.
func (m Metadata) BuildIDHex() string {
	return strings.ToUpper(hex.EncodeToString(m.BuildID[:]))
}

// Session is an open connection to the console's debug service. A session is
// scoped to one scan attempt: acquired at the start, closed on every exit path.
type Session interface {
	// Metadata reports the running process's title ID, build fingerprint, and
	// main module base address.
	Metadata(ctx context.Context) (Metadata, error)

	// ReadBytes reads length bytes from the absolute address addr. A short
	// read is surfaced as an error, never as a truncated buffer.
	ReadBytes(ctx context.Context, addr uint64, length int) ([]byte, error)

	Close() error
}

// Connector produces sessions against a particular console.
type Connector interface {
	// Available reports whether the debug service currently answers.
	Available(ctx context.Context) bool

	// Connect opens a session. Callers own the returned session and must
	// close it.
	Connect(ctx context.Context) (Session, error)
}
