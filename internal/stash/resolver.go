package stash

import (
	"context"
	"encoding/binary"
	"fmt"

	"stashmap/internal/console"
)

// pointerChain is the offset walk from the version-specific base pointer to
// the stash window. Each step dereferences the current address and adds the
// offset; the final zero offset lands directly on the window.
var pointerChain = [...]uint64{0x120, 0x168, 0x0}

// resolveStash follows the pointer chain from the main module base and
// returns the stash window address.
func resolveStash(ctx context.Context, session console.Session, mainBase, stashBase uint64) (uint64, error) {
	addr := mainBase + stashBase
	for i, offset := range pointerChain {
		raw, err := session.ReadBytes(ctx, addr, 8)
		if err != nil {
			return 0, Wrap(ErrMemoryRead, "resolve pointer",
				fmt.Sprintf("step %d at %#x", i, addr), err)
		}
		if len(raw) < 8 {
			return 0, Wrap(ErrAllocation, "resolve pointer",
				fmt.Sprintf("step %d returned %d bytes", i, len(raw)), nil)
		}
		addr = binary.LittleEndian.Uint64(raw) + offset
	}
	return addr, nil
}
