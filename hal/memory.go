package hal

import (
	"fmt"
	"sync"
)

// ConventionalMemoryBytes is the arena size handed to the host HAL.
const ConventionalMemoryBytes = 640 * 1024

// Arena is a Memory with a fixed byte budget.
type Arena struct {
	mu    sync.Mutex
	limit int
	used  int
}

// NewArena returns an arena that can hand out at most limit bytes at once.
func NewArena(limit int) *Arena {
	if limit < 0 {
		limit = 0
	}
	return &Arena{limit: limit}
}

func (a *Arena) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("alloc %d bytes: invalid size", size)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if size > a.limit-a.used {
		return nil, fmt.Errorf("alloc %d bytes (%d free): %w", size, a.limit-a.used, ErrOutOfMemory)
	}
	a.used += size
	return make([]byte, size), nil
}

// Free returns buf to the arena. Freeing nil is a no-op.
func (a *Arena) Free(buf []byte) {
	if buf == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.used -= cap(buf)
	if a.used < 0 {
		a.used = 0
	}
}

// InUse reports how many bytes are currently handed out.
func (a *Arena) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used
}
