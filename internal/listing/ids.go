package listing

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/oklog/ulid/v2"
)

// IDs allocates record ids as "<prefix>_<ULID>". Ids from one allocator are
// strictly increasing even within the same millisecond.
type IDs struct {
	mu      sync.Mutex
	entropy io.Reader
}

func NewIDs() *IDs {
	return &IDs{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *IDs) New(prefix string) string {
	g.mu.Lock()
	id := ulid.MustNew(ulid.Now(), g.entropy)
	g.mu.Unlock()
	return prefix + "_" + id.String()
}
