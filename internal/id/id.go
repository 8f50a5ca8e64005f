// Package id mints run identifiers.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	// ULID entropy is independent of the simulation seed; monotonic so
	// runs started in the same millisecond still sort in order.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a run ID for the current time.
func New() string {
	return NewAt(time.Now())
}

// NewAt returns a run ID whose timestamp component is t.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t.UTC()), mono)
	if err != nil {
		panic(err)
	}
	return id.String()
}

// Time extracts the creation time encoded in a run ID.
func Time(runID string) (time.Time, error) {
	u, err := ulid.ParseStrict(runID)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse run id %q: %w", runID, err)
	}
	return ulid.Time(u.Time()).UTC(), nil
}
