// Package id generates sortable identifiers for bridge traffic.
//
// Request IDs are prefixed ULIDs ("req_01J..."). They sort by creation time,
// which keeps interleaved WebSocket replies readable in the logs.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies one bridge request
type RequestID string

// RequestPrefix marks request IDs
const RequestPrefix = "req"

// Generator generates ULIDs from a shared entropy source
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the process-wide generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

func (r RequestID) String() string { return string(r) }

// Timestamp extracts the creation time of a request ID
func (r RequestID) Timestamp() (time.Time, error) {
	raw, ok := strings.CutPrefix(string(r), RequestPrefix+"_")
	if !ok {
		return time.Time{}, fmt.Errorf("request id %q: missing %s_ prefix", r, RequestPrefix)
	}
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("request id %q: %w", r, err)
	}
	return ulid.Time(parsed.Time()), nil
}
