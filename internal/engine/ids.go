package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource hands out unique ids for cities and buildings. Injected so id
// generation stays collision-free under rapid sequential creation.
type IDSource interface {
	NewID() string
}

type randomIDs struct{}

func (randomIDs) NewID() string { return uuid.NewString() }

// RandomIDs returns the production id source (random UUID tokens).
func RandomIDs() IDSource { return randomIDs{} }

// SequentialIDs yields prefix-1, prefix-2, … for deterministic output.
type SequentialIDs struct {
	prefix string
	n      int
}

func NewSequentialIDs(prefix string) *SequentialIDs {
	return &SequentialIDs{prefix: prefix}
}

func (s *SequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}
