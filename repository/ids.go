package repository

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator returns the id of an entity about to be appended to a collection,
// that currently holds size entities.
type IDGenerator interface {
	Generate(size int) string
}

// IDStrategy names one of the supported IDGenerator implementations.
type IDStrategy string

const (
	// LengthStrategy derives the id from the collection size.
	// Ids are NOT stable under deletion: after deleting any but the last entity,
	// the next created entity can get the id of an existing one.
	LengthStrategy IDStrategy = "length"

	// SequenceStrategy counts up and never hands out an id twice.
	SequenceStrategy IDStrategy = "sequence"

	UUIDStrategy IDStrategy = "uuid"
	ULIDStrategy IDStrategy = "ulid"
)

// IDStrategies is the list of all supported strategies.
func IDStrategies() []IDStrategy {
	return []IDStrategy{LengthStrategy, SequenceStrategy, UUIDStrategy, ULIDStrategy}
}

var ErrUnknownIDStrategy = errors.New("unknown id strategy")

// NewIDGenerator returns a fresh IDGenerator for the strategy.
// Every repository needs its own generator, as SequenceIDs is stateful.
func NewIDGenerator(strategy IDStrategy) (IDGenerator, error) { //nolint:ireturn // the strategy decides the type
	switch strategy {
	case LengthStrategy, "":
		return LengthIDs{}, nil
	case SequenceStrategy:
		return &SequenceIDs{}, nil
	case UUIDStrategy:
		return UUIDs{}, nil
	case ULIDStrategy:
		return ULIDs{}, nil
	}

	allowed := make([]string, 0, len(IDStrategies()))
	for _, s := range IDStrategies() {
		allowed = append(allowed, string(s))
	}

	return nil, fmt.Errorf("%w: %s, use one of: %s", ErrUnknownIDStrategy, strategy, strings.Join(allowed, ", "))
}

// IsValid reports whether s names a supported strategy.
func (s IDStrategy) IsValid() bool {
	return slices.Contains(IDStrategies(), s)
}

// LengthIDs assigns str(size + 1).
type LengthIDs struct{}

func (LengthIDs) Generate(size int) string {
	return strconv.Itoa(size + 1)
}

// SequenceIDs assigns numeric ids counting up from the size of the seed,
// so seeded entities with the ids 1..n are never collided with.
// NewMemoryRepository calls StartAfter with the seed size.
type SequenceIDs struct {
	mu   sync.Mutex
	last int
}

// StartAfter makes the next id at least last+1.
func (s *SequenceIDs) StartAfter(last int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = max(s.last, last)
}

func (s *SequenceIDs) Generate(size int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = max(s.last, size) + 1

	return strconv.Itoa(s.last)
}

type UUIDs struct{}

func (UUIDs) Generate(_ int) string {
	return uuid.New().String()
}

type ULIDs struct{}

func (ULIDs) Generate(_ int) string {
	return ulid.Make().String()
}
