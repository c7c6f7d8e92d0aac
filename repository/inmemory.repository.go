package repository

import (
	"context"
	"reflect"
	"slices"
	"sync"
	"time"
)

// NewMemoryRepository returns an implementation of Repository for the given entity E,
// holding the seed entities in the given order.
// It is expected that E has a field called `ID`, that is used as the primary key and can
// be overwritten by WithIDField.
// If your repository needs additional methods, you can embed this repo into your own implementation.
//
// The seed is copied, later changes to the slice do not affect the repository.
func NewMemoryRepository[E any, ID id](seed []E, opts ...Option) *MemoryRepository[E, ID] {
	repo := &MemoryRepository[E, ID]{
		Mutex: &sync.Mutex{},
		Data:  slices.Clone(seed),
		repoConfig: repoConfig{
			idFieldName: "ID",
			ids:         LengthIDs{},
			now:         time.Now,
		},
	}

	if repo.Data == nil {
		repo.Data = []E{}
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	if seq, ok := repo.ids.(interface{ StartAfter(last int) }); ok {
		seq.StartAfter(len(repo.Data))
	}

	// fail early on entities without a proper id field and not on first use
	repo.getID(*new(E))

	return repo
}

// MemoryRepository implements Repository in a generic way.
// All lookups are linear scans in insertion order, the first match wins.
type MemoryRepository[E any, ID id] struct {
	// Mutex is embedded, so that repositories who extend MemoryRepository can lock the same mutex as other methods.
	*sync.Mutex

	// Data is the repository's collection in insertion order.
	// It is exposed in case you're extending the repository.
	// PREVENT using and accessing Data it directly, go through the repository methods.
	// If you write to Data, USE the Mutex to lock first.
	Data []E

	repoConfig
}

var _ Repository[struct{ ID string }, string] = (*MemoryRepository[struct{ ID string }, string])(nil)

func (repo *MemoryRepository[E, ID]) getID(t any) ID { //nolint:ireturn // needs access to the type ID
	val := reflect.ValueOf(t)

	idField := val.FieldByName(repo.idFieldName)
	if !idField.IsValid() {
		panic("entity " + defaultName(new(E)) + " does not have the field with name: " + repo.idFieldName)
	}

	if idField.Kind() != reflect.String {
		panic(panicIDNotSupported + idField.Kind().String() + ": " + errSetIDFieldFailed.Error())
	}

	var id ID

	reflect.ValueOf(&id).Elem().SetString(idField.String())

	return id
}

// indexOf returns the position of the first entity with the given id or -1.
// The caller has to hold the lock.
func (repo *MemoryRepository[E, ID]) indexOf(id ID) int {
	return slices.IndexFunc(repo.Data, func(e E) bool {
		return repo.getID(e) == id
	})
}

// All returns all entities in insertion order.
func (repo *MemoryRepository[E, ID]) All(_ context.Context) []E {
	repo.Lock()
	defer repo.Unlock()

	return slices.Clone(repo.Data)
}

// FindByID returns the entity with the given id. If no entity matches, ok is false.
func (repo *MemoryRepository[E, ID]) FindByID(_ context.Context, id ID) (E, bool) { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return *new(E), false
	}

	return repo.Data[i], true
}

// Create builds a new entity from input and appends it to the collection.
// The id is assigned by the configured IDGenerator while holding the lock,
// so concurrent calls never observe the same collection size.
func (repo *MemoryRepository[E, ID]) Create(_ context.Context, input Input[E, ID]) E { //nolint:ireturn // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	id := ID(repo.ids.Generate(len(repo.Data)))
	entity := input.Build(id, repo.now())

	repo.Data = append(repo.Data, entity)

	return entity
}

// Update applies the patch to the entity with the given id and stores the result at the same position.
// If no entity matches, the collection stays unchanged and ok is false.
func (repo *MemoryRepository[E, ID]) Update(_ context.Context, id ID, patch Patch[E]) (E, bool) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return *new(E), false
	}

	updated := patch.Apply(repo.Data[i])
	repo.Data[i] = updated

	return updated, true
}

// DeleteByID removes the entity with the given id and reports whether one was removed.
// Entities after it move one position to the front.
func (repo *MemoryRepository[E, ID]) DeleteByID(_ context.Context, id ID) bool {
	repo.Lock()
	defer repo.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return false
	}

	repo.Data = slices.Delete(repo.Data, i, i+1)

	return true
}

func (repo *MemoryRepository[E, ID]) Count(_ context.Context) int {
	repo.Lock()
	defer repo.Unlock()

	return len(repo.Data)
}
