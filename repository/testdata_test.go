package repository_test

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/restapi/repository"
)

var ctx = context.Background()

type (
	EntityID string
	Entity   struct {
		ID        EntityID
		Name      string
		CreatedAt time.Time
	}
)

type EntityWithoutID struct {
	Name string
}

type EntityWithIntPK struct {
	ID   int
	Name string
}

// newEntity is the Input for Entity.
type newEntity struct {
	Name string
}

func (in newEntity) Build(id EntityID, now time.Time) Entity {
	return Entity{ID: id, Name: in.Name, CreatedAt: now}
}

// entityPatch is the Patch for Entity.
type entityPatch struct {
	Name *string
}

func (p entityPatch) Apply(current Entity) Entity {
	if p.Name != nil {
		current.Name = *p.Name
	}

	return current
}

func testInput() repository.Input[Entity, EntityID] { //nolint:ireturn // required by the suite
	return newEntity{Name: gofakeit.Name()}
}

func testPatch() repository.Patch[Entity] { //nolint:ireturn // required by the suite
	name := gofakeit.Name()

	return entityPatch{Name: &name}
}

func seed() []Entity {
	return []Entity{
		{ID: "1", Name: gofakeit.Name()},
		{ID: "2", Name: gofakeit.Name()},
		{ID: "3", Name: gofakeit.Name()},
	}
}

func testRepository(opts ...repository.Option) *repository.MemoryRepository[Entity, EntityID] {
	return repository.NewMemoryRepository[Entity, EntityID](seed(), opts...)
}
