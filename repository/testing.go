package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSuite verifies the behaviour every Repository has to show, independent of the entity kind.
// newRepo has to return a repository seeded with at least one entity, newInput and newPatch
// return random inputs for that entity kind.
//
// Use it in the tests of your entities, so that each instantiation of the generic repository is checked.
func TestSuite[E any, ID id](
	t *testing.T,
	newRepo func(opts ...Option) Repository[E, ID],
	newInput func() Input[E, ID],
	newPatch func() Patch[E],
) { //nolint:tparallel // t.Parallel can only be called ones! The caller decides
	t.Helper()

	if newRepo == nil || newInput == nil || newPatch == nil {
		t.Fatal("constructor is nil")
	}

	ctx := context.Background()
	unknownID := ID("unknown-id")

	t.Run("new", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		assert.NotNil(t, repo)
		assert.NotEmpty(t, repo.All(ctx), "repository has to be seeded")
	})

	t.Run("create appends to the end", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		before := repo.All(ctx)

		created := repo.Create(ctx, newInput())

		all := repo.All(ctx)
		assert.Len(t, all, len(before)+1)
		assert.Equal(t, created, all[len(all)-1])
		assert.Equal(t, before, all[:len(before)], "existing entities keep their order")
		assert.Contains(t, all, created)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		before := repo.All(ctx)

		_, found := repo.FindByID(ctx, unknownID)
		assert.False(t, found)

		_, found = repo.Update(ctx, unknownID, newPatch())
		assert.False(t, found)

		deleted := repo.DeleteByID(ctx, unknownID)
		assert.False(t, deleted)

		assert.Equal(t, before, repo.All(ctx), "collection has to be unchanged")
	})

	t.Run("read is idempotent", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		created := repo.Create(ctx, newInput())
		id := getID[E, ID](created)

		first, found := repo.FindByID(ctx, id)
		assert.True(t, found)

		second, found := repo.FindByID(ctx, id)
		assert.True(t, found)
		assert.Equal(t, first, second)
		assert.Equal(t, created, first)
	})

	t.Run("update applies the patch in place", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		before := repo.All(ctx)
		first := before[0]
		patch := newPatch()

		updated, found := repo.Update(ctx, getID[E, ID](first), patch)
		assert.True(t, found)
		assert.Equal(t, patch.Apply(first), updated)

		all := repo.All(ctx)
		assert.Len(t, all, len(before))
		assert.Equal(t, updated, all[0], "position has to be kept")
		assert.Equal(t, before[1:], all[1:])
	})

	t.Run("delete removes and shifts", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		before := repo.All(ctx)
		id := getID[E, ID](before[0])

		deleted := repo.DeleteByID(ctx, id)
		assert.True(t, deleted)

		_, found := repo.FindByID(ctx, id)
		assert.False(t, found)
		assert.Equal(t, before[1:], repo.All(ctx))

		deleted = repo.DeleteByID(ctx, id)
		assert.False(t, deleted, "deleting twice is not possible")
	})

	t.Run("count", func(t *testing.T) {
		t.Parallel()

		repo := newRepo()
		assert.Equal(t, len(repo.All(ctx)), repo.Count(ctx))

		repo.Create(ctx, newInput())
		assert.Equal(t, len(repo.All(ctx)), repo.Count(ctx))
	})
}

// getID reads the id of an entity using the default id field.
func getID[E any, ID id](entity E) ID { //nolint:ireturn // valid use of generics
	return (&MemoryRepository[E, ID]{repoConfig: repoConfig{idFieldName: "ID"}}).getID(entity)
}
