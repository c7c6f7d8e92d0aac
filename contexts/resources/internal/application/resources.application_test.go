package application_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/restapi/contexts/resources/internal/application"
	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
)

func TestListResourcesQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("seeded", func(t *testing.T) {
		t.Parallel()

		handler := application.NewListResourcesQueryHandler[domain.User](newUserRepo())

		users, err := handler.H(ctx, application.ListQuery[domain.User]{})
		assert.NoError(t, err)
		assert.Equal(t, domain.UserSeed(), users)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		repo := newUserRepo()
		for _, u := range domain.UserSeed() {
			repo.DeleteByID(ctx, u.ID)
		}

		handler := application.NewListResourcesQueryHandler[domain.User](repo)

		users, err := handler.H(ctx, application.ListQuery[domain.User]{})
		assert.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
}

func TestShowResourceQueryHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		handler := application.NewShowResourceQueryHandler[domain.User](newUserRepo())

		user, err := handler.H(ctx, application.ShowQuery[domain.User]{ID: "2"})
		assert.NoError(t, err)
		assert.Equal(t, domain.UserSeed()[1], user)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		handler := application.NewShowResourceQueryHandler[domain.User](newUserRepo())

		user, err := handler.H(ctx, application.ShowQuery[domain.User]{ID: "999"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, application.ErrShowResourceFailed)
		assert.Empty(t, user)
	})
}

func TestCreateResourceRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("append user", func(t *testing.T) {
		t.Parallel()

		repo := newUserRepo()
		handler := application.NewCreateResourceRequestHandler[domain.User, domain.NewUser](repo)
		input := domain.NewUser{Name: gofakeit.Name(), Email: gofakeit.Email(), Age: 42}

		user, err := handler.H(ctx, application.CreateRequest[domain.NewUser]{Input: input})
		assert.NoError(t, err)
		assert.Equal(t, domain.User{ID: "4", Name: input.Name, Email: input.Email, Age: 42}, user)

		all := repo.All(ctx)
		assert.Len(t, all, 4)
		assert.Equal(t, user, all[3])
	})

	t.Run("order defaults", func(t *testing.T) {
		t.Parallel()

		handler := application.NewCreateResourceRequestHandler[domain.Order, domain.NewOrder](newOrderRepo())

		order, err := handler.H(ctx, application.CreateRequest[domain.NewOrder]{Input: domain.NewOrder{UserID: "1"}})
		assert.NoError(t, err)
		assert.Equal(t, domain.ID("4"), order.ID)
		assert.Equal(t, 0.0, order.Total)
		assert.Equal(t, domain.Pending, order.Status)
		assert.NotEmpty(t, order.CreatedAt)
		assert.NotNil(t, order.Items)
	})
}

func TestUpdateResourceRequestHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("partial update", func(t *testing.T) {
		t.Parallel()

		handler := application.NewUpdateResourceRequestHandler[domain.User, domain.UserPatch](newUserRepo())

		user, err := handler.H(ctx, application.UpdateRequest[domain.UserPatch]{
			ID:    "1",
			Patch: domain.UserPatch{Name: ptr("Updated")},
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.User{ID: "1", Name: "Updated", Email: "joao@example.com", Age: 30}, user)
	})

	t.Run("order keeps id and createdAt", func(t *testing.T) {
		t.Parallel()

		repo := newOrderRepo()
		handler := application.NewUpdateResourceRequestHandler[domain.Order, domain.OrderPatch](repo)

		order, err := handler.H(ctx, application.UpdateRequest[domain.OrderPatch]{
			ID:    "1",
			Patch: domain.OrderPatch{Status: ptr(domain.Shipped), Total: ptr(1.5)},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ID("1"), order.ID)
		assert.Equal(t, domain.OrderSeed()[0].CreatedAt, order.CreatedAt)
		assert.Equal(t, domain.Shipped, order.Status)
		assert.Equal(t, 1.5, order.Total)
		assert.Equal(t, domain.OrderSeed()[0].Items, order.Items)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo := newOrderRepo()
		handler := application.NewUpdateResourceRequestHandler[domain.Order, domain.OrderPatch](repo)

		_, err := handler.H(ctx, application.UpdateRequest[domain.OrderPatch]{
			ID:    "999",
			Patch: domain.OrderPatch{Status: ptr(domain.Completed)},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, application.ErrUpdateResourceFailed)
		assert.Equal(t, domain.OrderSeed(), repo.All(ctx), "collection has to be unchanged")
	})
}

func TestDeleteResourceCommandHandler_H(t *testing.T) {
	t.Parallel()

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		repo := newUserRepo()
		handler := application.NewDeleteResourceCommandHandler[domain.User](repo)

		err := handler.H(ctx, application.DeleteCommand[domain.User]{ID: "1"})
		assert.NoError(t, err)
		assert.Equal(t, domain.UserSeed()[1:], repo.All(ctx))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		handler := application.NewDeleteResourceCommandHandler[domain.User](newUserRepo())

		err := handler.H(ctx, application.DeleteCommand[domain.User]{ID: "999"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, application.ErrDeleteResourceFailed)
	})
}

func TestNewResourceApplication(t *testing.T) {
	t.Parallel()

	repo := newUserRepo()
	resources := application.NewResourceApplication[domain.User, domain.NewUser, domain.UserPatch](repo)

	created, err := resources.CreateResource.H(ctx, application.CreateRequest[domain.NewUser]{
		Input: domain.NewUser{Name: "Ana", Email: "ana@example.com", Age: 22},
	})
	require.NoError(t, err)

	shown, err := resources.ShowResource.H(ctx, application.ShowQuery[domain.User]{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created, shown)

	_, err = resources.UpdateResource.H(ctx, application.UpdateRequest[domain.UserPatch]{
		ID:    created.ID,
		Patch: domain.UserPatch{Age: ptr(23)},
	})
	require.NoError(t, err)

	err = resources.DeleteResource.H(ctx, application.DeleteCommand[domain.User]{ID: "1"})
	require.NoError(t, err)

	all, err := resources.ListResources.H(ctx, application.ListQuery[domain.User]{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 23, all[2].Age)
}
