package domain_test

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/go-arrower/restapi/contexts/resources/internal/domain"
	"github.com/go-arrower/restapi/repository"
)

var (
	ctx = context.Background()

	// createdAt is the time all repositories of the tests create records at.
	createdAt = time.Date(2025, time.November, 7, 18, 18, 8, 792_000_000, time.UTC)
)

func fixedClock() time.Time { return createdAt }

func newRepo[E any](seed func() []E) func(opts ...repository.Option) repository.Repository[E, domain.ID] {
	return func(opts ...repository.Option) repository.Repository[E, domain.ID] { //nolint:ireturn // required by TestSuite
		return repository.NewMemoryRepository[E, domain.ID](seed(), append(opts, repository.WithClock(fixedClock))...)
	}
}

func ptr[T any](v T) *T {
	return &v
}

func fakeNewUser() repository.Input[domain.User, domain.ID] { //nolint:ireturn // required by TestSuite
	return domain.NewUser{
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Age:   gofakeit.IntRange(18, 99),
	}
}

func fakeUserPatch() repository.Patch[domain.User] { //nolint:ireturn // required by TestSuite
	return domain.UserPatch{Name: ptr(gofakeit.Name())}
}

func fakeNewCar() repository.Input[domain.Car, domain.ID] { //nolint:ireturn // required by TestSuite
	return domain.NewCar{
		Brand: gofakeit.CarMaker(),
		Model: gofakeit.CarModel(),
		Year:  gofakeit.IntRange(1990, 2025),
		Color: domain.CarColors()[gofakeit.IntRange(0, len(domain.CarColors())-1)],
		Price: gofakeit.Price(5000, 150000),
	}
}

func fakeCarPatch() repository.Patch[domain.Car] { //nolint:ireturn // required by TestSuite
	return domain.CarPatch{Price: ptr(gofakeit.Price(5000, 150000)), Color: ptr(domain.Silver)}
}

func fakeNewProduct() repository.Input[domain.Product, domain.ID] { //nolint:ireturn // required by TestSuite
	return domain.NewProduct{
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       gofakeit.Price(1, 5000),
		Stock:       gofakeit.IntRange(0, 1000),
		Category:    domain.ProductCategories()[gofakeit.IntRange(0, len(domain.ProductCategories())-1)],
	}
}

func fakeProductPatch() repository.Patch[domain.Product] { //nolint:ireturn // required by TestSuite
	return domain.ProductPatch{Stock: ptr(gofakeit.IntRange(0, 1000))}
}

func fakeNewOrder() repository.Input[domain.Order, domain.ID] { //nolint:ireturn // required by TestSuite
	return domain.NewOrder{
		UserID: gofakeit.Numerify("#"),
		Items: []domain.OrderItem{
			{ProductID: gofakeit.Numerify("#"), Quantity: gofakeit.IntRange(1, 10), Price: gofakeit.Price(1, 5000)},
		},
	}
}

func fakeOrderPatch() repository.Patch[domain.Order] { //nolint:ireturn // required by TestSuite
	return domain.OrderPatch{Status: ptr(domain.OrderStatuses()[gofakeit.IntRange(0, len(domain.OrderStatuses())-1)])}
}
