package repository_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-arrower/restapi/repository"
)

func Example_extendRepositoryWithNewMethods() {
	ctx := context.Background()

	repo := NewCarMemoryRepository([]Car{{ID: "1", Brand: "Toyota", Model: "Corolla"}})
	repo.Create(ctx, newCar{Brand: "Honda", Model: "Civic"})
	repo.Create(ctx, newCar{Brand: "toyota", Model: "Yaris"})

	fmt.Println(repo.FilterByBrand(ctx, "TOYOTA"))

	// Output: [{1 Toyota Corolla} {3 toyota Yaris}]
}

type CarID string

type Car struct {
	ID    CarID
	Brand string
	Model string
}

type newCar struct {
	Brand string
	Model string
}

func (c newCar) Build(id CarID, _ time.Time) Car {
	return Car{ID: id, Brand: c.Brand, Model: c.Model}
}

func NewCarMemoryRepository(seed []Car) *CarMemoryRepository {
	return &CarMemoryRepository{
		MemoryRepository: repository.NewMemoryRepository[Car, CarID](seed),
	}
}

type CarMemoryRepository struct {
	*repository.MemoryRepository[Car, CarID]
}

// FilterByBrand reads Data directly, so it has to hold the embedded lock.
func (repo *CarMemoryRepository) FilterByBrand(_ context.Context, brand string) []Car {
	repo.Lock()
	defer repo.Unlock()

	cars := []Car{}

	for _, c := range repo.Data {
		if strings.EqualFold(c.Brand, brand) {
			cars = append(cars, c)
		}
	}

	return cars
}
