package domain

import "time"

type CarColor string

const (
	White  CarColor = "White"
	Black  CarColor = "Black"
	Red    CarColor = "Red"
	Blue   CarColor = "Blue"
	Silver CarColor = "Silver"
	Gray   CarColor = "Gray"
	Green  CarColor = "Green"
	Yellow CarColor = "Yellow"
)

func CarColors() []CarColor {
	return []CarColor{White, Black, Red, Blue, Silver, Gray, Green, Yellow}
}

type Car struct {
	ID    ID       `json:"id"`
	Brand string   `json:"brand"`
	Model string   `json:"model"`
	Year  int      `json:"year"`
	Color CarColor `json:"color"`
	Price float64  `json:"price"`
}

type NewCar struct {
	Brand string   `json:"brand"`
	Model string   `json:"model"`
	Year  int      `json:"year"`
	Color CarColor `json:"color" validate:"oneof=White Black Red Blue Silver Gray Green Yellow"`
	Price float64  `json:"price"`
}

func (in NewCar) Build(id ID, _ time.Time) Car {
	return Car{
		ID:    id,
		Brand: in.Brand,
		Model: in.Model,
		Year:  in.Year,
		Color: in.Color,
		Price: in.Price,
	}
}

type CarPatch struct {
	Brand *string   `json:"brand,omitempty"`
	Model *string   `json:"model,omitempty"`
	Year  *int      `json:"year,omitempty"`
	Color *CarColor `json:"color,omitempty" validate:"omitempty,oneof=White Black Red Blue Silver Gray Green Yellow"`
	Price *float64  `json:"price,omitempty"`
}

func (p CarPatch) Apply(car Car) Car {
	set(&car.Brand, p.Brand)
	set(&car.Model, p.Model)
	set(&car.Year, p.Year)
	set(&car.Color, p.Color)
	set(&car.Price, p.Price)

	return car
}

func CarSeed() []Car {
	return []Car{
		{ID: "1", Brand: "Toyota", Model: "Corolla", Year: 2020, Color: White, Price: 85000.0},
		{ID: "2", Brand: "Honda", Model: "Civic", Year: 2021, Color: Black, Price: 92000.0},
		{ID: "3", Brand: "Ford", Model: "Focus", Year: 2019, Color: Red, Price: 75000.0},
	}
}
