package domain

import "time"

type ProductCategory string

const (
	Electronics ProductCategory = "Electronics"
	Clothing    ProductCategory = "Clothing"
	Food        ProductCategory = "Food"
	Books       ProductCategory = "Books"
	Toys        ProductCategory = "Toys"
	Home        ProductCategory = "Home"
	Sports      ProductCategory = "Sports"
	Automotive  ProductCategory = "Automotive"
)

func ProductCategories() []ProductCategory {
	return []ProductCategory{Electronics, Clothing, Food, Books, Toys, Home, Sports, Automotive}
}

type Product struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	Category    ProductCategory `json:"category"`
}

type NewProduct struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Stock       int             `json:"stock"`
	Category    ProductCategory `json:"category" validate:"oneof=Electronics Clothing Food Books Toys Home Sports Automotive"`
}

func (in NewProduct) Build(id ID, _ time.Time) Product {
	return Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
	}
}

type ProductPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Category    *ProductCategory `json:"category,omitempty" validate:"omitempty,oneof=Electronics Clothing Food Books Toys Home Sports Automotive"` //nolint:lll
}

func (p ProductPatch) Apply(product Product) Product {
	set(&product.Name, p.Name)
	set(&product.Description, p.Description)
	set(&product.Price, p.Price)
	set(&product.Stock, p.Stock)
	set(&product.Category, p.Category)

	return product
}

func ProductSeed() []Product {
	return []Product{
		{ID: "1", Name: "Notebook", Description: "Notebook Dell Inspiron", Price: 3500.0, Stock: 10, Category: Electronics},
		{ID: "2", Name: "Mouse", Description: "Mouse Logitech Wireless", Price: 150.0, Stock: 50, Category: Electronics},
		{ID: "3", Name: "Teclado", Description: "Teclado Mecânico RGB", Price: 450.0, Stock: 25, Category: Electronics},
	}
}
