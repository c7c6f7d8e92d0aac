package web

import "github.com/go-arrower/restapi/contexts/resources/internal/domain"

// Payload is the request body of a create call.
// All fields of the input are required, so payloads use pointers to tell a missing field from a zero value.
type Payload[C any] interface {
	Input() C
}

type UserPayload struct {
	Name  *string `json:"name"  validate:"required"`
	Email *string `json:"email" validate:"required"`
	Age   *int    `json:"age"   validate:"required"`
}

func (p UserPayload) Input() domain.NewUser {
	return domain.NewUser{
		Name:  deref(p.Name),
		Email: deref(p.Email),
		Age:   deref(p.Age),
	}
}

type CarPayload struct {
	Brand *string          `json:"brand" validate:"required"`
	Model *string          `json:"model" validate:"required"`
	Year  *int             `json:"year"  validate:"required"`
	Color *domain.CarColor `json:"color" validate:"required"`
	Price *float64         `json:"price" validate:"required"`
}

func (p CarPayload) Input() domain.NewCar {
	return domain.NewCar{
		Brand: deref(p.Brand),
		Model: deref(p.Model),
		Year:  deref(p.Year),
		Color: deref(p.Color),
		Price: deref(p.Price),
	}
}

type ProductPayload struct {
	Name        *string                 `json:"name"        validate:"required"`
	Description *string                 `json:"description" validate:"required"`
	Price       *float64                `json:"price"       validate:"required"`
	Stock       *int                    `json:"stock"       validate:"required"`
	Category    *domain.ProductCategory `json:"category"    validate:"required"`
}

func (p ProductPayload) Input() domain.NewProduct {
	return domain.NewProduct{
		Name:        deref(p.Name),
		Description: deref(p.Description),
		Price:       deref(p.Price),
		Stock:       deref(p.Stock),
		Category:    deref(p.Category),
	}
}

// OrderPayload requires the user and the items. Total and status are optional.
type OrderPayload struct {
	UserID *string             `json:"userId"           validate:"required"`
	Items  []OrderItemPayload  `json:"items"            validate:"required,dive"`
	Total  *float64            `json:"total,omitempty"`
	Status *domain.OrderStatus `json:"status,omitempty"`
}

type OrderItemPayload struct {
	ProductID *string  `json:"productId" validate:"required"`
	Quantity  *int     `json:"quantity"  validate:"required"`
	Price     *float64 `json:"price"     validate:"required"`
}

func (p OrderPayload) Input() domain.NewOrder {
	return domain.NewOrder{
		UserID: deref(p.UserID),
		Items:  orderItems(p.Items),
		Total:  p.Total,
		Status: p.Status,
	}
}

// PatchPayload is the request body of an update call. All fields are optional.
type PatchPayload[P any] interface {
	Patch() P
}

type (
	UserPatchPayload    domain.UserPatch
	CarPatchPayload     domain.CarPatch
	ProductPatchPayload domain.ProductPatch
)

func (p UserPatchPayload) Patch() domain.UserPatch       { return domain.UserPatch(p) }
func (p CarPatchPayload) Patch() domain.CarPatch         { return domain.CarPatch(p) }
func (p ProductPatchPayload) Patch() domain.ProductPatch { return domain.ProductPatch(p) }

// OrderPatchPayload replaces the items of an order, if present. Each new item has to be complete.
type OrderPatchPayload struct {
	UserID *string             `json:"userId,omitempty"`
	Items  []OrderItemPayload  `json:"items,omitempty"  validate:"omitempty,dive"`
	Total  *float64            `json:"total,omitempty"`
	Status *domain.OrderStatus `json:"status,omitempty"`
}

func (p OrderPatchPayload) Patch() domain.OrderPatch {
	var items []domain.OrderItem
	if p.Items != nil {
		items = orderItems(p.Items)
	}

	return domain.OrderPatch{
		UserID: p.UserID,
		Items:  items,
		Total:  p.Total,
		Status: p.Status,
	}
}

func orderItems(payloads []OrderItemPayload) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(payloads))
	for _, item := range payloads {
		items = append(items, domain.OrderItem{
			ProductID: deref(item.ProductID),
			Quantity:  deref(item.Quantity),
			Price:     deref(item.Price),
		})
	}

	return items
}

func deref[T any](v *T) T { //nolint:ireturn // valid use of generics
	if v == nil {
		return *new(T)
	}

	return *v
}
