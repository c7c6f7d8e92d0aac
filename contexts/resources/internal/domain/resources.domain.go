// Package domain contains the records of the resources Context: users, cars, products and orders.
//
// Each record comes with an input that builds a new record and a patch that changes an existing one.
package domain

import (
	"errors"

	"github.com/go-arrower/restapi/repository"
)

// ID is the identifier of every record. It is unique within its collection.
type ID string

var ErrNotFound = errors.New("not found")

// Repository manages the records of one kind.
type Repository[E any] interface {
	repository.Repository[E, ID]
}

// Resource describes a record kind by its singular name, e.g. for messages like "User not found",
// and its plural name used in paths.
type Resource struct {
	Name   string
	Plural string
}

var (
	UserResource    = Resource{Name: "User", Plural: "users"}
	CarResource     = Resource{Name: "Car", Plural: "cars"}
	ProductResource = Resource{Name: "Product", Plural: "products"}
	OrderResource   = Resource{Name: "Order", Plural: "orders"}
)
