package domain

import "time"

type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// NewUser holds all fields required to create a User.
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func (in NewUser) Build(id ID, _ time.Time) User {
	return User{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Age:   in.Age,
	}
}

// UserPatch changes all fields that are not nil.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
}

func (p UserPatch) Apply(user User) User {
	set(&user.Name, p.Name)
	set(&user.Email, p.Email)
	set(&user.Age, p.Age)

	return user
}

// UserSeed returns the users every new collection starts with.
func UserSeed() []User {
	return []User{
		{ID: "1", Name: "João Silva", Email: "joao@example.com", Age: 30},
		{ID: "2", Name: "Maria Santos", Email: "maria@example.com", Age: 25},
		{ID: "3", Name: "Pedro Oliveira", Email: "pedro@example.com", Age: 35},
	}
}

// set overwrites field with the value of patch, if patch is present.
func set[T any](field *T, patch *T) {
	if patch != nil {
		*field = *patch
	}
}
