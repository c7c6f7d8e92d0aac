package repository

import (
	"context"
	"errors"
	"reflect"
	"time"
)

// Input builds a new entity E for the given id.
// now is the time the entity is created at, entities without timestamps ignore it.
type Input[E any, ID id] interface {
	Build(id ID, now time.Time) E
}

// Patch changes some fields of an entity E.
// Apply returns the changed copy and leaves all fields not part of the patch untouched.
type Patch[E any] interface {
	Apply(current E) E
}

// Repository is a general purpose interface documenting which methods are available by the generic MemoryRepository.
// ID is the primary key and needs to be of an underlying string type.
type Repository[E any, ID id] interface {
	All(ctx context.Context) []E
	FindByID(ctx context.Context, id ID) (E, bool)
	Create(ctx context.Context, input Input[E, ID]) E
	Update(ctx context.Context, id ID, patch Patch[E]) (E, bool)
	DeleteByID(ctx context.Context, id ID) bool
	Count(ctx context.Context) int
}

// Option takes in a repository configuration to set different optional properties.
type Option func(config *repoConfig)

// WithIDField set's the name of the field that is used as an id or primary key.
// If not set, it is assumed that the entity struct has a field with the name "ID".
func WithIDField(idFieldName string) Option {
	return func(config *repoConfig) {
		config.idFieldName = idFieldName
	}
}

// WithIDGenerator sets the strategy used to assign ids to created entities.
// If not set, LengthIDs is used.
func WithIDGenerator(gen IDGenerator) Option {
	return func(config *repoConfig) {
		if gen != nil {
			config.ids = gen
		}
	}
}

// WithClock overwrites the source of the creation time handed to Input.Build.
func WithClock(now func() time.Time) Option {
	return func(config *repoConfig) {
		if now != nil {
			config.now = now
		}
	}
}

type repoConfig struct {
	idFieldName string
	ids         IDGenerator
	now         func() time.Time
}

// id are the types allowed as a primary key used in the generic Repository.
type id interface {
	~string
}

var errSetIDFieldFailed = errors.New("cannot use id field: entity MUST have a field of type string")

const panicIDNotSupported = "type of ID is not supported: "

func defaultName(entity any) string {
	return reflect.TypeOf(entity).Elem().Name()
}
