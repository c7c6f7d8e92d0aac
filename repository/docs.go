// Package repository offers a generic, ordered in-memory repository.
//
// A MemoryRepository keeps the records of one entity kind in insertion order and exposes
// the typical list, read, create, update and delete methods. Absence of a record is not an error:
// FindByID and Update report it with a second boolean return value, DeleteByID with its result.
//
// The repository knows nothing about the shape of an entity besides its id field.
// New records are built by the caller's Input and partial updates are applied by the caller's Patch,
// so the same implementation serves every entity kind.
//
// The data is kept in memory only. It is lost when the process stops.
package repository
