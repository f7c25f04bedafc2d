package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateID is returned when creating an entity whose ID (or
	// another unique field) already exists.
	ErrDuplicateID = errors.New("entity already exists")

	// ErrStaleVersion is returned when an update carries a version that no
	// longer matches the stored record. The caller lost a write race and
	// must re-read before retrying.
	ErrStaleVersion = errors.New("stale entity version")
)
