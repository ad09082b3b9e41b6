package topo

import "errors"

var (
	// ErrNotFound indicates a referenced session, node, or link is absent.
	ErrNotFound = errors.New("not found")
	// ErrExists indicates an entity with the same ID is already defined.
	ErrExists = errors.New("already exists")
	// ErrConflict indicates a referential conflict, e.g. removing a node
	// that a live link still references.
	ErrConflict = errors.New("conflict")
	// ErrSlotInUse indicates an interface slot is already bound to a link.
	ErrSlotInUse = errors.New("interface slot in use")
	// ErrInvalid indicates an entity failed structural validation.
	ErrInvalid = errors.New("invalid entity")
)
