// Package storage provides named durable slots for small pieces of client state.
package storage

import "errors"

// ErrSlotNotFound is returned by Load when nothing has been saved yet.
var ErrSlotNotFound = errors.New("slot not found")

// Slot is one named, durable value.
type Slot interface {
	// Load returns the stored bytes, or ErrSlotNotFound.
	Load() ([]byte, error)

	// Save replaces the stored bytes.
	Save(data []byte) error

	// Remove deletes the value. Removing an absent slot is not an error.
	Remove() error
}
