package domain

import "errors"

// Sentinel errors for the localitem domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist in the collection.
	ErrItemNotFound = errors.New("item not found")

	// ErrValidation indicates a create candidate is missing name or coordinates.
	ErrValidation = errors.New("name and coordinates required")

	// ErrInvalidPolygon indicates a boundary ring with fewer than 3 vertices.
	// The boundary check never degrades to a permissive answer on this error.
	ErrInvalidPolygon = errors.New("invalid polygon")

	// ErrStorageRead indicates the persisted document could not be loaded.
	// Callers degrade to an empty collection and log; the error never
	// propagates to an HTTP response.
	ErrStorageRead = errors.New("item store read failed")

	// ErrStorageWrite indicates the persisted document could not be written.
	// Mutations log it and still report their intended post-write state —
	// the documented weak consistency point of the flat-file store.
	ErrStorageWrite = errors.New("item store write failed")
)
