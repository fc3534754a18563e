package domain

import "errors"

var (
	// ErrPersistenceRead is wrapped by repositories when stored progress cannot be read.
	ErrPersistenceRead = errors.New("progress read failed")
	// ErrPersistenceWrite signals that progress was not saved; the in-memory state is still valid.
	ErrPersistenceWrite  = errors.New("progress write failed")
	ErrDuplicateID       = errors.New("duplicate catalog id")
	ErrInvalidDefinition = errors.New("invalid catalog definition")
)
