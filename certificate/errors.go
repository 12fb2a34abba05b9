package certificate

import "fmt"

// ValidationError reports a missing required document field. The caller can
// recover by supplying correct data; the pipeline performed no side effects.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("certificate: required field %s is empty", e.Field)
}

// RenderError reports a failure inside document construction.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("certificate: render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// StorageError reports a failed artifact write. The pipeline stops before the
// ledger write; retrying the whole pipeline is safe because uploads are
// idempotent per path.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("certificate: storing %s failed: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PersistenceError reports a failed ledger write after a successful storage
// write. The stored artifact remains; retried issuance overwrites the same
// path. Duplicate is set when the write lost a race against the unique
// (user, level) constraint, meaning the member is already certified.
type PersistenceError struct {
	Duplicate bool
	Err       error
}

func (e *PersistenceError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("certificate: record already exists: %v", e.Err)
	}
	return fmt.Sprintf("certificate: recording issuance failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
