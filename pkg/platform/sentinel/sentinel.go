package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and external clients
// return these (optionally wrapped) so services can translate them into
// domain behavior: a missing person becomes a field error, a missing
// journalpost means "create it".
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store or registry
// - ErrConflict: entity already exists
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: service or resource temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
