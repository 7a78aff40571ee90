package services

import "errors"

var (
	// ErrLoadFailed means the settings store could not be read. It is
	// distinct from a first run, where nothing has been stored yet.
	ErrLoadFailed = errors.New("load settings failed")
	// ErrSaveFailed means the settings snapshot was not persisted.
	ErrSaveFailed = errors.New("save settings failed")
	// ErrKeyLookupFailed and ErrKeySaveFailed are scoped to one provider's
	// credential and are logged rather than returned.
	ErrKeyLookupFailed = errors.New("provider key lookup failed")
	ErrKeySaveFailed   = errors.New("provider key save failed")
	ErrUnknownProvider = errors.New("unknown provider")
)
