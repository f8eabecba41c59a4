// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// Store errors
	ErrStoreError     = "STORE_ERROR"
	ErrObjectNotFound = "OBJECT_NOT_FOUND"
	ErrTypeNotFound   = "TYPE_NOT_FOUND"

	// Import errors
	ErrArchiveInvalid = "ARCHIVE_INVALID"
	ErrImportFailed   = "IMPORT_FAILED"
	ErrRevertFailed   = "REVERT_FAILED"

	// Sync errors
	ErrSyncNotConfigured = "SYNC_NOT_CONFIGURED"
	ErrSyncFailed        = "SYNC_FAILED"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrFileNotFound    = "FILE_NOT_FOUND"
)
