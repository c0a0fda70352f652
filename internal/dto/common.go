package dto

// Actor identifies the authenticated user performing an operation, for
// finalize metadata and audit records.
type Actor struct {
	UserID   string
	UserName string
}
