package model

// Scope carries the identity of the caller through use cases.
type Scope struct {
	UserID string
}
