package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrNotConfigured is returned by an adapter whose credentials are
	// missing. It is contained at the step level like any provider
	// failure and never aborts the remaining steps.
	ErrNotConfigured = goerr.New("provider is not configured")

	// ErrOperationInProgress guards against two concurrent runs racing
	// to provision or remove the same person.
	ErrOperationInProgress = goerr.New("an operation for this person is already in progress")

	// ErrNoAvailableNumbers is raised when the reserved prefix pool has
	// no purchasable numbers left.
	ErrNoAvailableNumbers = goerr.New("no available numbers found for reserved prefix")

	ErrOperationNotFound = goerr.New("operation record not found")
)
