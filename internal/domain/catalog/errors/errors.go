// Package errors contains domain-specific errors for the catalog domain
package errors

import (
	pkgerrors "github.com/bibegs/dramawallah-bot/pkg/errors"
)

// Domain errors for catalog operations
var (
	ErrNotAdmin          = pkgerrors.NewUnauthorizedError("sender is not the configured admin")
	ErrBroadcastNeedsSrc = pkgerrors.NewValidationError("broadcast requires a reply-to message")
)
