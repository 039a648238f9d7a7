package auth

import "github.com/healhub/healhub_backend/pkg/apperr"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so the response never reveals which emails are registered.
	ErrInvalidCredentials = apperr.Unauthorized("invalid email or password")

	ErrAccountDisabled  = apperr.Unauthorized("account disabled")
	ErrInvalidResetCode = apperr.Unauthorized("invalid reset code")
	ErrResetCodeExpired = apperr.Unauthorized("reset code expired")
)
