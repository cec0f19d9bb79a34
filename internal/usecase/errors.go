package usecase

import "errors"

// Sentinel errors shared across usecases. Handlers map these onto HTTP
// status codes; everything else surfaces as ErrInternal.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInternal             = errors.New("internal error")
	ErrJobNotFound          = errors.New("job not found")
	ErrNoApplicationHistory = errors.New("no application history")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)
