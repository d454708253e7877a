package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates an amount that is zero, negative or not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnsupportedCurrency indicates a currency code that is not in the catalog.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not act on the requested resource.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrUpstreamUnavailable indicates the exchange rate provider could not be reached
// (network error or timeout).
var ErrUpstreamUnavailable = errors.New("exchange rate provider unavailable")

// ErrUpstreamFormat indicates the exchange rate provider returned a response that
// could not be parsed into the expected rate mapping.
var ErrUpstreamFormat = errors.New("exchange rate provider returned malformed response")

// ErrUpstreamAuth indicates the exchange rate provider rejected the configured API key.
var ErrUpstreamAuth = errors.New("exchange rate provider rejected credentials")
