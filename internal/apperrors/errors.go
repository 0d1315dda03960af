package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the supplied credentials are wrong.
// Callers must not reveal whether the account or the password was at fault.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrRateLimited indicates that a request was rejected by the transaction creation limiter.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrConversion indicates that a currency conversion could not be completed,
// typically because the external rate API failed or omitted the target currency.
var ErrConversion = errors.New("currency conversion failed")
