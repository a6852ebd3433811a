package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no authenticated identity was established.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated identity may not access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrRateProvider indicates that the external currency-rate provider failed or
// returned a payload without a usable rate.
var ErrRateProvider = errors.New("rate provider failure")
