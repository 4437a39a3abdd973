package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAINotConfigured indicates that the AI analyzer has no API key configured.
// Receipt scanning cannot work until one is provided.
var ErrAINotConfigured = errors.New("ai analyzer not configured")

// ErrAIUpstream indicates that the external AI service call failed.
var ErrAIUpstream = errors.New("ai upstream error")

// ErrAIMalformedResponse indicates that the AI service returned output that
// could not be parsed as JSON even after stripping markdown fences.
var ErrAIMalformedResponse = errors.New("ai response is not valid JSON")
