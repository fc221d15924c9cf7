package validation

import "errors"

// ErrPayloadTooLarge is returned when the request body exceeds size limits
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrNotAnImage is returned when an uploaded file is not an image
var ErrNotAnImage = errors.New("only images are accepted")
