package errors

// ErrorWithStatusCode carries the HTTP status a handler should answer with.
// Errors without one are treated as internal server errors.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}
