package models

// Error taxonomy for the service layer. The HTTP helper maps these to
// status codes; anything else is treated as an internal error.

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	if e.Message == "" {
		return "forbidden"
	}
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}
