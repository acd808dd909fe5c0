package models

import "errors"

var ErrLocationRequired = errors.New("location is required")
var ErrHoursRequired = errors.New("hours is required for standard quotes")
var ErrTextRequired = errors.New("text is required")

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
