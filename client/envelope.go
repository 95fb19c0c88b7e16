package client

import "net/http"

const messageSuccess = "Success"

// Envelope is the uniform result of every API call.
// Success is true only for a 2xx status with a parsed body; otherwise Data is the zero value.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Reshape carries status, message and success over to an envelope with different data
func Reshape[S any, T any](source *Envelope[S], data T) *Envelope[T] {
	return &Envelope[T]{
		Data:    data,
		Status:  source.Status,
		Message: source.Message,
		Success: source.Success,
	}
}

// Failure returns a failed envelope for status 0 with the supplied message
func Failure[T any](message string) *Envelope[T] {
	return &Envelope[T]{Message: message}
}

func isOK(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
