package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx response.
//
// Message is rendered under "error" so consumers can rely on a single key.
type ErrorResponse struct {
	Message      string    `json:"error" example:"Quote not found for ticker symbol: INVALID"`
	ErrorDetails string    `json:"details,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp" example:"2024-05-01T12:00:00Z"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// A nil err leaves the details empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
