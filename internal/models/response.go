// ABOUTME: Response is the payload returned for every conversational turn
// ABOUTME: Options carries the pending slot's choices, empty otherwise
package models

// Response is what one turn of conversation yields: a message for the user
// and, when a question is pending, the canonical options to choose from.
type Response struct {
	Message string   `json:"message"`
	Options []string `json:"options"`
}

// NewResponse builds a Response, normalizing nil options to an empty slice so
// JSON encodes them as [] rather than null.
func NewResponse(message string, options []string) Response {
	if options == nil {
		options = []string{}
	}
	return Response{Message: message, Options: options}
}
