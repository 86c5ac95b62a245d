package model

// ValidationError marks request payloads that failed required-field checks.
// Handlers translate it to a 400 without inspecting the message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
