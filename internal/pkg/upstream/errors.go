package upstream

import "fmt"

// APIError means the upstream responded with a non-success status. The message
// is taken from the JSON "error" field of the body when the body parses as
// JSON, otherwise from the HTTP status line.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream api error: status %d - %s", e.Status, e.Message)
}

// ConnectivityError means the upstream could not be reached at all.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("upstream unreachable: %s", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
