package chapa

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports every rule a request broke, in the order the
// rules are checked. It is returned before any network call is made.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "\n")
}

// APIError is a non-200 provider response. Payload is the decoded
// response body plus the tx_ref the call was made with.
type APIError struct {
	StatusCode int
	Payload    Result
}

func (e *APIError) Error() string {
	b, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Sprintf("chapa api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("chapa api error: status %d: %s", e.StatusCode, b)
}

// TxRef returns the reference the failed call pertains to.
func (e *APIError) TxRef() string {
	return e.Payload.TxRef()
}

// TransportError wraps a failure between the client and the provider,
// such as a connection error or a response body that is not JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
