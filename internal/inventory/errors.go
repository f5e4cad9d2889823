// =============================================================================
// WhiteSource CSV Agent - Inventory Errors
// =============================================================================

package inventory

import "fmt"

// ServiceError reports a failed update call. StatusCode is zero when the
// request never produced an HTTP response.
type ServiceError struct {
	StatusCode int
	Msg        string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
