package printing

import "fmt"

// RenderError reports a receipt that cannot be laid out.
type RenderError struct {
	Field  string
	Reason string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render receipt: %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("render receipt: %s: %s", e.Field, e.Reason)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
