// Package rmxerr carries errors through the TUI as messages.
package rmxerr

type (
	ErrMsg struct {
		Err error
	}
)

func (m ErrMsg) Error() string {
	return m.Err.Error()
}

func (m ErrMsg) Unwrap() error {
	return m.Err
}
