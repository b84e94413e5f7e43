package remote

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when no table client is configured.
var ErrSourceUnavailable = errors.New("remote table source unavailable")

// QueryError reports a failed table query: transport, error response or decode failure.
// StatusCode is set only when the client that produced it can see the HTTP status.
type QueryError struct {
	Table      string
	StatusCode int
	Message    string
	Err        error
}

func (e *QueryError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "query failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s query: %s (status=%d)", e.Table, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s query: %s", e.Table, msg)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// AsQueryError attempts to unwrap an error into a QueryError.
func AsQueryError(err error) (*QueryError, bool) {
	var qErr *QueryError
	if errors.As(err, &qErr) {
		return qErr, true
	}
	return nil, false
}

// WrapQueryError returns err as a QueryError for table, keeping an existing one intact.
func WrapQueryError(table string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsQueryError(err); ok {
		return err
	}
	return &QueryError{Table: table, Err: err}
}
