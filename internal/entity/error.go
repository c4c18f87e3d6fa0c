package entity

import (
	"errors"
	"strings"
)

// ErrConflictingData signals a unique-key collision in the backing
// collection. With store-generated ids it is never expected in practice and
// is surfaced as a storage fault, not a client input problem.
var ErrConflictingData = errors.New("data conflicts with existing data in unique column")

// FieldError names one violated constraint on one submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in a candidate
// order. It is the only error CreateOrder may return for bad input and is
// always safe to surface verbatim to the end user.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Message renders the user-facing form of the error, one violated field per
// sentence, without the field prefixes used in logs.
func (e *ValidationError) Message() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}
