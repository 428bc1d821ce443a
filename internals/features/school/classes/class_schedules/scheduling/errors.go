// file: internals/features/school/classes/class_schedules/scheduling/errors.go
package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

/* =========================
   ValidationError: input salah, client bisa perbaiki
========================= */

type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Add(field, msg string) *ValidationError {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
	return e
}

func (e *ValidationError) HasFields() bool { return len(e.Fields) > 0 }

/* =========================
   ConflictError: bentrok resource, request ditolak utuh
========================= */

type ConflictError struct {
	Conflicts []Conflict
}

func (e *ConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	counts := map[ConflictKind]int{}
	for _, c := range e.Conflicts {
		counts[c.Kind]++
	}
	parts := make([]string, 0, len(checkOrder))
	for _, k := range checkOrder {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, n))
		}
	}
	return fmt.Sprintf("schedule conflict: %d conflict(s) [%s]", len(e.Conflicts), strings.Join(parts, " "))
}

/* =========================
   InfrastructureError: storage gagal, bukan salah client
========================= */

type InfrastructureError struct {
	Op        string
	Err       error
	Retryable bool
}

func (e *InfrastructureError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

/* =========================
   Classification helpers
========================= */

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsInfrastructure(err error) bool {
	var ie *InfrastructureError
	return errors.As(err, &ie)
}
