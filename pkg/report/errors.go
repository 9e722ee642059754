package report

import (
	"errors"
	"sort"
	"strings"
)

// Error kinds. Match with errors.Is.
var (
	ErrPermissionDenied = errors.New("access denied")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrStorage          = errors.New("storage error")
	ErrExport           = errors.New("export failed")
)

// Error carries a kind plus optional field-level detail and the underlying cause.
// Only Kind and Fields are meant for callers; Err stays server side.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString("; ")
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(e.Fields[k])
		}
	}
	if e.Err != nil {
		sb.WriteString(" (")
		sb.WriteString(e.Err.Error())
		sb.WriteString(")")
	}
	return sb.String()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func PermissionDenied() error {
	return &Error{Kind: ErrPermissionDenied}
}

func InvalidRequest(message string, fields map[string]string) error {
	return &Error{Kind: ErrInvalidRequest, Message: message, Fields: fields}
}

func InvalidField(field, message string) error {
	return &Error{Kind: ErrInvalidRequest, Fields: map[string]string{field: message}}
}

func StorageError(op string, err error) error {
	return &Error{Kind: ErrStorage, Message: op, Err: err}
}

func ExportError(op string, err error) error {
	return &Error{Kind: ErrExport, Message: op, Err: err}
}
