// Package parser turns access-log lines into records and loads raw lines
// from files and URLs.
package parser

import "fmt"

// Field identifies one of the ten fields of an access-log record.
type Field int

// Fields in the order they appear in a log line.
const (
	FieldRemoteAddr Field = iota
	FieldRemoteUser
	FieldTimeLocal
	FieldRequestMethod
	FieldRequest
	FieldProtocol
	FieldStatus
	FieldBodyBytesSent
	FieldReferer
	FieldUserAgent

	// NumFields is the number of fields in a record.
	NumFields
)

var fieldNames = [NumFields]string{
	"remote_addr",
	"remote_user",
	"time_local",
	"request_type",
	"request",
	"protocol",
	"status",
	"body_bytes_sent",
	"http_referer",
	"http_user_agent",
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, NumFields)
	for i, name := range fieldNames {
		m[name] = Field(i)
	}
	return m
}()

// String returns the column name of the field.
func (f Field) String() string {
	if f < 0 || f >= NumFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// FieldByName returns the field with the given column name.
func FieldByName(name string) (Field, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// ColumnNames returns the column names of all fields in order.
func ColumnNames() []string {
	names := make([]string, NumFields)
	copy(names, fieldNames[:])
	return names
}

// Record is a parsed access-log line. Each field is either present or
// missing; a record is immutable once built.
type Record struct {
	values  [NumFields]string
	present [NumFields]bool
}

// NewRecord builds a record populating only the given fields.
func NewRecord(values map[Field]string) *Record {
	r := &Record{}
	for f, v := range values {
		if f < 0 || f >= NumFields {
			continue
		}
		r.values[f] = v
		r.present[f] = true
	}
	return r
}

// Get returns the value of a field and whether it is present.
func (r *Record) Get(f Field) (string, bool) {
	if f < 0 || f >= NumFields || !r.present[f] {
		return "", false
	}
	return r.values[f], true
}

// Value implements table.Row.
func (r *Record) Value(column string) (string, bool) {
	f, ok := fieldsByName[column]
	if !ok {
		return "", false
	}
	return r.Get(f)
}

// Columns implements table.Row. Only present fields are listed.
func (r *Record) Columns() []string {
	cols := make([]string, 0, NumFields)
	for i, ok := range r.present {
		if ok {
			cols = append(cols, fieldNames[i])
		}
	}
	return cols
}

// String reassembles the record into the access-log line layout.
// Missing fields are written as "-".
func (r *Record) String() string {
	v := func(f Field) string {
		if s, ok := r.Get(f); ok {
			return s
		}
		return "-"
	}
	return fmt.Sprintf(`%s - %s [%s] "%s %s %s" %s %s "%s" "%s"`,
		v(FieldRemoteAddr),
		v(FieldRemoteUser),
		v(FieldTimeLocal),
		v(FieldRequestMethod),
		v(FieldRequest),
		v(FieldProtocol),
		v(FieldStatus),
		v(FieldBodyBytesSent),
		v(FieldReferer),
		v(FieldUserAgent))
}
