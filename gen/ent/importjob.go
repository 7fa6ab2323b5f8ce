// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/directory-tools/linkedin-ingest/gen/ent/importjob"
	"github.com/google/uuid"
)

// ImportJob is the model entity for the ImportJob schema.
type ImportJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmployeeRecordID holds the value of the "employee_record_id" field.
	EmployeeRecordID string `json:"employee_record_id,omitempty"`
	// SourceName holds the value of the "source_name" field.
	SourceName string `json:"source_name,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int `json:"size_bytes,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// TextSource holds the value of the "text_source" field.
	TextSource *string `json:"text_source,omitempty"`
	// TextChars holds the value of the "text_chars" field.
	TextChars int `json:"text_chars,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// EntryCount holds the value of the "entry_count" field.
	EntryCount int `json:"entry_count,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// Saved holds the value of the "saved" field.
	Saved        bool `json:"saved,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importjob.FieldExtractedJSON:
			values[i] = new([]byte)
		case importjob.FieldSaved:
			values[i] = new(sql.NullBool)
		case importjob.FieldSizeBytes, importjob.FieldTextChars, importjob.FieldPageCount, importjob.FieldEntryCount:
			values[i] = new(sql.NullInt64)
		case importjob.FieldEmployeeRecordID, importjob.FieldSourceName, importjob.FieldStatus, importjob.FieldErrorMessage, importjob.FieldTextSource:
			values[i] = new(sql.NullString)
		case importjob.FieldStartedAt, importjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case importjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportJob fields.
func (_m *ImportJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case importjob.FieldEmployeeRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_record_id", values[i])
			} else if value.Valid {
				_m.EmployeeRecordID = value.String
			}
		case importjob.FieldSourceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_name", values[i])
			} else if value.Valid {
				_m.SourceName = value.String
			}
		case importjob.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = int(value.Int64)
			}
		case importjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case importjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case importjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case importjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case importjob.FieldTextSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_source", values[i])
			} else if value.Valid {
				_m.TextSource = new(string)
				*_m.TextSource = value.String
			}
		case importjob.FieldTextChars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field text_chars", values[i])
			} else if value.Valid {
				_m.TextChars = int(value.Int64)
			}
		case importjob.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case importjob.FieldEntryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entry_count", values[i])
			} else if value.Valid {
				_m.EntryCount = int(value.Int64)
			}
		case importjob.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case importjob.FieldSaved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field saved", values[i])
			} else if value.Valid {
				_m.Saved = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportJob.
// This includes values selected through modifiers, order, etc.
func (_m *ImportJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImportJob.
// Note that you need to call ImportJob.Unwrap() before calling this method if this ImportJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportJob) Update() *ImportJobUpdateOne {
	return NewImportJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportJob) Unwrap() *ImportJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportJob) String() string {
	var builder strings.Builder
	builder.WriteString("ImportJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("employee_record_id=")
	builder.WriteString(_m.EmployeeRecordID)
	builder.WriteString(", ")
	builder.WriteString("source_name=")
	builder.WriteString(_m.SourceName)
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TextSource; v != nil {
		builder.WriteString("text_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("text_chars=")
	builder.WriteString(fmt.Sprintf("%v", _m.TextChars))
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("entry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntryCount))
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	builder.WriteString("saved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Saved))
	builder.WriteByte(')')
	return builder.String()
}

// ImportJobs is a parsable slice of ImportJob.
type ImportJobs []*ImportJob
