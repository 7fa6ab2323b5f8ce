// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the importjob type in the database.
	Label = "import_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmployeeRecordID holds the string denoting the employee_record_id field in the database.
	FieldEmployeeRecordID = "employee_record_id"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTextSource holds the string denoting the text_source field in the database.
	FieldTextSource = "text_source"
	// FieldTextChars holds the string denoting the text_chars field in the database.
	FieldTextChars = "text_chars"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldEntryCount holds the string denoting the entry_count field in the database.
	FieldEntryCount = "entry_count"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldSaved holds the string denoting the saved field in the database.
	FieldSaved = "saved"
	// Table holds the table name of the importjob in the database.
	Table = "import_job"
)

// Columns holds all SQL columns for importjob fields.
var Columns = []string{
	FieldID,
	FieldEmployeeRecordID,
	FieldSourceName,
	FieldSizeBytes,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldTextSource,
	FieldTextChars,
	FieldPageCount,
	FieldEntryCount,
	FieldExtractedJSON,
	FieldSaved,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSizeBytes holds the default value on creation for the "size_bytes" field.
	DefaultSizeBytes int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultTextChars holds the default value on creation for the "text_chars" field.
	DefaultTextChars int
	// DefaultPageCount holds the default value on creation for the "page_count" field.
	DefaultPageCount int
	// DefaultEntryCount holds the default value on creation for the "entry_count" field.
	DefaultEntryCount int
	// DefaultSaved holds the default value on creation for the "saved" field.
	DefaultSaved bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ImportJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmployeeRecordID orders the results by the employee_record_id field.
func ByEmployeeRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeRecordID, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTextSource orders the results by the text_source field.
func ByTextSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextSource, opts...).ToFunc()
}

// ByTextChars orders the results by the text_chars field.
func ByTextChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextChars, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByEntryCount orders the results by the entry_count field.
func ByEntryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryCount, opts...).ToFunc()
}

// BySaved orders the results by the saved field.
func BySaved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSaved, opts...).ToFunc()
}
