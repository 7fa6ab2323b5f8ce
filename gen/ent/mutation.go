// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/directory-tools/linkedin-ingest/gen/ent/importjob"
	"github.com/directory-tools/linkedin-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeImportJob = "ImportJob"
)

// ImportJobMutation represents an operation that mutates the ImportJob nodes in the graph.
type ImportJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	employee_record_id   *string
	source_name          *string
	size_bytes           *int
	addsize_bytes        *int
	started_at           *time.Time
	finished_at          *time.Time
	status               *string
	error_message        *string
	text_source          *string
	text_chars           *int
	addtext_chars        *int
	page_count           *int
	addpage_count        *int
	entry_count          *int
	addentry_count       *int
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	saved                *bool
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ImportJob, error)
	predicates           []predicate.ImportJob
}

var _ ent.Mutation = (*ImportJobMutation)(nil)

// importjobOption allows management of the mutation configuration using functional options.
type importjobOption func(*ImportJobMutation)

// newImportJobMutation creates new mutation for the ImportJob entity.
func newImportJobMutation(c config, op Op, opts ...importjobOption) *ImportJobMutation {
	m := &ImportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeImportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportJobID sets the ID field of the mutation.
func withImportJobID(id uuid.UUID) importjobOption {
	return func(m *ImportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportJob
		)
		m.oldValue = func(ctx context.Context) (*ImportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportJob sets the old ImportJob of the mutation.
func withImportJob(node *ImportJob) importjobOption {
	return func(m *ImportJobMutation) {
		m.oldValue = func(context.Context) (*ImportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportJob entities.
func (m *ImportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployeeRecordID sets the "employee_record_id" field.
func (m *ImportJobMutation) SetEmployeeRecordID(s string) {
	m.employee_record_id = &s
}

// EmployeeRecordID returns the value of the "employee_record_id" field in the mutation.
func (m *ImportJobMutation) EmployeeRecordID() (r string, exists bool) {
	v := m.employee_record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeRecordID returns the old "employee_record_id" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldEmployeeRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeRecordID: %w", err)
	}
	return oldValue.EmployeeRecordID, nil
}

// ClearEmployeeRecordID clears the value of the "employee_record_id" field.
func (m *ImportJobMutation) ClearEmployeeRecordID() {
	m.employee_record_id = nil
	m.clearedFields[importjob.FieldEmployeeRecordID] = struct{}{}
}

// EmployeeRecordIDCleared returns if the "employee_record_id" field was cleared in this mutation.
func (m *ImportJobMutation) EmployeeRecordIDCleared() bool {
	_, ok := m.clearedFields[importjob.FieldEmployeeRecordID]
	return ok
}

// ResetEmployeeRecordID resets all changes to the "employee_record_id" field.
func (m *ImportJobMutation) ResetEmployeeRecordID() {
	m.employee_record_id = nil
	delete(m.clearedFields, importjob.FieldEmployeeRecordID)
}

// SetSourceName sets the "source_name" field.
func (m *ImportJobMutation) SetSourceName(s string) {
	m.source_name = &s
}

// SourceName returns the value of the "source_name" field in the mutation.
func (m *ImportJobMutation) SourceName() (r string, exists bool) {
	v := m.source_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceName returns the old "source_name" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldSourceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceName: %w", err)
	}
	return oldValue.SourceName, nil
}

// ClearSourceName clears the value of the "source_name" field.
func (m *ImportJobMutation) ClearSourceName() {
	m.source_name = nil
	m.clearedFields[importjob.FieldSourceName] = struct{}{}
}

// SourceNameCleared returns if the "source_name" field was cleared in this mutation.
func (m *ImportJobMutation) SourceNameCleared() bool {
	_, ok := m.clearedFields[importjob.FieldSourceName]
	return ok
}

// ResetSourceName resets all changes to the "source_name" field.
func (m *ImportJobMutation) ResetSourceName() {
	m.source_name = nil
	delete(m.clearedFields, importjob.FieldSourceName)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *ImportJobMutation) SetSizeBytes(i int) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *ImportJobMutation) SizeBytes() (r int, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *ImportJobMutation) AddSizeBytes(i int) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *ImportJobMutation) AddedSizeBytes() (r int, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *ImportJobMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ImportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ImportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ImportJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ImportJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ImportJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ImportJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[importjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ImportJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ImportJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, importjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ImportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ImportJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[importjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ImportJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[importjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, importjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ImportJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ImportJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ImportJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[importjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ImportJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[importjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ImportJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, importjob.FieldErrorMessage)
}

// SetTextSource sets the "text_source" field.
func (m *ImportJobMutation) SetTextSource(s string) {
	m.text_source = &s
}

// TextSource returns the value of the "text_source" field in the mutation.
func (m *ImportJobMutation) TextSource() (r string, exists bool) {
	v := m.text_source
	if v == nil {
		return
	}
	return *v, true
}

// OldTextSource returns the old "text_source" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldTextSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextSource: %w", err)
	}
	return oldValue.TextSource, nil
}

// ClearTextSource clears the value of the "text_source" field.
func (m *ImportJobMutation) ClearTextSource() {
	m.text_source = nil
	m.clearedFields[importjob.FieldTextSource] = struct{}{}
}

// TextSourceCleared returns if the "text_source" field was cleared in this mutation.
func (m *ImportJobMutation) TextSourceCleared() bool {
	_, ok := m.clearedFields[importjob.FieldTextSource]
	return ok
}

// ResetTextSource resets all changes to the "text_source" field.
func (m *ImportJobMutation) ResetTextSource() {
	m.text_source = nil
	delete(m.clearedFields, importjob.FieldTextSource)
}

// SetTextChars sets the "text_chars" field.
func (m *ImportJobMutation) SetTextChars(i int) {
	m.text_chars = &i
	m.addtext_chars = nil
}

// TextChars returns the value of the "text_chars" field in the mutation.
func (m *ImportJobMutation) TextChars() (r int, exists bool) {
	v := m.text_chars
	if v == nil {
		return
	}
	return *v, true
}

// OldTextChars returns the old "text_chars" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldTextChars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextChars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextChars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextChars: %w", err)
	}
	return oldValue.TextChars, nil
}

// AddTextChars adds i to the "text_chars" field.
func (m *ImportJobMutation) AddTextChars(i int) {
	if m.addtext_chars != nil {
		*m.addtext_chars += i
	} else {
		m.addtext_chars = &i
	}
}

// AddedTextChars returns the value that was added to the "text_chars" field in this mutation.
func (m *ImportJobMutation) AddedTextChars() (r int, exists bool) {
	v := m.addtext_chars
	if v == nil {
		return
	}
	return *v, true
}

// ResetTextChars resets all changes to the "text_chars" field.
func (m *ImportJobMutation) ResetTextChars() {
	m.text_chars = nil
	m.addtext_chars = nil
}

// SetPageCount sets the "page_count" field.
func (m *ImportJobMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *ImportJobMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *ImportJobMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *ImportJobMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *ImportJobMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetEntryCount sets the "entry_count" field.
func (m *ImportJobMutation) SetEntryCount(i int) {
	m.entry_count = &i
	m.addentry_count = nil
}

// EntryCount returns the value of the "entry_count" field in the mutation.
func (m *ImportJobMutation) EntryCount() (r int, exists bool) {
	v := m.entry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryCount returns the old "entry_count" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldEntryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryCount: %w", err)
	}
	return oldValue.EntryCount, nil
}

// AddEntryCount adds i to the "entry_count" field.
func (m *ImportJobMutation) AddEntryCount(i int) {
	if m.addentry_count != nil {
		*m.addentry_count += i
	} else {
		m.addentry_count = &i
	}
}

// AddedEntryCount returns the value that was added to the "entry_count" field in this mutation.
func (m *ImportJobMutation) AddedEntryCount() (r int, exists bool) {
	v := m.addentry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntryCount resets all changes to the "entry_count" field.
func (m *ImportJobMutation) ResetEntryCount() {
	m.entry_count = nil
	m.addentry_count = nil
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ImportJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ImportJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ImportJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ImportJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ImportJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[importjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ImportJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[importjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ImportJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, importjob.FieldExtractedJSON)
}

// SetSaved sets the "saved" field.
func (m *ImportJobMutation) SetSaved(b bool) {
	m.saved = &b
}

// Saved returns the value of the "saved" field in the mutation.
func (m *ImportJobMutation) Saved() (r bool, exists bool) {
	v := m.saved
	if v == nil {
		return
	}
	return *v, true
}

// OldSaved returns the old "saved" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldSaved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaved: %w", err)
	}
	return oldValue.Saved, nil
}

// ResetSaved resets all changes to the "saved" field.
func (m *ImportJobMutation) ResetSaved() {
	m.saved = nil
}

// Where appends a list predicates to the ImportJobMutation builder.
func (m *ImportJobMutation) Where(ps ...predicate.ImportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportJob).
func (m *ImportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.employee_record_id != nil {
		fields = append(fields, importjob.FieldEmployeeRecordID)
	}
	if m.source_name != nil {
		fields = append(fields, importjob.FieldSourceName)
	}
	if m.size_bytes != nil {
		fields = append(fields, importjob.FieldSizeBytes)
	}
	if m.started_at != nil {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.text_source != nil {
		fields = append(fields, importjob.FieldTextSource)
	}
	if m.text_chars != nil {
		fields = append(fields, importjob.FieldTextChars)
	}
	if m.page_count != nil {
		fields = append(fields, importjob.FieldPageCount)
	}
	if m.entry_count != nil {
		fields = append(fields, importjob.FieldEntryCount)
	}
	if m.extracted_json != nil {
		fields = append(fields, importjob.FieldExtractedJSON)
	}
	if m.saved != nil {
		fields = append(fields, importjob.FieldSaved)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldEmployeeRecordID:
		return m.EmployeeRecordID()
	case importjob.FieldSourceName:
		return m.SourceName()
	case importjob.FieldSizeBytes:
		return m.SizeBytes()
	case importjob.FieldStartedAt:
		return m.StartedAt()
	case importjob.FieldFinishedAt:
		return m.FinishedAt()
	case importjob.FieldStatus:
		return m.Status()
	case importjob.FieldErrorMessage:
		return m.ErrorMessage()
	case importjob.FieldTextSource:
		return m.TextSource()
	case importjob.FieldTextChars:
		return m.TextChars()
	case importjob.FieldPageCount:
		return m.PageCount()
	case importjob.FieldEntryCount:
		return m.EntryCount()
	case importjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case importjob.FieldSaved:
		return m.Saved()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importjob.FieldEmployeeRecordID:
		return m.OldEmployeeRecordID(ctx)
	case importjob.FieldSourceName:
		return m.OldSourceName(ctx)
	case importjob.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case importjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case importjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case importjob.FieldStatus:
		return m.OldStatus(ctx)
	case importjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case importjob.FieldTextSource:
		return m.OldTextSource(ctx)
	case importjob.FieldTextChars:
		return m.OldTextChars(ctx)
	case importjob.FieldPageCount:
		return m.OldPageCount(ctx)
	case importjob.FieldEntryCount:
		return m.OldEntryCount(ctx)
	case importjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case importjob.FieldSaved:
		return m.OldSaved(ctx)
	}
	return nil, fmt.Errorf("unknown ImportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldEmployeeRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeRecordID(v)
		return nil
	case importjob.FieldSourceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceName(v)
		return nil
	case importjob.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case importjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case importjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case importjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case importjob.FieldTextSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextSource(v)
		return nil
	case importjob.FieldTextChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextChars(v)
		return nil
	case importjob.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case importjob.FieldEntryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryCount(v)
		return nil
	case importjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case importjob.FieldSaved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaved(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportJobMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, importjob.FieldSizeBytes)
	}
	if m.addtext_chars != nil {
		fields = append(fields, importjob.FieldTextChars)
	}
	if m.addpage_count != nil {
		fields = append(fields, importjob.FieldPageCount)
	}
	if m.addentry_count != nil {
		fields = append(fields, importjob.FieldEntryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldSizeBytes:
		return m.AddedSizeBytes()
	case importjob.FieldTextChars:
		return m.AddedTextChars()
	case importjob.FieldPageCount:
		return m.AddedPageCount()
	case importjob.FieldEntryCount:
		return m.AddedEntryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	case importjob.FieldTextChars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTextChars(v)
		return nil
	case importjob.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case importjob.FieldEntryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntryCount(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importjob.FieldEmployeeRecordID) {
		fields = append(fields, importjob.FieldEmployeeRecordID)
	}
	if m.FieldCleared(importjob.FieldSourceName) {
		fields = append(fields, importjob.FieldSourceName)
	}
	if m.FieldCleared(importjob.FieldFinishedAt) {
		fields = append(fields, importjob.FieldFinishedAt)
	}
	if m.FieldCleared(importjob.FieldStatus) {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.FieldCleared(importjob.FieldErrorMessage) {
		fields = append(fields, importjob.FieldErrorMessage)
	}
	if m.FieldCleared(importjob.FieldTextSource) {
		fields = append(fields, importjob.FieldTextSource)
	}
	if m.FieldCleared(importjob.FieldExtractedJSON) {
		fields = append(fields, importjob.FieldExtractedJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportJobMutation) ClearField(name string) error {
	switch name {
	case importjob.FieldEmployeeRecordID:
		m.ClearEmployeeRecordID()
		return nil
	case importjob.FieldSourceName:
		m.ClearSourceName()
		return nil
	case importjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case importjob.FieldStatus:
		m.ClearStatus()
		return nil
	case importjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case importjob.FieldTextSource:
		m.ClearTextSource()
		return nil
	case importjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	}
	return fmt.Errorf("unknown ImportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportJobMutation) ResetField(name string) error {
	switch name {
	case importjob.FieldEmployeeRecordID:
		m.ResetEmployeeRecordID()
		return nil
	case importjob.FieldSourceName:
		m.ResetSourceName()
		return nil
	case importjob.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case importjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case importjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case importjob.FieldStatus:
		m.ResetStatus()
		return nil
	case importjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case importjob.FieldTextSource:
		m.ResetTextSource()
		return nil
	case importjob.FieldTextChars:
		m.ResetTextChars()
		return nil
	case importjob.FieldPageCount:
		m.ResetPageCount()
		return nil
	case importjob.FieldEntryCount:
		m.ResetEntryCount()
		return nil
	case importjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case importjob.FieldSaved:
		m.ResetSaved()
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImportJob edge %s", name)
}
