// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/directory-tools/linkedin-ingest/gen/ent/importjob"
	"github.com/directory-tools/linkedin-ingest/gen/ent/predicate"
)

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmployeeRecordID sets the "employee_record_id" field.
func (_u *ImportJobUpdate) SetEmployeeRecordID(v string) *ImportJobUpdate {
	_u.mutation.SetEmployeeRecordID(v)
	return _u
}

// SetNillableEmployeeRecordID sets the "employee_record_id" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableEmployeeRecordID(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetEmployeeRecordID(*v)
	}
	return _u
}

// ClearEmployeeRecordID clears the value of the "employee_record_id" field.
func (_u *ImportJobUpdate) ClearEmployeeRecordID() *ImportJobUpdate {
	_u.mutation.ClearEmployeeRecordID()
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *ImportJobUpdate) SetSourceName(v string) *ImportJobUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSourceName(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *ImportJobUpdate) ClearSourceName() *ImportJobUpdate {
	_u.mutation.ClearSourceName()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ImportJobUpdate) SetSizeBytes(v int) *ImportJobUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSizeBytes(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ImportJobUpdate) AddSizeBytes(v int) *ImportJobUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdate) SetStartedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdate) SetFinishedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFinishedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdate) ClearFinishedAt() *ImportJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ImportJobUpdate) ClearStatus() *ImportJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdate) SetErrorMessage(v string) *ImportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorMessage(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdate) ClearErrorMessage() *ImportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTextSource sets the "text_source" field.
func (_u *ImportJobUpdate) SetTextSource(v string) *ImportJobUpdate {
	_u.mutation.SetTextSource(v)
	return _u
}

// SetNillableTextSource sets the "text_source" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableTextSource(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetTextSource(*v)
	}
	return _u
}

// ClearTextSource clears the value of the "text_source" field.
func (_u *ImportJobUpdate) ClearTextSource() *ImportJobUpdate {
	_u.mutation.ClearTextSource()
	return _u
}

// SetTextChars sets the "text_chars" field.
func (_u *ImportJobUpdate) SetTextChars(v int) *ImportJobUpdate {
	_u.mutation.ResetTextChars()
	_u.mutation.SetTextChars(v)
	return _u
}

// SetNillableTextChars sets the "text_chars" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableTextChars(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetTextChars(*v)
	}
	return _u
}

// AddTextChars adds value to the "text_chars" field.
func (_u *ImportJobUpdate) AddTextChars(v int) *ImportJobUpdate {
	_u.mutation.AddTextChars(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ImportJobUpdate) SetPageCount(v int) *ImportJobUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillablePageCount(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ImportJobUpdate) AddPageCount(v int) *ImportJobUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetEntryCount sets the "entry_count" field.
func (_u *ImportJobUpdate) SetEntryCount(v int) *ImportJobUpdate {
	_u.mutation.ResetEntryCount()
	_u.mutation.SetEntryCount(v)
	return _u
}

// SetNillableEntryCount sets the "entry_count" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableEntryCount(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetEntryCount(*v)
	}
	return _u
}

// AddEntryCount adds value to the "entry_count" field.
func (_u *ImportJobUpdate) AddEntryCount(v int) *ImportJobUpdate {
	_u.mutation.AddEntryCount(v)
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ImportJobUpdate) SetExtractedJSON(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ImportJobUpdate) AppendExtractedJSON(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ImportJobUpdate) ClearExtractedJSON() *ImportJobUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetSaved sets the "saved" field.
func (_u *ImportJobUpdate) SetSaved(v bool) *ImportJobUpdate {
	_u.mutation.SetSaved(v)
	return _u
}

// SetNillableSaved sets the "saved" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSaved(v *bool) *ImportJobUpdate {
	if v != nil {
		_u.SetSaved(*v)
	}
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmployeeRecordID(); ok {
		_spec.SetField(importjob.FieldEmployeeRecordID, field.TypeString, value)
	}
	if _u.mutation.EmployeeRecordIDCleared() {
		_spec.ClearField(importjob.FieldEmployeeRecordID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(importjob.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(importjob.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(importjob.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(importjob.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(importjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TextSource(); ok {
		_spec.SetField(importjob.FieldTextSource, field.TypeString, value)
	}
	if _u.mutation.TextSourceCleared() {
		_spec.ClearField(importjob.FieldTextSource, field.TypeString)
	}
	if value, ok := _u.mutation.TextChars(); ok {
		_spec.SetField(importjob.FieldTextChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextChars(); ok {
		_spec.AddField(importjob.FieldTextChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(importjob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(importjob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EntryCount(); ok {
		_spec.SetField(importjob.FieldEntryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEntryCount(); ok {
		_spec.AddField(importjob.FieldEntryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(importjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(importjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Saved(); ok {
		_spec.SetField(importjob.FieldSaved, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetEmployeeRecordID sets the "employee_record_id" field.
func (_u *ImportJobUpdateOne) SetEmployeeRecordID(v string) *ImportJobUpdateOne {
	_u.mutation.SetEmployeeRecordID(v)
	return _u
}

// SetNillableEmployeeRecordID sets the "employee_record_id" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableEmployeeRecordID(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetEmployeeRecordID(*v)
	}
	return _u
}

// ClearEmployeeRecordID clears the value of the "employee_record_id" field.
func (_u *ImportJobUpdateOne) ClearEmployeeRecordID() *ImportJobUpdateOne {
	_u.mutation.ClearEmployeeRecordID()
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *ImportJobUpdateOne) SetSourceName(v string) *ImportJobUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSourceName(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// ClearSourceName clears the value of the "source_name" field.
func (_u *ImportJobUpdateOne) ClearSourceName() *ImportJobUpdateOne {
	_u.mutation.ClearSourceName()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ImportJobUpdateOne) SetSizeBytes(v int) *ImportJobUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSizeBytes(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ImportJobUpdateOne) AddSizeBytes(v int) *ImportJobUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdateOne) SetStartedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdateOne) SetFinishedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdateOne) ClearFinishedAt() *ImportJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ImportJobUpdateOne) ClearStatus() *ImportJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdateOne) SetErrorMessage(v string) *ImportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorMessage(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdateOne) ClearErrorMessage() *ImportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTextSource sets the "text_source" field.
func (_u *ImportJobUpdateOne) SetTextSource(v string) *ImportJobUpdateOne {
	_u.mutation.SetTextSource(v)
	return _u
}

// SetNillableTextSource sets the "text_source" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableTextSource(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetTextSource(*v)
	}
	return _u
}

// ClearTextSource clears the value of the "text_source" field.
func (_u *ImportJobUpdateOne) ClearTextSource() *ImportJobUpdateOne {
	_u.mutation.ClearTextSource()
	return _u
}

// SetTextChars sets the "text_chars" field.
func (_u *ImportJobUpdateOne) SetTextChars(v int) *ImportJobUpdateOne {
	_u.mutation.ResetTextChars()
	_u.mutation.SetTextChars(v)
	return _u
}

// SetNillableTextChars sets the "text_chars" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableTextChars(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetTextChars(*v)
	}
	return _u
}

// AddTextChars adds value to the "text_chars" field.
func (_u *ImportJobUpdateOne) AddTextChars(v int) *ImportJobUpdateOne {
	_u.mutation.AddTextChars(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *ImportJobUpdateOne) SetPageCount(v int) *ImportJobUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillablePageCount(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *ImportJobUpdateOne) AddPageCount(v int) *ImportJobUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetEntryCount sets the "entry_count" field.
func (_u *ImportJobUpdateOne) SetEntryCount(v int) *ImportJobUpdateOne {
	_u.mutation.ResetEntryCount()
	_u.mutation.SetEntryCount(v)
	return _u
}

// SetNillableEntryCount sets the "entry_count" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableEntryCount(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetEntryCount(*v)
	}
	return _u
}

// AddEntryCount adds value to the "entry_count" field.
func (_u *ImportJobUpdateOne) AddEntryCount(v int) *ImportJobUpdateOne {
	_u.mutation.AddEntryCount(v)
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ImportJobUpdateOne) SetExtractedJSON(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ImportJobUpdateOne) AppendExtractedJSON(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ImportJobUpdateOne) ClearExtractedJSON() *ImportJobUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetSaved sets the "saved" field.
func (_u *ImportJobUpdateOne) SetSaved(v bool) *ImportJobUpdateOne {
	_u.mutation.SetSaved(v)
	return _u
}

// SetNillableSaved sets the "saved" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSaved(v *bool) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSaved(*v)
	}
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmployeeRecordID(); ok {
		_spec.SetField(importjob.FieldEmployeeRecordID, field.TypeString, value)
	}
	if _u.mutation.EmployeeRecordIDCleared() {
		_spec.ClearField(importjob.FieldEmployeeRecordID, field.TypeString)
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(importjob.FieldSourceName, field.TypeString, value)
	}
	if _u.mutation.SourceNameCleared() {
		_spec.ClearField(importjob.FieldSourceName, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(importjob.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(importjob.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(importjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TextSource(); ok {
		_spec.SetField(importjob.FieldTextSource, field.TypeString, value)
	}
	if _u.mutation.TextSourceCleared() {
		_spec.ClearField(importjob.FieldTextSource, field.TypeString)
	}
	if value, ok := _u.mutation.TextChars(); ok {
		_spec.SetField(importjob.FieldTextChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextChars(); ok {
		_spec.AddField(importjob.FieldTextChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(importjob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(importjob.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EntryCount(); ok {
		_spec.SetField(importjob.FieldEntryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEntryCount(); ok {
		_spec.AddField(importjob.FieldEntryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(importjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(importjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.Saved(); ok {
		_spec.SetField(importjob.FieldSaved, field.TypeBool, value)
	}
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
