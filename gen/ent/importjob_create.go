// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/directory-tools/linkedin-ingest/gen/ent/importjob"
	"github.com/google/uuid"
)

// ImportJobCreate is the builder for creating a ImportJob entity.
type ImportJobCreate struct {
	config
	mutation *ImportJobMutation
	hooks    []Hook
}

// SetEmployeeRecordID sets the "employee_record_id" field.
func (_c *ImportJobCreate) SetEmployeeRecordID(v string) *ImportJobCreate {
	_c.mutation.SetEmployeeRecordID(v)
	return _c
}

// SetNillableEmployeeRecordID sets the "employee_record_id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableEmployeeRecordID(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetEmployeeRecordID(*v)
	}
	return _c
}

// SetSourceName sets the "source_name" field.
func (_c *ImportJobCreate) SetSourceName(v string) *ImportJobCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableSourceName(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetSourceName(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *ImportJobCreate) SetSizeBytes(v int) *ImportJobCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableSizeBytes(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ImportJobCreate) SetStartedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStartedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ImportJobCreate) SetFinishedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFinishedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportJobCreate) SetStatus(v string) *ImportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStatus(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportJobCreate) SetErrorMessage(v string) *ImportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableErrorMessage(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTextSource sets the "text_source" field.
func (_c *ImportJobCreate) SetTextSource(v string) *ImportJobCreate {
	_c.mutation.SetTextSource(v)
	return _c
}

// SetNillableTextSource sets the "text_source" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableTextSource(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetTextSource(*v)
	}
	return _c
}

// SetTextChars sets the "text_chars" field.
func (_c *ImportJobCreate) SetTextChars(v int) *ImportJobCreate {
	_c.mutation.SetTextChars(v)
	return _c
}

// SetNillableTextChars sets the "text_chars" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableTextChars(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetTextChars(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *ImportJobCreate) SetPageCount(v int) *ImportJobCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillablePageCount(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetEntryCount sets the "entry_count" field.
func (_c *ImportJobCreate) SetEntryCount(v int) *ImportJobCreate {
	_c.mutation.SetEntryCount(v)
	return _c
}

// SetNillableEntryCount sets the "entry_count" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableEntryCount(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetEntryCount(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *ImportJobCreate) SetExtractedJSON(v json.RawMessage) *ImportJobCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetSaved sets the "saved" field.
func (_c *ImportJobCreate) SetSaved(v bool) *ImportJobCreate {
	_c.mutation.SetSaved(v)
	return _c
}

// SetNillableSaved sets the "saved" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableSaved(v *bool) *ImportJobCreate {
	if v != nil {
		_c.SetSaved(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportJobCreate) SetID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableID(v *uuid.UUID) *ImportJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ImportJobMutation object of the builder.
func (_c *ImportJobCreate) Mutation() *ImportJobMutation {
	return _c.mutation
}

// Save creates the ImportJob in the database.
func (_c *ImportJobCreate) Save(ctx context.Context) (*ImportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportJobCreate) SaveX(ctx context.Context) *ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportJobCreate) defaults() {
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := importjob.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := importjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.TextChars(); !ok {
		v := importjob.DefaultTextChars
		_c.mutation.SetTextChars(v)
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		v := importjob.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.EntryCount(); !ok {
		v := importjob.DefaultEntryCount
		_c.mutation.SetEntryCount(v)
	}
	if _, ok := _c.mutation.Saved(); !ok {
		v := importjob.DefaultSaved
		_c.mutation.SetSaved(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportJobCreate) check() error {
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "ImportJob.size_bytes"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ImportJob.started_at"`)}
	}
	if _, ok := _c.mutation.TextChars(); !ok {
		return &ValidationError{Name: "text_chars", err: errors.New(`ent: missing required field "ImportJob.text_chars"`)}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "ImportJob.page_count"`)}
	}
	if _, ok := _c.mutation.EntryCount(); !ok {
		return &ValidationError{Name: "entry_count", err: errors.New(`ent: missing required field "ImportJob.entry_count"`)}
	}
	if _, ok := _c.mutation.Saved(); !ok {
		return &ValidationError{Name: "saved", err: errors.New(`ent: missing required field "ImportJob.saved"`)}
	}
	return nil
}

func (_c *ImportJobCreate) sqlSave(ctx context.Context) (*ImportJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportJobCreate) createSpec() (*ImportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importjob.Table, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EmployeeRecordID(); ok {
		_spec.SetField(importjob.FieldEmployeeRecordID, field.TypeString, value)
		_node.EmployeeRecordID = value
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(importjob.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(importjob.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
		_node.Status = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TextSource(); ok {
		_spec.SetField(importjob.FieldTextSource, field.TypeString, value)
		_node.TextSource = &value
	}
	if value, ok := _c.mutation.TextChars(); ok {
		_spec.SetField(importjob.FieldTextChars, field.TypeInt, value)
		_node.TextChars = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(importjob.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.EntryCount(); ok {
		_spec.SetField(importjob.FieldEntryCount, field.TypeInt, value)
		_node.EntryCount = value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(importjob.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.Saved(); ok {
		_spec.SetField(importjob.FieldSaved, field.TypeBool, value)
		_node.Saved = value
	}
	return _node, _spec
}

// ImportJobCreateBulk is the builder for creating many ImportJob entities in bulk.
type ImportJobCreateBulk struct {
	config
	err      error
	builders []*ImportJobCreate
}

// Save creates the ImportJob entities in the database.
func (_c *ImportJobCreateBulk) Save(ctx context.Context) ([]*ImportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ImportJobCreateBulk) SaveX(ctx context.Context) []*ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
