// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/directory-tools/linkedin-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldID, id))
}

// EmployeeRecordID applies equality check predicate on the "employee_record_id" field. It's identical to EmployeeRecordIDEQ.
func EmployeeRecordID(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldEmployeeRecordID, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSourceName, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSizeBytes, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// TextSource applies equality check predicate on the "text_source" field. It's identical to TextSourceEQ.
func TextSource(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldTextSource, v))
}

// TextChars applies equality check predicate on the "text_chars" field. It's identical to TextCharsEQ.
func TextChars(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldTextChars, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldPageCount, v))
}

// EntryCount applies equality check predicate on the "entry_count" field. It's identical to EntryCountEQ.
func EntryCount(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldEntryCount, v))
}

// Saved applies equality check predicate on the "saved" field. It's identical to SavedEQ.
func Saved(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSaved, v))
}

// EmployeeRecordIDEQ applies the EQ predicate on the "employee_record_id" field.
func EmployeeRecordIDEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDNEQ applies the NEQ predicate on the "employee_record_id" field.
func EmployeeRecordIDNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDIn applies the In predicate on the "employee_record_id" field.
func EmployeeRecordIDIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldEmployeeRecordID, vs...))
}

// EmployeeRecordIDNotIn applies the NotIn predicate on the "employee_record_id" field.
func EmployeeRecordIDNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldEmployeeRecordID, vs...))
}

// EmployeeRecordIDGT applies the GT predicate on the "employee_record_id" field.
func EmployeeRecordIDGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDGTE applies the GTE predicate on the "employee_record_id" field.
func EmployeeRecordIDGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDLT applies the LT predicate on the "employee_record_id" field.
func EmployeeRecordIDLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDLTE applies the LTE predicate on the "employee_record_id" field.
func EmployeeRecordIDLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDContains applies the Contains predicate on the "employee_record_id" field.
func EmployeeRecordIDContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDHasPrefix applies the HasPrefix predicate on the "employee_record_id" field.
func EmployeeRecordIDHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDHasSuffix applies the HasSuffix predicate on the "employee_record_id" field.
func EmployeeRecordIDHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDIsNil applies the IsNil predicate on the "employee_record_id" field.
func EmployeeRecordIDIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldEmployeeRecordID))
}

// EmployeeRecordIDNotNil applies the NotNil predicate on the "employee_record_id" field.
func EmployeeRecordIDNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldEmployeeRecordID))
}

// EmployeeRecordIDEqualFold applies the EqualFold predicate on the "employee_record_id" field.
func EmployeeRecordIDEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldEmployeeRecordID, v))
}

// EmployeeRecordIDContainsFold applies the ContainsFold predicate on the "employee_record_id" field.
func EmployeeRecordIDContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldEmployeeRecordID, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameIsNil applies the IsNil predicate on the "source_name" field.
func SourceNameIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldSourceName))
}

// SourceNameNotNil applies the NotNil predicate on the "source_name" field.
func SourceNameNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldSourceName))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldSourceName, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldSizeBytes, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TextSourceEQ applies the EQ predicate on the "text_source" field.
func TextSourceEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldTextSource, v))
}

// TextSourceNEQ applies the NEQ predicate on the "text_source" field.
func TextSourceNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldTextSource, v))
}

// TextSourceIn applies the In predicate on the "text_source" field.
func TextSourceIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldTextSource, vs...))
}

// TextSourceNotIn applies the NotIn predicate on the "text_source" field.
func TextSourceNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldTextSource, vs...))
}

// TextSourceGT applies the GT predicate on the "text_source" field.
func TextSourceGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldTextSource, v))
}

// TextSourceGTE applies the GTE predicate on the "text_source" field.
func TextSourceGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldTextSource, v))
}

// TextSourceLT applies the LT predicate on the "text_source" field.
func TextSourceLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldTextSource, v))
}

// TextSourceLTE applies the LTE predicate on the "text_source" field.
func TextSourceLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldTextSource, v))
}

// TextSourceContains applies the Contains predicate on the "text_source" field.
func TextSourceContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldTextSource, v))
}

// TextSourceHasPrefix applies the HasPrefix predicate on the "text_source" field.
func TextSourceHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldTextSource, v))
}

// TextSourceHasSuffix applies the HasSuffix predicate on the "text_source" field.
func TextSourceHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldTextSource, v))
}

// TextSourceIsNil applies the IsNil predicate on the "text_source" field.
func TextSourceIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldTextSource))
}

// TextSourceNotNil applies the NotNil predicate on the "text_source" field.
func TextSourceNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldTextSource))
}

// TextSourceEqualFold applies the EqualFold predicate on the "text_source" field.
func TextSourceEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldTextSource, v))
}

// TextSourceContainsFold applies the ContainsFold predicate on the "text_source" field.
func TextSourceContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldTextSource, v))
}

// TextCharsEQ applies the EQ predicate on the "text_chars" field.
func TextCharsEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldTextChars, v))
}

// TextCharsNEQ applies the NEQ predicate on the "text_chars" field.
func TextCharsNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldTextChars, v))
}

// TextCharsIn applies the In predicate on the "text_chars" field.
func TextCharsIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldTextChars, vs...))
}

// TextCharsNotIn applies the NotIn predicate on the "text_chars" field.
func TextCharsNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldTextChars, vs...))
}

// TextCharsGT applies the GT predicate on the "text_chars" field.
func TextCharsGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldTextChars, v))
}

// TextCharsGTE applies the GTE predicate on the "text_chars" field.
func TextCharsGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldTextChars, v))
}

// TextCharsLT applies the LT predicate on the "text_chars" field.
func TextCharsLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldTextChars, v))
}

// TextCharsLTE applies the LTE predicate on the "text_chars" field.
func TextCharsLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldTextChars, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldPageCount, v))
}

// EntryCountEQ applies the EQ predicate on the "entry_count" field.
func EntryCountEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldEntryCount, v))
}

// EntryCountNEQ applies the NEQ predicate on the "entry_count" field.
func EntryCountNEQ(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldEntryCount, v))
}

// EntryCountIn applies the In predicate on the "entry_count" field.
func EntryCountIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldEntryCount, vs...))
}

// EntryCountNotIn applies the NotIn predicate on the "entry_count" field.
func EntryCountNotIn(vs ...int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldEntryCount, vs...))
}

// EntryCountGT applies the GT predicate on the "entry_count" field.
func EntryCountGT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldEntryCount, v))
}

// EntryCountGTE applies the GTE predicate on the "entry_count" field.
func EntryCountGTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldEntryCount, v))
}

// EntryCountLT applies the LT predicate on the "entry_count" field.
func EntryCountLT(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldEntryCount, v))
}

// EntryCountLTE applies the LTE predicate on the "entry_count" field.
func EntryCountLTE(v int) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldEntryCount, v))
}

// ExtractedJSONIsNil applies the IsNil predicate on the "extracted_json" field.
func ExtractedJSONIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldExtractedJSON))
}

// ExtractedJSONNotNil applies the NotNil predicate on the "extracted_json" field.
func ExtractedJSONNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldExtractedJSON))
}

// SavedEQ applies the EQ predicate on the "saved" field.
func SavedEQ(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldSaved, v))
}

// SavedNEQ applies the NEQ predicate on the "saved" field.
func SavedNEQ(v bool) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldSaved, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.NotPredicates(p))
}
