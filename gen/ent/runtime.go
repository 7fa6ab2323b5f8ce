// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/directory-tools/linkedin-ingest/db/ent/schema"
	"github.com/directory-tools/linkedin-ingest/gen/ent/importjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescSizeBytes is the schema descriptor for size_bytes field.
	importjobDescSizeBytes := importjobFields[3].Descriptor()
	// importjob.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	importjob.DefaultSizeBytes = importjobDescSizeBytes.Default.(int)
	// importjobDescStartedAt is the schema descriptor for started_at field.
	importjobDescStartedAt := importjobFields[4].Descriptor()
	// importjob.DefaultStartedAt holds the default value on creation for the started_at field.
	importjob.DefaultStartedAt = importjobDescStartedAt.Default.(func() time.Time)
	// importjobDescTextChars is the schema descriptor for text_chars field.
	importjobDescTextChars := importjobFields[9].Descriptor()
	// importjob.DefaultTextChars holds the default value on creation for the text_chars field.
	importjob.DefaultTextChars = importjobDescTextChars.Default.(int)
	// importjobDescPageCount is the schema descriptor for page_count field.
	importjobDescPageCount := importjobFields[10].Descriptor()
	// importjob.DefaultPageCount holds the default value on creation for the page_count field.
	importjob.DefaultPageCount = importjobDescPageCount.Default.(int)
	// importjobDescEntryCount is the schema descriptor for entry_count field.
	importjobDescEntryCount := importjobFields[11].Descriptor()
	// importjob.DefaultEntryCount holds the default value on creation for the entry_count field.
	importjob.DefaultEntryCount = importjobDescEntryCount.Default.(int)
	// importjobDescSaved is the schema descriptor for saved field.
	importjobDescSaved := importjobFields[13].Descriptor()
	// importjob.DefaultSaved holds the default value on creation for the saved field.
	importjob.DefaultSaved = importjobDescSaved.Default.(bool)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
}
