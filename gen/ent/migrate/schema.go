// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImportJobColumns holds the columns for the "import_job" table.
	ImportJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "employee_record_id", Type: field.TypeString, Nullable: true},
		{Name: "source_name", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "text_source", Type: field.TypeString, Nullable: true},
		{Name: "text_chars", Type: field.TypeInt, Default: 0},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "entry_count", Type: field.TypeInt, Default: 0},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "saved", Type: field.TypeBool, Default: false},
	}
	// ImportJobTable holds the schema information for the "import_job" table.
	ImportJobTable = &schema.Table{
		Name:       "import_job",
		Columns:    ImportJobColumns,
		PrimaryKey: []*schema.Column{ImportJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importjob_employee_record_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[1], ImportJobColumns[4]},
			},
			{
				Name:    "importjob_status",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImportJobTable,
	}
)

func init() {
	ImportJobTable.Annotation = &entsql.Annotation{
		Table: "import_job",
	}
}
