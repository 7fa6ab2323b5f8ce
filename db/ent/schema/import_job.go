package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ImportJob is the audit row for one profile ingest run. The employee
// record id points at the external tabular store; there is no local
// employee table to join against. Status advances through the run's
// checkpoints so an interrupted job shows how far it got.
type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_job"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("employee_record_id").Optional(),
		field.String("source_name").Optional(),
		field.Int("size_bytes").Default(0),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("text_source").Optional().Nillable(),
		field.Int("text_chars").Default(0),
		field.Int("page_count").Default(0),
		field.Int("entry_count").Default(0),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.Bool("saved").Default(false),
	}
}

func (ImportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("employee_record_id", "started_at"),
		index.Fields("status"),
	}
}
