package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type MeterReading struct{ ent.Schema }

func (MeterReading) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "meter_readings"},
	}
}

func (MeterReading) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("address").NotEmpty(),
		field.Time("reading_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// A reading row records one or both meters at that address.
		field.Float("water_reading").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("electricity_reading").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (MeterReading) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("address", "reading_date"),
	}
}
