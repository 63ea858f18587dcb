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
	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("customer_number").NotEmpty(),
		// Empty when the bill text carried no recognizable number; never a
		// fabricated placeholder.
		field.String("invoice_number").Optional(),
		field.String("address").Optional(),
		field.Time("invoice_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("is_paid").Default(false),
		field.Time("payment_date").Optional().Nillable(),
		field.String("utility_type").NotEmpty().
			Validate(utils.EnumValidator(constants.UtilityTypes()...)),
		field.String("file_name").Optional().Nillable(),
		field.String("file_path").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		// Dedup lookups during bulk import; not unique because the invoice
		// number may legitimately be empty on many rows.
		index.Fields("customer_number", "invoice_number"),
		index.Fields("is_paid", "due_date"),
		index.Fields("address"),
	}
}
