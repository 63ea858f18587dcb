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

type UtilityPrice struct{ ent.Schema }

func (UtilityPrice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "utility_prices"},
	}
}

func (UtilityPrice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("utility_type").NotEmpty().
			Validate(utils.EnumValidator(constants.UtilityTypes()...)),
		field.Float("price_per_unit").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.String("unit_name").NotEmpty(),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("effective_from").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("effective_until").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (UtilityPrice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("utility_type", "effective_from"),
	}
}
