package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/constants"
	"github.com/huisbeheer/utility-tracker/db/ent/schema/utils"
)

type TimeSession struct{ ent.Schema }

func (TimeSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "time_sessions"},
	}
}

func (TimeSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.SessionCategories()...)),
		field.String("custom_category").Optional().Nillable(),
		field.Time("start_time"),
		// Null while the session is still running.
		field.Time("end_time").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TimeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_time"),
		index.Fields("category", "start_time"),
	}
}
