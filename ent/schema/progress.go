package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Progress is the saved result of the last completed quiz. The repo
// keeps the table at a single row: each completion overwrites it, no
// history accumulates.
type Progress struct {
	ent.Schema
}

func (Progress) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "progress"},
	}
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("mode").
			Comment("Question mode of the saved session"),
		field.Int("level").
			Comment("Difficulty level the session was played at"),
		field.JSON("results", []bool{}).
			Comment("Ordered correctness flags, one per question or case part"),
		field.Time("saved_at").
			Default(time.Now).
			Comment("When the session completed"),
	}
}
