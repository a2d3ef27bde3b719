/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:40:13
 * @LastEditTime: 2025-09-01 10:40:13
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Album holds the schema definition for the Album entity.
type Album struct {
	ent.Schema
}

// Annotations of the Album.
func (Album) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("相册表"),
	}
}

// Fields of the Album.
func (Album) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("name").
			MaxLen(255).
			NotEmpty().
			Comment("相册名称"),
		field.String("description").
			MaxLen(1000).
			Optional().
			Comment("相册描述"),
	}
}

// Edges of the Album.
func (Album) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("photos", Photo.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
