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
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Annotations of the User.
func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("用户表，广播接收者目录"),
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("username").
			MaxLen(64).
			NotEmpty().
			Unique().
			Comment("登录名"),
		field.String("nickname").
			MaxLen(64).
			Optional().
			Comment("显示名称"),
	}
}
