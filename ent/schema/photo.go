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

// Photo holds the schema definition for the Photo entity.
type Photo struct {
	ent.Schema
}

// Annotations of the Photo.
func (Photo) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("照片元数据表"),
	}
}

// Fields of the Photo.
func (Photo) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("image_url").
			MaxLen(1024).
			Optional().
			Immutable().
			Comment("对象存储资源URL，创建后不可改写"),
		// 业务限制按字符数在服务层校验（caption 255 字 / location 200 字），
		// 这里的 MaxLen 按字节计，取 4 字节/字的上界，保证服务层校验是唯一生效的限制
		field.String("caption").
			MaxLen(1020).
			Optional().
			Comment("照片说明"),
		field.String("location").
			MaxLen(800).
			Optional().
			Comment("拍摄地点"),
		field.Int("width").
			Optional().
			Comment("图片宽度"),
		field.Int("height").
			Optional().
			Comment("图片高度"),
		field.Uint("album_id").
			Comment("所属相册ID"),
	}
}

// Edges of the Photo.
func (Photo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("album", Album.Type).
			Ref("photos").
			Unique().
			Required().
			Field("album_id"),
	}
}
