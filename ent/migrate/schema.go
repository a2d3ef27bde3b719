// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlbumsColumns holds the columns for the "albums" table.
	AlbumsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255, Comment: "相册名称"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 1000, Comment: "相册描述"},
	}
	// AlbumsTable holds the schema information for the "albums" table.
	AlbumsTable = &schema.Table{
		Name:       "albums",
		Comment:    "相册表",
		Columns:    AlbumsColumns,
		PrimaryKey: []*schema.Column{AlbumsColumns[0]},
	}
	// PhotosColumns holds the columns for the "photos" table.
	PhotosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "image_url", Type: field.TypeString, Nullable: true, Size: 1024, Comment: "对象存储资源URL，创建后不可改写"},
		{Name: "caption", Type: field.TypeString, Nullable: true, Size: 1020, Comment: "照片说明"},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 800, Comment: "拍摄地点"},
		{Name: "width", Type: field.TypeInt, Nullable: true, Comment: "图片宽度"},
		{Name: "height", Type: field.TypeInt, Nullable: true, Comment: "图片高度"},
		{Name: "album_id", Type: field.TypeUint, Comment: "所属相册ID"},
	}
	// PhotosTable holds the schema information for the "photos" table.
	PhotosTable = &schema.Table{
		Name:       "photos",
		Comment:    "照片元数据表",
		Columns:    PhotosColumns,
		PrimaryKey: []*schema.Column{PhotosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "photos_albums_photos",
				Columns:    []*schema.Column{PhotosColumns[8]},
				RefColumns: []*schema.Column{AlbumsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 64, Comment: "登录名"},
		{Name: "nickname", Type: field.TypeString, Nullable: true, Size: 64, Comment: "显示名称"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表，广播接收者目录",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlbumsTable,
		PhotosTable,
		UsersTable,
	}
)

func init() {
	PhotosTable.ForeignKeys[0].RefTable = AlbumsTable
}
