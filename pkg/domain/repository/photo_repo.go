/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-01 10:31:26
 * @LastEditTime: 2025-09-01 10:31:26
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
)

// PhotoUpdateFields 描述一次局部更新。nil 表示该字段不修改。
// image_url 不在其中：它只能由生命周期操作改变。
type PhotoUpdateFields struct {
	Caption  *string
	Location *string
}

// PhotoRepository 定义了照片元数据操作的契约。
// 查不到记录时返回 constant.ErrNotFound，与其他失败可区分。
type PhotoRepository interface {
	// FindByID 按主键查找照片（不限定相册）
	FindByID(ctx context.Context, id uint) (*model.Photo, error)

	// FindByIDInAlbum 按 (id, albumID) 查找照片，相册不匹配视同未找到
	FindByIDInAlbum(ctx context.Context, id, albumID uint) (*model.Photo, error)

	// FindAllByAlbumID 列出某相册下的全部照片
	FindAllByAlbumID(ctx context.Context, albumID uint) ([]*model.Photo, error)

	// Create 插入新照片并回填 ID 与时间戳
	Create(ctx context.Context, photo *model.Photo) (*model.Photo, error)

	// UpdateFields 只更新 caption/location，返回更新后的照片
	UpdateFields(ctx context.Context, id uint, fields PhotoUpdateFields) (*model.Photo, error)

	// MoveToAlbum 重新指定外键，返回更新后的照片
	MoveToAlbum(ctx context.Context, id, albumID uint) (*model.Photo, error)

	// Delete 删除照片记录
	Delete(ctx context.Context, id uint) error
}

// AlbumRepository 定义了相册数据操作的契约。
type AlbumRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Album, error)
	FindAll(ctx context.Context) ([]*model.Album, error)
	Create(ctx context.Context, album *model.Album) (*model.Album, error)
}

// UserRepository 是广播接收者目录。
type UserRepository interface {
	// ListIDs 枚举全部用户 ID，作为广播接收者集合
	ListIDs(ctx context.Context) ([]uint, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}
