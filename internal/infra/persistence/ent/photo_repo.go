package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"

	"github.com/anzhiyu-c/xiangce-app/ent"
	"github.com/anzhiyu-c/xiangce-app/ent/photo"
)

type entPhotoRepository struct {
	client *ent.Client
}

// NewEntPhotoRepository 是 entPhotoRepository 的构造函数
func NewEntPhotoRepository(client *ent.Client) repository.PhotoRepository {
	return &entPhotoRepository{client: client}
}

func (r *entPhotoRepository) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	po, err := r.client.Photo.Query().
		Where(photo.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 照片 %d 不存在", constant.ErrNotFound, id)
		}
		return nil, fmt.Errorf("查询照片失败: %w", err)
	}
	return toDomainPhoto(po), nil
}

func (r *entPhotoRepository) FindByIDInAlbum(ctx context.Context, id, albumID uint) (*model.Photo, error) {
	po, err := r.client.Photo.Query().
		Where(photo.ID(id), photo.AlbumID(albumID)).
		Only(ctx)
	if err != nil {
		// 相册不匹配与记录不存在同样视为未找到
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 相册 %d 中不存在照片 %d", constant.ErrNotFound, albumID, id)
		}
		return nil, fmt.Errorf("查询照片失败: %w", err)
	}
	return toDomainPhoto(po), nil
}

func (r *entPhotoRepository) FindAllByAlbumID(ctx context.Context, albumID uint) ([]*model.Photo, error) {
	pos, err := r.client.Photo.Query().
		Where(photo.AlbumID(albumID)).
		Order(ent.Asc(photo.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询相册照片列表失败: %w", err)
	}

	photos := make([]*model.Photo, 0, len(pos))
	for _, po := range pos {
		photos = append(photos, toDomainPhoto(po))
	}
	return photos, nil
}

func (r *entPhotoRepository) Create(ctx context.Context, domainPhoto *model.Photo) (*model.Photo, error) {
	create := r.client.Photo.Create().
		SetAlbumID(domainPhoto.AlbumID).
		SetCaption(domainPhoto.Caption).
		SetLocation(domainPhoto.Location)

	if domainPhoto.ImageUrl != "" {
		create = create.SetImageURL(domainPhoto.ImageUrl)
	}
	if domainPhoto.Width > 0 {
		create = create.SetWidth(domainPhoto.Width)
	}
	if domainPhoto.Height > 0 {
		create = create.SetHeight(domainPhoto.Height)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: 相册 %d 不存在", constant.ErrNotFound, domainPhoto.AlbumID)
		}
		return nil, fmt.Errorf("创建照片记录失败: %w", err)
	}
	return toDomainPhoto(created), nil
}

func (r *entPhotoRepository) UpdateFields(ctx context.Context, id uint, fields repository.PhotoUpdateFields) (*model.Photo, error) {
	update := r.client.Photo.UpdateOneID(id).
		SetNillableCaption(fields.Caption).
		SetNillableLocation(fields.Location)

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 照片 %d 不存在", constant.ErrNotFound, id)
		}
		return nil, fmt.Errorf("更新照片失败: %w", err)
	}
	return toDomainPhoto(updated), nil
}

func (r *entPhotoRepository) MoveToAlbum(ctx context.Context, id, albumID uint) (*model.Photo, error) {
	updated, err := r.client.Photo.UpdateOneID(id).
		SetAlbumID(albumID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 照片 %d 不存在", constant.ErrNotFound, id)
		}
		return nil, fmt.Errorf("移动照片失败: %w", err)
	}
	return toDomainPhoto(updated), nil
}

func (r *entPhotoRepository) Delete(ctx context.Context, id uint) error {
	err := r.client.Photo.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: 照片 %d 不存在", constant.ErrNotFound, id)
		}
		return fmt.Errorf("删除照片记录失败: %w", err)
	}
	return nil
}

// toDomainPhoto 将 Ent PO 转换为领域模型
func toDomainPhoto(po *ent.Photo) *model.Photo {
	if po == nil {
		return nil
	}
	return &model.Photo{
		ID:        po.ID,
		AlbumID:   po.AlbumID,
		ImageUrl:  po.ImageURL,
		Caption:   po.Caption,
		Location:  po.Location,
		Width:     po.Width,
		Height:    po.Height,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}
}
