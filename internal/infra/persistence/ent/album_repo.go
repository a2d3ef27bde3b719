package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"

	"github.com/anzhiyu-c/xiangce-app/ent"
	"github.com/anzhiyu-c/xiangce-app/ent/album"
)

type entAlbumRepository struct {
	client *ent.Client
}

// NewEntAlbumRepository 是 entAlbumRepository 的构造函数
func NewEntAlbumRepository(client *ent.Client) repository.AlbumRepository {
	return &entAlbumRepository{client: client}
}

func (r *entAlbumRepository) FindByID(ctx context.Context, id uint) (*model.Album, error) {
	po, err := r.client.Album.Query().
		Where(album.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: 相册 %d 不存在", constant.ErrNotFound, id)
		}
		return nil, fmt.Errorf("查询相册失败: %w", err)
	}
	return toDomainAlbum(po), nil
}

func (r *entAlbumRepository) FindAll(ctx context.Context) ([]*model.Album, error) {
	pos, err := r.client.Album.Query().
		Order(ent.Asc(album.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询相册列表失败: %w", err)
	}

	albums := make([]*model.Album, 0, len(pos))
	for _, po := range pos {
		albums = append(albums, toDomainAlbum(po))
	}
	return albums, nil
}

func (r *entAlbumRepository) Create(ctx context.Context, domainAlbum *model.Album) (*model.Album, error) {
	created, err := r.client.Album.Create().
		SetName(domainAlbum.Name).
		SetDescription(domainAlbum.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建相册失败: %w", err)
	}
	return toDomainAlbum(created), nil
}

// toDomainAlbum 将 Ent PO 转换为领域模型
func toDomainAlbum(po *ent.Album) *model.Album {
	if po == nil {
		return nil
	}
	return &model.Album{
		ID:          po.ID,
		Name:        po.Name,
		Description: po.Description,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}
}
