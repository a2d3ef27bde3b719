package album

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"
)

// CreateAlbumParams 定义了创建相册需要的参数
type CreateAlbumParams struct {
	Name        string
	Description string
}

// AlbumService 定义了相册相关的业务逻辑接口
type AlbumService interface {
	FindAll(ctx context.Context) ([]*model.Album, error)
	FindByID(ctx context.Context, id uint) (*model.Album, error)
	CreateAlbum(ctx context.Context, params CreateAlbumParams) (*model.Album, error)
}

// albumService 是 AlbumService 接口的实现
type albumService struct {
	albumRepo repository.AlbumRepository
}

// NewAlbumService 是 albumService 的构造函数
func NewAlbumService(albumRepo repository.AlbumRepository) AlbumService {
	return &albumService{
		albumRepo: albumRepo,
	}
}

func (s *albumService) FindAll(ctx context.Context) ([]*model.Album, error) {
	return s.albumRepo.FindAll(ctx)
}

func (s *albumService) FindByID(ctx context.Context, id uint) (*model.Album, error) {
	return s.albumRepo.FindByID(ctx, id)
}

func (s *albumService) CreateAlbum(ctx context.Context, params CreateAlbumParams) (*model.Album, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: 相册名称不能为空", constant.ErrValidation)
	}

	created, err := s.albumRepo.Create(ctx, &model.Album{
		Name:        name,
		Description: params.Description,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[AlbumService] 相册已创建: %d (%s)", created.ID, created.Name)
	return created, nil
}
