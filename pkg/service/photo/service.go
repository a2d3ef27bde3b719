package photo

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/anzhiyu-c/xiangce-app/internal/pkg/event"
	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"

	_ "golang.org/x/image/webp"
)

const (
	maxCaptionLen  = 255
	maxLocationLen = 200
)

// EventPublisher 是编排层对事件总线的最小依赖
type EventPublisher interface {
	Publish(topic event.Topic, payload interface{})
}

// UploadPhotoParams 定义了上传照片时需要的参数。
// File 为 nil 时只创建元数据记录，不写对象存储。
type UploadPhotoParams struct {
	AlbumID  uint
	File     io.Reader
	FileName string
	Caption  string
	Location string
}

// UpdatePhotoParams 定义了局部更新的参数，nil 表示不修改。
// image_url 不可经由更新路径改写，因此这里没有它的位置。
type UpdatePhotoParams struct {
	Caption  *string
	Location *string
}

// PhotoService 定义了照片生命周期的业务逻辑接口。
//
// 每个操作对调用方而言是原子的：要么完整成功并恰好发布一次变更事件，
// 要么失败且不留下调用方可见的半成品状态。同时涉及两个存储时，
// 对象存储的副作用一律先于依赖其结果的元数据写入，崩溃最多留下
// 一个没有元数据记录的孤儿对象，绝不会出现指向未写入对象的记录。
type PhotoService interface {
	GetPhotosByAlbumID(ctx context.Context, albumID uint) ([]*model.Photo, error)
	SavePhoto(ctx context.Context, params UploadPhotoParams) (*model.Photo, error)
	DeletePhoto(ctx context.Context, photoID, albumID uint, purgeAsset bool) error
	UpdatePhoto(ctx context.Context, photoID, albumID uint, params UpdatePhotoParams) (*model.Photo, error)
	MovePhotoToAlbum(ctx context.Context, photoID, targetAlbumID uint) (*model.Photo, error)
	CopyPhotoToAlbum(ctx context.Context, photoID, targetAlbumID uint) (*model.Photo, error)
}

// photoService 是 PhotoService 接口的实现
type photoService struct {
	photoRepo repository.PhotoRepository
	albumRepo repository.AlbumRepository
	saver     repository.PhotoSaver
	publisher EventPublisher
}

// NewPhotoService 是 photoService 的构造函数
func NewPhotoService(
	photoRepo repository.PhotoRepository,
	albumRepo repository.AlbumRepository,
	saver repository.PhotoSaver,
	publisher EventPublisher,
) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		albumRepo: albumRepo,
		saver:     saver,
		publisher: publisher,
	}
}

// sanitizeForLog 去掉换行符，避免把用户输入写进日志时被注入伪造行
func sanitizeForLog(value string) string {
	value = strings.ReplaceAll(value, "\r", "")
	return strings.ReplaceAll(value, "\n", "")
}

// validateFields 校验 caption/location 的长度约束
func validateFields(caption, location *string) error {
	if caption != nil && utf8.RuneCountInString(*caption) > maxCaptionLen {
		return fmt.Errorf("%w: caption 超过 %d 字符", constant.ErrValidation, maxCaptionLen)
	}
	if location != nil && utf8.RuneCountInString(*location) > maxLocationLen {
		return fmt.Errorf("%w: location 超过 %d 字符", constant.ErrValidation, maxLocationLen)
	}
	return nil
}

// decodeDimensions 尽力解出图片宽高，解不出时返回 0 值。
// 支持 gif/jpeg/png/webp。
func decodeDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// GetPhotosByAlbumID 列出相册下的全部照片
func (s *photoService) GetPhotosByAlbumID(ctx context.Context, albumID uint) ([]*model.Photo, error) {
	return s.photoRepo.FindAllByAlbumID(ctx, albumID)
}

// SavePhoto 上传一张照片并广播 uploaded 事件。
// 对象存储写入先行：上传失败时不会创建任何元数据记录。
func (s *photoService) SavePhoto(ctx context.Context, params UploadPhotoParams) (*model.Photo, error) {
	album, err := s.albumRepo.FindByID(ctx, params.AlbumID)
	if err != nil {
		return nil, err
	}

	if err := validateFields(&params.Caption, &params.Location); err != nil {
		return nil, err
	}

	newPhoto := &model.Photo{
		AlbumID:  album.ID,
		Caption:  params.Caption,
		Location: params.Location,
	}

	if params.File != nil {
		data, err := io.ReadAll(params.File)
		if err != nil {
			return nil, fmt.Errorf("读取上传文件失败: %w", err)
		}

		// 先写对象存储；失败则直接向上抛，元数据记录不落库
		link, err := s.saver.SaveWithinFolder(ctx, bytes.NewReader(data), params.FileName, album.ID)
		if err != nil {
			return nil, err
		}
		newPhoto.ImageUrl = link
		newPhoto.Width, newPhoto.Height = decodeDimensions(data)
	}

	created, err := s.photoRepo.Create(ctx, newPhoto)
	if err != nil {
		return nil, err
	}

	log.Printf("[PhotoService] 照片已上传到相册 %d: %d", album.ID, created.ID)

	s.publisher.Publish(event.PhotoUploaded, &model.PhotoChangedPayload{
		Data:    created,
		AlbumID: album.ID,
	})
	return created, nil
}

// DeletePhoto 删除照片并广播 deleted 事件。
//
// purgeAsset 为 false 时只删元数据记录，不触碰对象存储——这是有意的不对称：
// 只有明确承担资产清理职责的调用路径才允许删对象。purgeAsset 为 true 时
// 先删对象（失败则中止，记录保留），再删记录。
func (s *photoService) DeletePhoto(ctx context.Context, photoID, albumID uint, purgeAsset bool) error {
	photo, err := s.photoRepo.FindByIDInAlbum(ctx, photoID, albumID)
	if err != nil {
		return err
	}

	if purgeAsset {
		if _, err := s.saver.Delete(ctx, photo.ImageUrl); err != nil {
			return err
		}
	}

	if err := s.photoRepo.Delete(ctx, photo.ID); err != nil {
		return err
	}

	log.Printf("[PhotoService] 照片已从相册 %d 删除: %d", albumID, photo.ID)

	s.publisher.Publish(event.PhotoDeleted, &model.PhotoDeletedPayload{
		ID:      photo.ID,
		AlbumID: albumID,
	})
	return nil
}

// UpdatePhoto 局部更新 caption/location 并广播 updated 事件
func (s *photoService) UpdatePhoto(ctx context.Context, photoID, albumID uint, params UpdatePhotoParams) (*model.Photo, error) {
	if _, err := s.photoRepo.FindByIDInAlbum(ctx, photoID, albumID); err != nil {
		return nil, err
	}

	if err := validateFields(params.Caption, params.Location); err != nil {
		return nil, err
	}

	updated, err := s.photoRepo.UpdateFields(ctx, photoID, repository.PhotoUpdateFields{
		Caption:  params.Caption,
		Location: params.Location,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[PhotoService] 相册 %d 中的照片已更新: %d", albumID, updated.ID)

	s.publisher.Publish(event.PhotoUpdated, &model.PhotoChangedPayload{
		Data:    updated,
		AlbumID: albumID,
	})
	return updated, nil
}

// MovePhotoToAlbum 把照片移动到另一个相册并广播 moved 事件。
// 移动只改外键，对象存储不动：对象的物理位置与相册归属相互独立，
// 旧键保持原相册的目录段。
func (s *photoService) MovePhotoToAlbum(ctx context.Context, photoID, targetAlbumID uint) (*model.Photo, error) {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	targetAlbum, err := s.albumRepo.FindByID(ctx, targetAlbumID)
	if err != nil {
		return nil, err
	}

	sourceAlbumID := photo.AlbumID
	if sourceAlbumID == targetAlbum.ID {
		return nil, fmt.Errorf("%w: 照片 %d 已在相册 %d 中", constant.ErrSameAlbum, photoID, targetAlbumID)
	}

	moved, err := s.photoRepo.MoveToAlbum(ctx, photo.ID, targetAlbum.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("[PhotoService] 照片 %d 已移动到相册 %d", photo.ID, targetAlbum.ID)

	s.publisher.Publish(event.PhotoMoved, &model.PhotoMovedPayload{
		Data:          moved,
		SourceAlbumID: sourceAlbumID,
		TargetAlbumID: targetAlbum.ID,
	})
	return moved, nil
}

// CopyPhotoToAlbum 把照片复制到另一个相册并广播 copied 事件。
// 存储端先做服务器侧复制；复制失败时不会创建新的元数据记录。
// 崩溃窗口内可能留下孤儿对象，这是已接受的失败模式。
func (s *photoService) CopyPhotoToAlbum(ctx context.Context, photoID, targetAlbumID uint) (*model.Photo, error) {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	targetAlbum, err := s.albumRepo.FindByID(ctx, targetAlbumID)
	if err != nil {
		return nil, err
	}

	if photo.AlbumID == targetAlbum.ID {
		return nil, fmt.Errorf("%w: 照片 %d 已在相册 %d 中", constant.ErrSameAlbum, photoID, targetAlbumID)
	}

	newURL, err := s.saver.CopyFile(ctx, photo.ImageUrl, targetAlbum.ID)
	if err != nil {
		return nil, err
	}

	// 新记录复制 caption/location/尺寸，不复制源相册与创建时间
	newPhoto, err := s.photoRepo.Create(ctx, &model.Photo{
		AlbumID:  targetAlbum.ID,
		ImageUrl: newURL,
		Caption:  photo.Caption,
		Location: photo.Location,
		Width:    photo.Width,
		Height:   photo.Height,
	})
	if err != nil {
		// 对象已复制而记录未建，留下孤儿对象；只记录，不回收
		log.Printf("[PhotoService] 警告: 复制后的元数据写入失败，对象 %s 成为孤儿: %v", sanitizeForLog(newURL), err)
		return nil, err
	}

	log.Printf("[PhotoService] 照片 %d 已复制到相册 %d，新照片: %d", photo.ID, targetAlbum.ID, newPhoto.ID)

	s.publisher.Publish(event.PhotoCopied, &model.PhotoChangedPayload{
		Data:    newPhoto,
		AlbumID: targetAlbum.ID,
	})
	return newPhoto, nil
}
