package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/anzhiyu-c/xiangce-app/internal/pkg/event"
	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"
)

// ---- 测试替身 ----

// recordingPublisher 同步记录发布的事件，替代异步总线
type recordingPublisher struct {
	events []event.Event
}

func (p *recordingPublisher) Publish(topic event.Topic, payload interface{}) {
	p.events = append(p.events, event.Event{Topic: topic, Payload: payload})
}

// fakeSaver 记录调用顺序到共享的 calls 切片
type fakeSaver struct {
	calls     *[]string
	saveErr   error
	copyErr   error
	deleteErr error
}

func (s *fakeSaver) Save(ctx context.Context, file io.Reader, fileName string) (string, error) {
	*s.calls = append(*s.calls, "saver.Save")
	if s.saveErr != nil {
		return "", s.saveErr
	}
	return "https://bucket.s3.us-east-1.amazonaws.com/uuid_" + fileName, nil
}

func (s *fakeSaver) SaveWithinFolder(ctx context.Context, file io.Reader, fileName string, albumID uint) (string, error) {
	*s.calls = append(*s.calls, "saver.SaveWithinFolder")
	if s.saveErr != nil {
		return "", s.saveErr
	}
	return fmt.Sprintf("https://bucket.s3.us-east-1.amazonaws.com/%d/uuid_%s", albumID, fileName), nil
}

func (s *fakeSaver) Delete(ctx context.Context, fileURL string) (bool, error) {
	*s.calls = append(*s.calls, "saver.Delete")
	if s.deleteErr != nil {
		return false, s.deleteErr
	}
	return true, nil
}

func (s *fakeSaver) CopyFile(ctx context.Context, sourceURL string, targetAlbumID uint) (string, error) {
	*s.calls = append(*s.calls, "saver.CopyFile")
	if s.copyErr != nil {
		return "", s.copyErr
	}
	return fmt.Sprintf("https://bucket.s3.us-east-1.amazonaws.com/%d/copy_of_file", targetAlbumID), nil
}

// fakePhotoRepo 用内存 map 模拟照片表
type fakePhotoRepo struct {
	calls     *[]string
	photos    map[uint]*model.Photo
	nextID    uint
	createErr error
}

func newFakePhotoRepo(calls *[]string, photos ...*model.Photo) *fakePhotoRepo {
	repo := &fakePhotoRepo{calls: calls, photos: make(map[uint]*model.Photo), nextID: 100}
	for _, p := range photos {
		repo.photos[p.ID] = p
	}
	return repo
}

func (r *fakePhotoRepo) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	if p, ok := r.photos[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, fmt.Errorf("%w: 照片 %d", constant.ErrNotFound, id)
}

func (r *fakePhotoRepo) FindByIDInAlbum(ctx context.Context, id, albumID uint) (*model.Photo, error) {
	if p, ok := r.photos[id]; ok && p.AlbumID == albumID {
		cp := *p
		return &cp, nil
	}
	return nil, fmt.Errorf("%w: 相册 %d 中不存在照片 %d", constant.ErrNotFound, albumID, id)
}

func (r *fakePhotoRepo) FindAllByAlbumID(ctx context.Context, albumID uint) ([]*model.Photo, error) {
	var result []*model.Photo
	for _, p := range r.photos {
		if p.AlbumID == albumID {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakePhotoRepo) Create(ctx context.Context, photo *model.Photo) (*model.Photo, error) {
	*r.calls = append(*r.calls, "repo.Create")
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	cp := *photo
	cp.ID = r.nextID
	r.photos[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakePhotoRepo) UpdateFields(ctx context.Context, id uint, fields repository.PhotoUpdateFields) (*model.Photo, error) {
	*r.calls = append(*r.calls, "repo.UpdateFields")
	p, ok := r.photos[id]
	if !ok {
		return nil, fmt.Errorf("%w: 照片 %d", constant.ErrNotFound, id)
	}
	if fields.Caption != nil {
		p.Caption = *fields.Caption
	}
	if fields.Location != nil {
		p.Location = *fields.Location
	}
	cp := *p
	return &cp, nil
}

func (r *fakePhotoRepo) MoveToAlbum(ctx context.Context, id, albumID uint) (*model.Photo, error) {
	*r.calls = append(*r.calls, "repo.MoveToAlbum")
	p, ok := r.photos[id]
	if !ok {
		return nil, fmt.Errorf("%w: 照片 %d", constant.ErrNotFound, id)
	}
	p.AlbumID = albumID
	cp := *p
	return &cp, nil
}

func (r *fakePhotoRepo) Delete(ctx context.Context, id uint) error {
	*r.calls = append(*r.calls, "repo.Delete")
	if _, ok := r.photos[id]; !ok {
		return fmt.Errorf("%w: 照片 %d", constant.ErrNotFound, id)
	}
	delete(r.photos, id)
	return nil
}

// fakeAlbumRepo 只认识给定的相册 ID
type fakeAlbumRepo struct {
	albums map[uint]*model.Album
}

func newFakeAlbumRepo(ids ...uint) *fakeAlbumRepo {
	repo := &fakeAlbumRepo{albums: make(map[uint]*model.Album)}
	for _, id := range ids {
		repo.albums[id] = &model.Album{ID: id, Name: fmt.Sprintf("相册%d", id)}
	}
	return repo
}

func (r *fakeAlbumRepo) FindByID(ctx context.Context, id uint) (*model.Album, error) {
	if a, ok := r.albums[id]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: 相册 %d", constant.ErrNotFound, id)
}

func (r *fakeAlbumRepo) FindAll(ctx context.Context) ([]*model.Album, error) {
	var result []*model.Album
	for _, a := range r.albums {
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeAlbumRepo) Create(ctx context.Context, album *model.Album) (*model.Album, error) {
	r.albums[album.ID] = album
	return album, nil
}

type fixture struct {
	calls     []string
	photoRepo *fakePhotoRepo
	albumRepo *fakeAlbumRepo
	saver     *fakeSaver
	publisher *recordingPublisher
	svc       PhotoService
}

func newFixture(albumIDs []uint, photos ...*model.Photo) *fixture {
	f := &fixture{}
	f.photoRepo = newFakePhotoRepo(&f.calls, photos...)
	f.albumRepo = newFakeAlbumRepo(albumIDs...)
	f.saver = &fakeSaver{calls: &f.calls}
	f.publisher = &recordingPublisher{}
	f.svc = NewPhotoService(f.photoRepo, f.albumRepo, f.saver, f.publisher)
	return f
}

func (f *fixture) assertEvents(t *testing.T, topics ...event.Topic) {
	t.Helper()
	if len(f.publisher.events) != len(topics) {
		t.Fatalf("事件数量不符: got %d, want %d", len(f.publisher.events), len(topics))
	}
	for i, topic := range topics {
		if f.publisher.events[i].Topic != topic {
			t.Errorf("事件 %d 主题不符: got %s, want %s", i, f.publisher.events[i].Topic, topic)
		}
	}
}

// ---- SavePhoto ----

func TestSavePhoto_WithFile(t *testing.T) {
	f := newFixture([]uint{7})

	created, err := f.svc.SavePhoto(context.Background(), UploadPhotoParams{
		AlbumID:  7,
		File:     strings.NewReader("图片字节"),
		FileName: "sunset.jpg",
		Caption:  "黄昏",
	})
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if created.ImageUrl == "" {
		t.Errorf("上传后应持有资源 URL")
	}
	if created.AlbumID != 7 || created.Caption != "黄昏" {
		t.Errorf("元数据不符: %+v", created)
	}

	// 对象存储写入必须先于元数据写入
	want := []string{"saver.SaveWithinFolder", "repo.Create"}
	if len(f.calls) != 2 || f.calls[0] != want[0] || f.calls[1] != want[1] {
		t.Errorf("调用顺序不符: got %v, want %v", f.calls, want)
	}

	f.assertEvents(t, event.PhotoUploaded)
	payload := f.publisher.events[0].Payload.(*model.PhotoChangedPayload)
	if payload.AlbumID != 7 || payload.Data.ID != created.ID {
		t.Errorf("事件载荷不符: %+v", payload)
	}
}

func TestSavePhoto_WithoutFile(t *testing.T) {
	f := newFixture([]uint{7})

	created, err := f.svc.SavePhoto(context.Background(), UploadPhotoParams{
		AlbumID: 7,
		Caption: "占位",
	})
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if created.ImageUrl != "" {
		t.Errorf("无文件时不应有资源 URL: %q", created.ImageUrl)
	}
	for _, call := range f.calls {
		if strings.HasPrefix(call, "saver.") {
			t.Errorf("无文件时不应触碰对象存储: %v", f.calls)
		}
	}
	f.assertEvents(t, event.PhotoUploaded)
}

func TestSavePhoto_StorageFailure_NoRecordNoEvent(t *testing.T) {
	f := newFixture([]uint{7})
	f.saver.saveErr = fmt.Errorf("%w: 上传到 S3 失败", constant.ErrStorageUnavailable)

	_, err := f.svc.SavePhoto(context.Background(), UploadPhotoParams{
		AlbumID:  7,
		File:     strings.NewReader("x"),
		FileName: "a.jpg",
	})
	if !errors.Is(err, constant.ErrStorageUnavailable) {
		t.Fatalf("错误类别不符: %v", err)
	}

	for _, call := range f.calls {
		if call == "repo.Create" {
			t.Errorf("存储失败后不应创建元数据记录: %v", f.calls)
		}
	}
	f.assertEvents(t)
}

func TestSavePhoto_AlbumNotFound(t *testing.T) {
	f := newFixture([]uint{7})

	_, err := f.svc.SavePhoto(context.Background(), UploadPhotoParams{AlbumID: 99})
	if !errors.Is(err, constant.ErrNotFound) {
		t.Fatalf("错误类别不符: %v", err)
	}
	if len(f.calls) != 0 {
		t.Errorf("相册不存在时不应有任何写入: %v", f.calls)
	}
	f.assertEvents(t)
}

func TestSavePhoto_CJKCaptionAtLimit(t *testing.T) {
	f := newFixture([]uint{7})

	// 255 个中文字符（765 字节）：长度限制按字符数计，不得因字节数被拒
	caption := strings.Repeat("湖", 255)
	created, err := f.svc.SavePhoto(context.Background(), UploadPhotoParams{
		AlbumID:  7,
		File:     strings.NewReader("x"),
		FileName: "lake.jpg",
		Caption:  caption,
	})
	if err != nil {
		t.Fatalf("255 字符的中文 caption 应被接受: %v", err)
	}
	if created.Caption != caption {
		t.Errorf("caption 未完整保存")
	}
	f.assertEvents(t, event.PhotoUploaded)
}

func TestUpdatePhoto_CJKLocationAtLimit(t *testing.T) {
	f := newFixture([]uint{7}, &model.Photo{ID: 1, AlbumID: 7})

	location := strings.Repeat("海", 200)
	updated, err := f.svc.UpdatePhoto(context.Background(), 1, 7, UpdatePhotoParams{
		Location: &location,
	})
	if err != nil {
		t.Fatalf("200 字符的中文 location 应被接受: %v", err)
	}
	if updated.Location != location {
		t.Errorf("location 未完整保存")
	}
	f.assertEvents(t, event.PhotoUpdated)
}

func TestSavePhoto_CaptionTooLong(t *testing.T) {
	f := newFixture([]uint{7})

	_, err := f.svc.SavePhoto(context.Background(), UploadPhotoParams{
		AlbumID: 7,
		Caption: strings.Repeat("长", 256),
	})
	if !errors.Is(err, constant.ErrValidation) {
		t.Fatalf("错误类别不符: %v", err)
	}
	if len(f.calls) != 0 {
		t.Errorf("校验失败后不应有任何写入: %v", f.calls)
	}
	f.assertEvents(t)
}

// ---- UpdatePhoto ----

func TestUpdatePhoto(t *testing.T) {
	caption := "新标题"
	tooLong := strings.Repeat("地", 201)

	tests := []struct {
		name      string
		photoID   uint
		albumID   uint
		params    UpdatePhotoParams
		wantErr   error
		wantEvent bool
	}{
		{
			name:      "只改caption_成功并广播",
			photoID:   1,
			albumID:   7,
			params:    UpdatePhotoParams{Caption: &caption},
			wantEvent: true,
		},
		{
			name:    "location超长_校验失败",
			photoID: 1,
			albumID: 7,
			params:  UpdatePhotoParams{Location: &tooLong},
			wantErr: constant.ErrValidation,
		},
		{
			name:    "相册不匹配_视同未找到",
			photoID: 1,
			albumID: 8,
			params:  UpdatePhotoParams{Caption: &caption},
			wantErr: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture([]uint{7, 8}, &model.Photo{ID: 1, AlbumID: 7, Caption: "旧标题"})

			updated, err := f.svc.UpdatePhoto(context.Background(), tt.photoID, tt.albumID, tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("错误类别不符: %v", err)
				}
				f.assertEvents(t)
				return
			}
			if err != nil {
				t.Fatalf("更新失败: %v", err)
			}
			if updated.Caption != caption {
				t.Errorf("caption 未更新: %+v", updated)
			}
			f.assertEvents(t, event.PhotoUpdated)
		})
	}
}

// ---- DeletePhoto ----

func TestDeletePhoto_MetadataOnly(t *testing.T) {
	f := newFixture([]uint{7}, &model.Photo{ID: 1, AlbumID: 7, ImageUrl: "https://x/7/a.jpg"})

	if err := f.svc.DeletePhoto(context.Background(), 1, 7, false); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	// 裸删除不触碰对象存储
	for _, call := range f.calls {
		if call == "saver.Delete" {
			t.Errorf("纯元数据删除不应触碰对象存储: %v", f.calls)
		}
	}

	f.assertEvents(t, event.PhotoDeleted)
	payload := f.publisher.events[0].Payload.(*model.PhotoDeletedPayload)
	if payload.ID != 1 || payload.AlbumID != 7 {
		t.Errorf("事件载荷不符: %+v", payload)
	}
}

func TestDeletePhoto_WithPurge(t *testing.T) {
	f := newFixture([]uint{7}, &model.Photo{ID: 1, AlbumID: 7, ImageUrl: "https://x/7/a.jpg"})

	if err := f.svc.DeletePhoto(context.Background(), 1, 7, true); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	want := []string{"saver.Delete", "repo.Delete"}
	if len(f.calls) != 2 || f.calls[0] != want[0] || f.calls[1] != want[1] {
		t.Errorf("调用顺序不符: got %v, want %v", f.calls, want)
	}
	f.assertEvents(t, event.PhotoDeleted)
}

func TestDeletePhoto_PurgeFailure_KeepsRecord(t *testing.T) {
	f := newFixture([]uint{7}, &model.Photo{ID: 1, AlbumID: 7, ImageUrl: "https://x/7/a.jpg"})
	f.saver.deleteErr = fmt.Errorf("%w: 从 S3 删除失败", constant.ErrStorageUnavailable)

	err := f.svc.DeletePhoto(context.Background(), 1, 7, true)
	if !errors.Is(err, constant.ErrStorageUnavailable) {
		t.Fatalf("错误类别不符: %v", err)
	}
	if _, ok := f.photoRepo.photos[1]; !ok {
		t.Errorf("对象删除失败时应保留元数据记录")
	}
	f.assertEvents(t)
}

func TestDeletePhoto_NotFound(t *testing.T) {
	f := newFixture([]uint{7})

	err := f.svc.DeletePhoto(context.Background(), 42, 7, false)
	if !errors.Is(err, constant.ErrNotFound) {
		t.Fatalf("错误类别不符: %v", err)
	}
	f.assertEvents(t)
}

// ---- MovePhotoToAlbum ----

func TestMovePhotoToAlbum(t *testing.T) {
	t.Run("移动成功_事件携带来源与目标", func(t *testing.T) {
		f := newFixture([]uint{7, 8}, &model.Photo{ID: 1, AlbumID: 7, ImageUrl: "https://x/7/a.jpg"})

		moved, err := f.svc.MovePhotoToAlbum(context.Background(), 1, 8)
		if err != nil {
			t.Fatalf("移动失败: %v", err)
		}
		if moved.AlbumID != 8 {
			t.Errorf("外键未更新: %+v", moved)
		}
		// 移动是纯元数据操作，对象存储不动
		if moved.ImageUrl != "https://x/7/a.jpg" {
			t.Errorf("移动不应改变资源 URL: %q", moved.ImageUrl)
		}
		for _, call := range f.calls {
			if strings.HasPrefix(call, "saver.") {
				t.Errorf("移动不应触碰对象存储: %v", f.calls)
			}
		}

		f.assertEvents(t, event.PhotoMoved)
		payload := f.publisher.events[0].Payload.(*model.PhotoMovedPayload)
		if payload.SourceAlbumID != 7 || payload.TargetAlbumID != 8 {
			t.Errorf("事件载荷不符: %+v", payload)
		}
	})

	t.Run("目标即当前相册_无操作且无事件", func(t *testing.T) {
		f := newFixture([]uint{7}, &model.Photo{ID: 1, AlbumID: 7})

		_, err := f.svc.MovePhotoToAlbum(context.Background(), 1, 7)
		if !errors.Is(err, constant.ErrSameAlbum) {
			t.Fatalf("错误类别不符: %v", err)
		}
		if len(f.calls) != 0 {
			t.Errorf("无操作不应有任何写入: %v", f.calls)
		}
		f.assertEvents(t)
	})

	t.Run("目标相册不存在", func(t *testing.T) {
		f := newFixture([]uint{7}, &model.Photo{ID: 1, AlbumID: 7})

		_, err := f.svc.MovePhotoToAlbum(context.Background(), 1, 99)
		if !errors.Is(err, constant.ErrNotFound) {
			t.Fatalf("错误类别不符: %v", err)
		}
		f.assertEvents(t)
	})
}

// ---- CopyPhotoToAlbum ----

func TestCopyPhotoToAlbum(t *testing.T) {
	t.Run("复制成功_存储复制先于建记录", func(t *testing.T) {
		f := newFixture([]uint{7, 8}, &model.Photo{
			ID: 1, AlbumID: 7, ImageUrl: "https://x/7/a.jpg",
			Caption: "标题", Location: "上海", Width: 800, Height: 600,
		})

		copied, err := f.svc.CopyPhotoToAlbum(context.Background(), 1, 8)
		if err != nil {
			t.Fatalf("复制失败: %v", err)
		}
		if copied.ID == 1 {
			t.Errorf("副本应是全新记录")
		}
		if copied.AlbumID != 8 || copied.Caption != "标题" || copied.Location != "上海" {
			t.Errorf("副本元数据不符: %+v", copied)
		}
		if copied.ImageUrl == "https://x/7/a.jpg" {
			t.Errorf("副本应持有独立的资源 URL")
		}

		want := []string{"saver.CopyFile", "repo.Create"}
		if len(f.calls) != 2 || f.calls[0] != want[0] || f.calls[1] != want[1] {
			t.Errorf("调用顺序不符: got %v, want %v", f.calls, want)
		}
		f.assertEvents(t, event.PhotoCopied)
	})

	t.Run("目标即当前相册_无操作且无事件", func(t *testing.T) {
		f := newFixture([]uint{7}, &model.Photo{ID: 1, AlbumID: 7})

		_, err := f.svc.CopyPhotoToAlbum(context.Background(), 1, 7)
		if !errors.Is(err, constant.ErrSameAlbum) {
			t.Fatalf("错误类别不符: %v", err)
		}
		if len(f.calls) != 0 {
			t.Errorf("无操作不应有任何写入: %v", f.calls)
		}
		f.assertEvents(t)
	})

	t.Run("存储复制失败_不建记录不发事件", func(t *testing.T) {
		f := newFixture([]uint{7, 8}, &model.Photo{ID: 1, AlbumID: 7, ImageUrl: "https://x/7/a.jpg"})
		f.saver.copyErr = fmt.Errorf("%w: S3 服务器侧复制失败", constant.ErrStorageRejected)

		_, err := f.svc.CopyPhotoToAlbum(context.Background(), 1, 8)
		if !errors.Is(err, constant.ErrStorageRejected) {
			t.Fatalf("错误类别不符: %v", err)
		}
		for _, call := range f.calls {
			if call == "repo.Create" {
				t.Errorf("存储复制失败后不应创建记录: %v", f.calls)
			}
		}
		f.assertEvents(t)
	})
}
