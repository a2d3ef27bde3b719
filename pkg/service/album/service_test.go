package album

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/anzhiyu-c/xiangce-app/pkg/constant"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
)

type fakeAlbumRepo struct {
	albums map[uint]*model.Album
	nextID uint
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
	r.nextID++
	cp := *album
	cp.ID = r.nextID
	r.albums[cp.ID] = &cp
	return &cp, nil
}

func TestCreateAlbum(t *testing.T) {
	tests := []struct {
		name     string
		params   CreateAlbumParams
		wantErr  error
		wantName string
	}{
		{
			name:     "正常创建",
			params:   CreateAlbumParams{Name: "旅行", Description: "2025 年的旅行照片"},
			wantName: "旅行",
		},
		{
			name:     "名称首尾空白被裁剪",
			params:   CreateAlbumParams{Name: "  家庭  "},
			wantName: "家庭",
		},
		{
			name:    "空名称_校验失败",
			params:  CreateAlbumParams{Name: "   "},
			wantErr: constant.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAlbumService(&fakeAlbumRepo{albums: make(map[uint]*model.Album)})

			created, err := svc.CreateAlbum(context.Background(), tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("错误类别不符: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("创建失败: %v", err)
			}
			if created.ID == 0 {
				t.Errorf("应回填 ID")
			}
			if created.Name != tt.wantName {
				t.Errorf("名称不符: got %q, want %q", created.Name, tt.wantName)
			}
		})
	}
}
