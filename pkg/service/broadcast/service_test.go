package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
)

// fakeUserRepo 返回固定的接收者集合
type fakeUserRepo struct {
	ids     []uint
	listErr error
}

func (r *fakeUserRepo) ListIDs(ctx context.Context) ([]uint, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.ids, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, fmt.Errorf("不支持")
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	return nil, fmt.Errorf("不支持")
}

// recordingPusher 并发安全地记录每个用户收到的消息
type recordingPusher struct {
	mu       sync.Mutex
	received map[uint][][]byte
}

func newRecordingPusher() *recordingPusher {
	return &recordingPusher{received: make(map[uint][][]byte)}
}

func (p *recordingPusher) SendToUser(userID uint, message []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.received[userID] = append(p.received[userID], message)
}

func TestBroadcast_DeliversToEveryUserExactlyOnce(t *testing.T) {
	userRepo := &fakeUserRepo{ids: []uint{1, 2, 3}}
	pusher := newRecordingPusher()
	svc := NewBroadcastService(userRepo, pusher, nil)

	payload := &model.PhotoChangedPayload{
		Data:    &model.Photo{ID: 5, AlbumID: 7},
		AlbumID: 7,
	}
	svc.Broadcast(context.Background(), model.WSPhotoUploaded, payload)

	// rdb 为 nil 时 fanOut 在 Broadcast 返回前完成投递
	pusher.mu.Lock()
	defer pusher.mu.Unlock()

	if len(pusher.received) != 3 {
		t.Fatalf("接收者数量不符: got %d, want 3", len(pusher.received))
	}
	for _, uid := range userRepo.ids {
		msgs := pusher.received[uid]
		if len(msgs) != 1 {
			t.Fatalf("用户 %d 应恰好收到一条消息, got %d", uid, len(msgs))
		}

		var decoded struct {
			Type model.WSMessageType `json:"type"`
			Data struct {
				AlbumID uint `json:"album_id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(msgs[0], &decoded); err != nil {
			t.Fatalf("消息不是合法 JSON: %v", err)
		}
		if decoded.Type != model.WSPhotoUploaded {
			t.Errorf("消息类型不符: got %s", decoded.Type)
		}
		if decoded.Data.AlbumID != 7 {
			t.Errorf("载荷不符: %+v", decoded)
		}
	}
}

func TestBroadcast_ListRecipientsFailure_NoPanic(t *testing.T) {
	userRepo := &fakeUserRepo{listErr: fmt.Errorf("数据库不可用")}
	pusher := newRecordingPusher()
	svc := NewBroadcastService(userRepo, pusher, nil)

	// 枚举接收者失败只影响投递，不能 panic 也不能向外传播
	svc.Broadcast(context.Background(), model.WSPhotoDeleted, &model.PhotoDeletedPayload{ID: 1, AlbumID: 7})

	pusher.mu.Lock()
	defer pusher.mu.Unlock()
	if len(pusher.received) != 0 {
		t.Errorf("失败后不应有任何投递: %v", pusher.received)
	}
}

func TestBroadcast_NoRecipients(t *testing.T) {
	userRepo := &fakeUserRepo{ids: nil}
	pusher := newRecordingPusher()
	svc := NewBroadcastService(userRepo, pusher, nil)

	svc.Broadcast(context.Background(), model.WSPhotoUpdated, &model.PhotoChangedPayload{AlbumID: 7})

	pusher.mu.Lock()
	defer pusher.mu.Unlock()
	if len(pusher.received) != 0 {
		t.Errorf("无接收者时不应有投递: %v", pusher.received)
	}
}
