package broadcast

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/anzhiyu-c/xiangce-app/pkg/domain/model"
	"github.com/anzhiyu-c/xiangce-app/pkg/domain/repository"

	"github.com/redis/go-redis/v9"
)

// redisChannel 是多实例间转发变更事件的 Pub/Sub 频道
const redisChannel = "xiangce:photo_events"

// Pusher 是事件投递的传输端口，由 WebSocket Hub 实现
type Pusher interface {
	SendToUser(userID uint, message []byte)
}

// BroadcastService 把一条照片变更事件投递给全部已知用户。
// 投递是 fire-and-forget 的：任何接收者的失败都不影响其他接收者，
// 也绝不影响触发广播的那次业务操作（它此时已经提交完成）。
type BroadcastService interface {
	// Broadcast 向全部用户广播一条类型化事件
	Broadcast(ctx context.Context, msgType model.WSMessageType, payload interface{})

	// StartSubscriber 启动 Redis 订阅回路（仅在配置了 Redis 时需要）
	StartSubscriber(ctx context.Context)
}

type broadcastService struct {
	userRepo repository.UserRepository
	pusher   Pusher
	rdb      *redis.Client // 可选，nil 时退化为单实例本地投递
}

// NewBroadcastService 是 broadcastService 的构造函数。rdb 可以为 nil。
func NewBroadcastService(userRepo repository.UserRepository, pusher Pusher, rdb *redis.Client) BroadcastService {
	return &broadcastService{
		userRepo: userRepo,
		pusher:   pusher,
		rdb:      rdb,
	}
}

func (s *broadcastService) Broadcast(ctx context.Context, msgType model.WSMessageType, payload interface{}) {
	raw, err := json.Marshal(model.WSMessage{Type: msgType, Data: payload})
	if err != nil {
		log.Printf("[Broadcast] 序列化事件失败 (type=%s): %v", msgType, err)
		return
	}

	// 配置了 Redis 时经由 Pub/Sub 中转，本实例和其他实例都从订阅回路投递，
	// 避免本地双重投递
	if s.rdb != nil {
		if err := s.rdb.Publish(ctx, redisChannel, raw).Err(); err != nil {
			log.Printf("[Broadcast] Redis 发布失败，降级为本地投递: %v", err)
			s.fanOut(ctx, raw)
		}
		return
	}

	s.fanOut(ctx, raw)
}

// fanOut 在广播时刻枚举全部用户并发投递。
// 每个接收者一个 goroutine，延迟不随用户数线性增长；
// 单个接收者的投递本身是非阻塞的缓冲写入。
func (s *broadcastService) fanOut(ctx context.Context, raw []byte) {
	recipients, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		log.Printf("[Broadcast] 枚举接收者失败: %v", err)
		return
	}

	var wg sync.WaitGroup
	for _, uid := range recipients {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			s.pusher.SendToUser(userID, raw)
		}(uid)
	}
	wg.Wait()
}

// StartSubscriber 订阅 Redis 频道并把收到的事件投递给本实例的连接。
// ctx 取消时退出。
func (s *broadcastService) StartSubscriber(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	pubsub := s.rdb.Subscribe(ctx, redisChannel)
	log.Printf("[Broadcast] 已订阅 Redis 频道: %s", redisChannel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				log.Println("[Broadcast] Redis 订阅回路退出")
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				s.fanOut(ctx, []byte(msg.Payload))
			}
		}
	}()
}
