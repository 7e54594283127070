package companion

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/decker502/transitface/pkg/message"
	"github.com/decker502/transitface/pkg/transit"
)

// LocalBridge 进程内的消息桥接
//
// 启动时和每次收到刷新请求时，在后台协程中读取数据源，
// 把结果编码为消息投递到 Inbox。表盘端在 UI 线程上读取 Inbox。
type LocalBridge struct {
	source Source

	inbox    chan message.Dict
	requests chan struct{}

	mu      sync.Mutex
	started bool
	closed  bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewLocalBridge 创建本地桥接
func NewLocalBridge(source Source) *LocalBridge {
	return &LocalBridge{
		source:   source,
		inbox:    make(chan message.Dict, 4),
		requests: make(chan struct{}, 1),
	}
}

// Start 启动后台协程并立即加载一次数据
func (b *LocalBridge) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started || b.closed {
		return
	}
	b.started = true

	ctx, b.cancel = context.WithCancel(ctx)
	b.wg.Add(1)
	go b.run(ctx)
}

// Inbox 返回消息通道
func (b *LocalBridge) Inbox() <-chan message.Dict {
	return b.inbox
}

// RequestRefresh 请求重新加载数据
// 已有待处理的请求时合并为一次
func (b *LocalBridge) RequestRefresh(ctx context.Context) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return message.ErrBridgeClosed
	}

	select {
	case b.requests <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// Close 停止后台协程并等待其退出
func (b *LocalBridge) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	cancel := b.cancel
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
	return nil
}

func (b *LocalBridge) run(ctx context.Context) {
	defer b.wg.Done()

	b.deliver(ctx, b.load(ctx))
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.requests:
			log.Printf("[LocalBridge] Refresh requested")
			b.deliver(ctx, b.load(ctx))
		}
	}
}

// load 读取数据源并编码为消息
func (b *LocalBridge) load(ctx context.Context) message.Dict {
	return BuildMessage(ctx, b.source)
}

func (b *LocalBridge) deliver(ctx context.Context, d message.Dict) {
	if d == nil {
		return
	}
	select {
	case b.inbox <- d:
	case <-ctx.Done():
	}
}

// BuildMessage 读取数据源并编码为发送给表盘的消息
//
// 错误映射：
//   - 文件无法打开：NoConnection
//   - 解析失败：UnknownAPIError
//   - 没有可显示的车次：NoResults
//
// ctx 被取消时返回 nil。
func BuildMessage(ctx context.Context, source Source) message.Dict {
	departures, err := source.Departures(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		log.Printf("[LocalBridge] Failed to load departures: %v", err)
		if errors.Is(err, ErrSourceUnavailable) {
			return message.EncodeStatus(transit.StatusNoConnection)
		}
		return message.EncodeStatus(transit.StatusUnknownAPIError)
	}

	records := BuildRecords(departures)
	log.Printf("[LocalBridge] Loaded %d departures, sending %d", len(departures), len(records))
	return message.Encode(records)
}
