package message

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/decker502/transitface/pkg/anim"
	"github.com/decker502/transitface/pkg/transit"
)

// maxPollPerFrame 每帧最多处理的消息数
const maxPollPerFrame = 8

// Receiver 手表端的消息接收器
//
// 在 UI 线程上（Update 中）调用 Poll 取出桥接收到的消息并写入路线列表。
// 每次收到带路线数量的消息（路线记录、状态或解码失败）后，在调度器上注册一个
// 刷新定时器，到期时发送刷新请求；发送失败会显示 MessageSendFailure 并重新注册定时器。
type Receiver struct {
	ctx       context.Context
	bridge    Bridge
	scheduler *anim.Scheduler
	routes    *transit.RouteList
	interval  time.Duration

	refreshTimer anim.TimerID
	beforeApply  func()
	afterApply   func()
}

// NewReceiver 创建消息接收器
//
// 参数：
//   - ctx: 刷新请求使用的上下文
//   - bridge: 消息桥接
//   - scheduler: 刷新定时器所在的调度器
//   - routes: 被更新的路线列表
//   - interval: 刷新间隔
func NewReceiver(ctx context.Context, bridge Bridge, scheduler *anim.Scheduler, routes *transit.RouteList, interval time.Duration) *Receiver {
	return &Receiver{
		ctx:       ctx,
		bridge:    bridge,
		scheduler: scheduler,
		routes:    routes,
		interval:  interval,
	}
}

// SetHooks 设置写入路线列表前后的回调
// before 通常用于取消进行中的过渡动画，after 用于重绘
func (r *Receiver) SetHooks(before, after func()) {
	r.beforeApply = before
	r.afterApply = after
}

// RefreshPending 是否有待触发的刷新定时器
func (r *Receiver) RefreshPending() bool {
	return r.scheduler.TimerPending(r.refreshTimer)
}

// Poll 非阻塞地处理桥接中已到达的消息，返回处理的消息数
func (r *Receiver) Poll() int {
	inbox := r.bridge.Inbox()
	n := 0
	for n < maxPollPerFrame {
		select {
		case d, ok := <-inbox:
			if !ok {
				return n
			}
			n++
			if err := r.Apply(d); err != nil && !errors.Is(err, ErrNoCount) {
				log.Printf("[Receiver] %v", err)
			}
		default:
			return n
		}
	}
	return n
}

// Apply 解码一条消息并写入路线列表
//
// 缺少路线数量的消息被忽略；解码失败时显示 MessageDecodeFailure。
func (r *Receiver) Apply(d Dict) error {
	update, err := Decode(d)
	if errors.Is(err, ErrNoCount) {
		log.Printf("[Receiver] Ignoring message without route count (%d keys)", len(d))
		return err
	}

	r.before()
	defer r.after()
	r.armRefresh()

	if err != nil {
		r.routes.SetStatus(update.Status)
		return err
	}
	if update.Status != transit.StatusOK {
		log.Printf("[Receiver] Status update: %s", update.Status.Text())
		r.routes.SetStatus(update.Status)
		return nil
	}

	n := r.routes.Replace(update.Records)
	log.Printf("[Receiver] Received %d routes", n)
	return nil
}

// Stop 取消刷新定时器
func (r *Receiver) Stop() {
	if r.refreshTimer != 0 {
		r.scheduler.Cancel(r.refreshTimer)
		r.refreshTimer = 0
	}
}

func (r *Receiver) armRefresh() {
	r.Stop()
	r.refreshTimer = r.scheduler.AfterFunc(r.interval, r.sendRefresh)
}

func (r *Receiver) sendRefresh() {
	r.refreshTimer = 0
	if err := r.bridge.RequestRefresh(r.ctx); err != nil {
		log.Printf("[Receiver] Refresh request failed: %v", err)
		r.before()
		r.routes.SetStatus(transit.StatusMessageSendFailure)
		r.after()
		r.armRefresh()
	}
}

func (r *Receiver) before() {
	if r.beforeApply != nil {
		r.beforeApply()
	}
}

func (r *Receiver) after() {
	if r.afterApply != nil {
		r.afterApply()
	}
}
