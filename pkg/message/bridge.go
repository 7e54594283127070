package message

import (
	"context"
	"errors"
)

// ErrBridgeClosed 桥接已关闭
var ErrBridgeClosed = errors.New("bridge closed")

// Bridge 手表与伴侣端之间的异步消息通道
//
// Inbox 中的消息由伴侣端在任意协程中投递；手表端只在 UI 线程上读取。
// RequestRefresh 发送空的刷新请求，不等待伴侣端响应。
type Bridge interface {
	Inbox() <-chan Dict
	RequestRefresh(ctx context.Context) error
}
