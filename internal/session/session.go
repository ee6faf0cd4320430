package session

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("会话不存在或已过期")

// Store 保存服务端会话记录，cookie 中的令牌只有在这里仍然存在时才有效，
// 因此登出可以真正使令牌失效
type Store interface {
	// Create 以 ttl 为过期时间登记一个会话
	Create(ctx context.Context, sessionID string, userID int64) error
	// UserID 返回会话对应的用户 ID，不存在或已过期时返回 ErrSessionNotFound
	UserID(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}
