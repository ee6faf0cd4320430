package repository

import (
	"context"
	"errors"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
)

var (
	ErrUserNotFound  = errors.New("用户不存在")
	ErrUsernameTaken = errors.New("用户名已被占用")
)

// UserRepository 是用户存储的抽象，内存实现用于测试和开发，
// postgres 实现用于生产，两者的错误语义必须一致
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateUser 分配下一个自增 ID 并写入记录；
	// 无论调用方传入什么，新用户的 persona 一律为空；
	// 用户名冲突时原子地返回 ErrUsernameTaken
	CreateUser(ctx context.Context, user *domain.User) error
	// UpdateUserPersona 原子地替换 persona 并返回完整的更新后记录，
	// 其余字段保持不变；用户不存在时返回 ErrUserNotFound
	UpdateUserPersona(ctx context.Context, id int64, persona domain.Persona) (*domain.User, error)
}
