package repository

import (
	"context"
	"sync"
	"time"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
)

// MemoryRepository 把用户保存在进程内存中，进程退出即丢失。
// 所有写操作都在同一把锁下串行执行，避免并发 persona 更新时的丢失更新。
type MemoryRepository struct {
	mu         sync.RWMutex
	users      map[int64]*domain.User
	byUsername map[string]int64
	nextID     int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:      make(map[int64]*domain.User),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	return user.Clone(), nil
}

func (r *MemoryRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}

	return r.users[id].Clone(), nil
}

func (r *MemoryRepository) CreateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 唯一性检查和插入在同一把锁下完成，关闭 lookup-then-insert 的竞态窗口
	if _, ok := r.byUsername[user.Username]; ok {
		return ErrUsernameTaken
	}

	user.ID = r.nextID
	r.nextID++
	user.Persona = nil
	user.CreatedAt = time.Now()

	r.users[user.ID] = user.Clone()
	r.byUsername[user.Username] = user.ID

	return nil
}

func (r *MemoryRepository) UpdateUserPersona(ctx context.Context, id int64, persona domain.Persona) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	// 整体替换记录，读方要么看到旧 persona 要么看到新 persona，没有中间态
	updated := user.Clone()
	updated.Persona = &persona
	r.users[id] = updated

	return updated.Clone(), nil
}
