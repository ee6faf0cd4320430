package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/clearsight-dev/clearsight/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(username string) *domain.User {
	ds := domain.DataSourceManual
	return &domain.User{
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Name:         "测试用户",
		Email:        username + "@example.com",
		DataSource:   &ds,
	}
}

func TestMemoryRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		user := newTestUser(fmt.Sprintf("user%d", i))
		require.NoError(t, repo.CreateUser(ctx, user))
		assert.Equal(t, int64(i), user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	}
}

func TestMemoryRepository_CreateForcesNilPersona(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := newTestUser("alice")
	persona := domain.PersonaSales
	user.Persona = &persona

	require.NoError(t, repo.CreateUser(ctx, user))
	assert.Nil(t, user.Persona)

	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Persona)
}

func TestMemoryRepository_ConcurrentCreatesDistinctIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 3
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := newTestUser(fmt.Sprintf("user%d", i))
			if err := repo.CreateUser(ctx, user); err == nil {
				ids <- user.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "重复的 ID: %d", id)
		seen[id] = true
	}
	// n 次并发创建得到 n 个连续且不重复的 ID
	require.Len(t, seen, n)
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "缺少 ID %d", i)
	}
}

func TestMemoryRepository_DuplicateUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice")))

	err := repo.CreateUser(ctx, newTestUser("alice"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestMemoryRepository_ConcurrentDuplicateUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	var successes, conflicts int
	var mu sync.Mutex

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.CreateUser(ctx, newTestUser("alice"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case err == ErrUsernameTaken:
				conflicts++
			}
		}()
	}
	wg.Wait()

	// 同名并发注册恰好一个成功，其余冲突
	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
}

func TestMemoryRepository_GetAbsent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetUserByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryRepository_UpdateUserPersona(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := newTestUser("alice")
	user.DataSourceConfig = map[string]any{"filename": "leads.csv"}
	require.NoError(t, repo.CreateUser(ctx, user))

	for _, persona := range domain.AllPersonas {
		updated, err := repo.UpdateUserPersona(ctx, user.ID, persona)
		require.NoError(t, err)

		require.NotNil(t, updated.Persona)
		assert.Equal(t, persona, *updated.Persona)

		// persona 之外的字段保持不变
		assert.Equal(t, user.ID, updated.ID)
		assert.Equal(t, user.Username, updated.Username)
		assert.Equal(t, user.Email, updated.Email)
		assert.Equal(t, user.Name, updated.Name)
		require.NotNil(t, updated.DataSource)
		assert.Equal(t, domain.DataSourceManual, *updated.DataSource)
		assert.Equal(t, "leads.csv", updated.DataSourceConfig["filename"])
	}
}

func TestMemoryRepository_UpdatePersonaNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.UpdateUserPersona(context.Background(), 42, domain.PersonaSales)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryRepository_ReturnedRecordIsDetached(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := newTestUser("alice")
	require.NoError(t, repo.CreateUser(ctx, user))

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)

	// 改写返回的记录不影响仓库内部状态
	got.Username = "mallory"
	persona := domain.PersonaMarketing
	got.Persona = &persona

	again, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Username)
	assert.Nil(t, again.Persona)
}
