package seed

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/clearsight-dev/clearsight/backend/internal/config"
	"github.com/clearsight-dev/clearsight/backend/internal/repository"
	"github.com/clearsight-dev/clearsight/backend/internal/utils"
)

// InsertRandomUsers 插入 n 个随机演示用户，用户名冲突时跳过并继续。
// 新建用户的 persona 一律为空，这里模拟真实流程，给一部分用户再选一个 persona
func InsertRandomUsers(ctx context.Context, cfg *config.Config, repo repository.UserRepository, n int) int {
	inserted := 0

	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Seed.User.EmailDomain)
		if err != nil {
			slog.Error("无法生成随机用户", "error", err)
			continue
		}

		if err := repo.CreateUser(ctx, user); err != nil {
			slog.Error("无法插入随机用户", "username", user.Username, "error", err)
			continue
		}

		if rand.Intn(2) == 0 {
			persona := utils.GenerateRandomPersona()
			if _, err := repo.UpdateUserPersona(ctx, user.ID, persona); err != nil {
				slog.Error("无法设置随机用户的 persona", "username", user.Username, "error", err)
			}
		}

		slog.Info("已插入随机用户", "id", user.ID, "username", user.Username)
		inserted++
	}

	return inserted
}
