package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/clearsight-dev/clearsight/backend/internal/config"
	"github.com/clearsight-dev/clearsight/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository 是 UserRepository 的持久化实现，
// 用户名唯一性由 users_username_key 唯一索引保证
type PostgresRepository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewPostgresRepository(cfg *config.Config, dbpool *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

func (r *PostgresRepository) queryTimeout() time.Duration {
	return time.Duration(r.cfg.Database.QueryTimeout) * time.Second
}

// scanUser 处理 persona / data_source / data_source_config 三个可空列
func scanUser(row *sql.Row, user *domain.User) error {
	var persona, dataSource sql.NullString
	var configRaw []byte

	dst := []any{&user.ID, &user.Username, &user.PasswordHash, &user.Name, &user.Email, &persona, &dataSource, &configRaw, &user.CreatedAt}
	if err := row.Scan(dst...); err != nil {
		return err
	}

	if persona.Valid {
		p := domain.Persona(persona.String)
		user.Persona = &p
	}
	if dataSource.Valid {
		ds := domain.DataSource(dataSource.String)
		user.DataSource = &ds
	}
	if configRaw != nil {
		if err := json.Unmarshal(configRaw, &user.DataSourceConfig); err != nil {
			return err
		}
	}

	return nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, name, email, persona, data_source, data_source_config, created_at
		FROM users WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout())
	defer cancel()

	user := &domain.User{}
	if err := scanUser(r.dbpool.QueryRowContext(ctx, query, id), user); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrUserNotFound
		default:
			return nil, err
		}
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, name, email, persona, data_source, data_source_config, created_at
		FROM users WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout())
	defer cancel()

	user := &domain.User{}
	if err := scanUser(r.dbpool.QueryRowContext(ctx, query, username), user); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrUserNotFound
		default:
			return nil, err
		}
	}

	return user, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	// persona 不在插入列中，新用户的 persona 一律为 NULL
	query := `
		INSERT INTO users (username, password_hash, name, email, data_source, data_source_config)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout())
	defer cancel()

	var dataSource sql.NullString
	if user.DataSource != nil {
		dataSource = sql.NullString{String: string(*user.DataSource), Valid: true}
	}

	var configRaw []byte
	if user.DataSourceConfig != nil {
		raw, err := json.Marshal(user.DataSourceConfig)
		if err != nil {
			return err
		}
		configRaw = raw
	}

	user.Persona = nil

	args := []any{user.Username, user.PasswordHash, user.Name, user.Email, dataSource, configRaw}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "users_username_key":
			return ErrUsernameTaken
		default:
			return err
		}
	}

	return nil
}

func (r *PostgresRepository) UpdateUserPersona(ctx context.Context, id int64, persona domain.Persona) (*domain.User, error) {
	query := `
		UPDATE users SET persona = $1
		WHERE id = $2
		RETURNING id, username, password_hash, name, email, persona, data_source, data_source_config, created_at
	`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout())
	defer cancel()

	user := &domain.User{}
	if err := scanUser(r.dbpool.QueryRowContext(ctx, query, string(persona), id), user); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrUserNotFound
		default:
			return nil, err
		}
	}

	return user, nil
}
