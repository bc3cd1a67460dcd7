package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/domain/model"
	"github.com/polkiloo/usersapi/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// snapshotTx makes the count and the page window observe the same data.
var snapshotTx = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres schema ready",
		slog.String("host", cfg.ConnConfig.Host),
		slog.String("database", cfg.ConnConfig.Database),
	)
	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Users exposes storage as a user repository.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            seq BIGSERIAL UNIQUE NOT NULL,
            id UUID PRIMARY KEY,
            login TEXT NOT NULL,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            games_played INTEGER NOT NULL DEFAULT 0,
            current_game_id UUID
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_seq ON users(seq)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `id, login, first_name, last_name, games_played, current_game_id`

func scanUser(row pgx.Row) (model.User, error) {
	var (
		u      model.User
		gameID uuid.NullUUID
	)
	if err := row.Scan(&u.ID, &u.Login, &u.FirstName, &u.LastName, &u.GamesPlayed, &gameID); err != nil {
		return model.User{}, err
	}
	if gameID.Valid {
		id := gameID.UUID
		u.CurrentGameID = &id
	}
	return u, nil
}

func nullGameID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	u, err := scanUser(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) Insert(ctx context.Context, user model.User) (*model.User, error) {
	const query = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	user = user.Clone()
	user.ID = uuid.New()
	_, err := r.storage.pool.Exec(ctx, query,
		user.ID, user.Login, user.FirstName, user.LastName, user.GamesPlayed, nullGameID(user.CurrentGameID))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user model.User) error {
	const query = `UPDATE users SET login=$2, first_name=$3, last_name=$4, games_played=$5, current_game_id=$6 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		user.ID, user.Login, user.FirstName, user.LastName, user.GamesPlayed, nullGameID(user.CurrentGameID))
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) GetPage(ctx context.Context, pageNumber, pageSize int) ([]model.User, int, error) {
	const (
		countQuery = `SELECT COUNT(*) FROM users`
		pageQuery  = `SELECT ` + userColumns + ` FROM users ORDER BY seq LIMIT $1 OFFSET $2`
	)

	items := []model.User{}
	var total int64
	if pageNumber < 1 || pageSize < 1 {
		err := r.storage.pool.QueryRow(ctx, countQuery).Scan(&total)
		if err != nil {
			return nil, 0, fmt.Errorf("count users: %w", err)
		}
		return items, int(total), nil
	}

	err := r.storage.WithinTransaction(ctx, snapshotTx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, countQuery).Scan(&total); err != nil {
			return fmt.Errorf("count users: %w", err)
		}

		if total == 0 || int64(pageNumber-1) > (total-1)/int64(pageSize) {
			return nil
		}
		offset := int64(pageNumber-1) * int64(pageSize)

		rows, err := tx.Query(ctx, pageQuery, int64(pageSize), offset)
		if err != nil {
			return fmt.Errorf("select page: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			u, err := scanUser(rows)
			if err != nil {
				return err
			}
			items = append(items, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, opts pgx.TxOptions, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.pool.Ping(ctx); err != nil {
		s.logger.Error("postgres ping failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
