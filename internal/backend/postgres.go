package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/akeren/waitlist-foundry/internal/models"
	apperrors "github.com/akeren/waitlist-foundry/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres writes straight into waitlist_entries over a gorm connection.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Kind() Kind {
	return KindPostgres
}

func (p *Postgres) Ready() error {
	if p.db == nil {
		return &ConfigError{Kind: KindPostgres, Reason: "Database not configured"}
	}
	return nil
}

func (p *Postgres) Append(ctx context.Context, entry *models.WaitlistEntry) (*Result, error) {
	stored := *entry

	if err := p.db.WithContext(ctx).Create(&stored).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
		}
		return nil, &Error{Kind: KindPostgres, Code: sqlState(err), Message: "unable to create waitlist entry", Err: err}
	}

	return &Result{Entry: stored}, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.Ready(); err != nil {
		return err
	}

	sqlDB, err := p.db.DB()
	if err != nil {
		return &Error{Kind: KindPostgres, Message: "unable to get database handle", Err: err}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return &Error{Kind: KindPostgres, Message: "database ping failed", Err: err}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if sqlState(err) == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateKeyError(err)
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
