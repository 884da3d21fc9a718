package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Repository owns the database handles shared by every repository.
type Repository struct {
	DB    *gorm.DB
	SQL   *sql.DB
	Store Store
}

func New(cfg *config.Config) (*Repository, error) {

	sqlDB, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	ctx, cancel := withDBTimeout(context.Background())
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewFromConn(sqlDB, NewGormLogger(ParseGormLogLevel(cfg.Database.LogLevel), cfg.Database.SlowThreshold))
}

// NewFromConn builds the repositories over an already opened postgres connection pool.
func NewFromConn(sqlDB *sql.DB, logger *GormLogger) (*Repository, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Repository{DB: db, SQL: sqlDB, Store: NewStore(db)}, nil
}

func (p *Repository) Ping(ctx context.Context) error {
	ctx, cancel := withDBTimeout(ctx)
	defer cancel()

	return p.SQL.PingContext(ctx)
}

func (p *Repository) Close() error {
	return p.SQL.Close()
}
