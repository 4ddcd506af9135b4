package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Condition is a single "column operator value" predicate. Conditions of a
// Query are joined with AND.
type Condition struct {
	Column   string
	Operator string
	Value    any
}

// Query describes a filtered read. Columns restricts the projection, an empty
// slice selects every column. A Limit of zero or less means unbounded.
type Query struct {
	Columns    []string
	Conditions []Condition
	OrderBy    string
	Limit      int
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string, logLevel string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(logLevel)),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert stores a single record. Store generated columns are written back
// into record.
func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, orderBy string, entities any) error {
	tx := f.DB.WithContext(ctx)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

func (f *PostgresDB) Find(ctx context.Context, q Query, entities any) error {
	tx := f.DB.WithContext(ctx)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	for _, cond := range q.Conditions {
		tx = tx.Where(fmt.Sprintf("%s %s ?", cond.Column, cond.Operator), cond.Value)
	}
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

// DeleteAll removes every row of the model's table and reports how many
// rows were removed.
func (f *PostgresDB) DeleteAll(ctx context.Context, model any) (int64, error) {
	tx := f.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting all records: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
