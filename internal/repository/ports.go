package repository

import (
	"context"
	"exercisetracker/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, orderBy string, entities any) error
	Find(ctx context.Context, q db.Query, entities any) error
	DeleteAll(ctx context.Context, model any) (int64, error)
}
