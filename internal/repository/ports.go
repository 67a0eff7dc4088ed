package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	InsertOne(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	ListOrdered(ctx context.Context, entity any, order string, limit int, cond string, args ...any) error
	UpdateWhere(ctx context.Context, model any, updates map[string]any, cond string, args ...any) (int64, error)
	DeleteBy(ctx context.Context, model any, column string, value any) error
}
