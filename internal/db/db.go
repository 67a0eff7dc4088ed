package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
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

// SaveToTable inserts the given slice of records only when the table is still
// empty. Used for seeding reference data at startup.
func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64

	elemType := slice.Index(0).Interface()
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// InsertOne creates a single record. A primary/unique key collision surfaces
// as ErrDuplicate so callers can implement insert-as-claim semantics.
func (f *PostgresDB) InsertOne(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
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

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// ListOrdered fills entity with up to limit rows ordered by the given clause,
// optionally filtered by a where condition. Pass a zero limit for no cap.
func (f *PostgresDB) ListOrdered(ctx context.Context, entity any, order string, limit int, cond string, args ...any) error {
	tx := f.DB.WithContext(ctx).Order(order)
	if cond != "" {
		tx = tx.Where(cond, args...)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("listing records ordered by %q: %w", order, err)
	}
	return nil
}

// UpdateWhere applies updates to rows of the model matching cond and reports
// how many rows changed. A zero count means the condition matched nothing,
// which is how conditional-update invariants are detected.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, updates map[string]any, cond string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(cond, args...).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) DeleteBy(ctx context.Context, model any, column string, value any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return nil
}
