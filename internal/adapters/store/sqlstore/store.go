// Package sqlstore is the gorm backed item store. It runs on SQLite,
// PostgreSQL or MySQL depending on the configured dialect.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/go-item-service/internal/domain"
	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/platform/config"
	"github.com/jsamuelsen11/go-item-service/internal/ports"
)

var _ ports.ItemStore = (*Store)(nil)

// itemRecord is the row layout of the items table. Nullable columns keep
// absent form fields absent.
type itemRecord struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	ItemName  *string `gorm:"size:255"`
	Price     *int64
	Quantity  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (itemRecord) TableName() string { return "items" }

func toRecord(it *item.Item) itemRecord {
	c := it.Clone()
	if c == nil {
		c = &item.Item{}
	}
	return itemRecord{ItemName: c.ItemName, Price: c.Price, Quantity: c.Quantity}
}

func (r *itemRecord) toItem() *item.Item {
	return &item.Item{ID: r.ID, ItemName: r.ItemName, Price: r.Price, Quantity: r.Quantity}
}

// Store implements ports.ItemStore with gorm.
type Store struct {
	db *gorm.DB
}

// Open connects using cfg and migrates the items table.
func Open(cfg config.SQLConfig) (*Store, error) {
	dialector, err := dialectorFor(cfg.Dialect, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Dialect, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLife > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLife)
	}

	if err := db.AutoMigrate(&itemRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrating items table: %w", err)
	}

	return &Store{db: db}, nil
}

func dialectorFor(dialect, dsn string) (gorm.Dialector, error) {
	switch dialect {
	case config.DialectSQLite:
		return sqlite.Open(dsn), nil
	case config.DialectPostgres:
		return postgres.Open(dsn), nil
	case config.DialectMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}
}

// FindAll returns every item ordered by ID.
func (s *Store) FindAll(ctx context.Context) ([]item.Item, error) {
	var recs []itemRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	out := make([]item.Item, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toItem())
	}
	return out, nil
}

// FindByID returns the item or an error wrapping domain.ErrNotFound.
func (s *Store) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	var rec itemRecord
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading item %d: %w", id, err)
	}
	return rec.toItem(), nil
}

// Save inserts it and returns the stored copy with its new ID.
func (s *Store) Save(ctx context.Context, it *item.Item) (*item.Item, error) {
	rec := toRecord(it)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}
	return rec.toItem(), nil
}

// Update overwrites all fields of the item with id, absent ones included.
func (s *Store) Update(ctx context.Context, id int64, it *item.Item) error {
	rec := toRecord(it)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing itemRecord
		err := tx.Select("id").First(&existing, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("loading item %d: %w", id, err)
		}

		err = tx.Model(&existing).
			Select("ItemName", "Price", "Quantity", "UpdatedAt").
			Updates(&itemRecord{
				ItemName:  rec.ItemName,
				Price:     rec.Price,
				Quantity:  rec.Quantity,
				UpdatedAt: time.Now(),
			}).Error
		if err != nil {
			return fmt.Errorf("updating item %d: %w", id, err)
		}
		return nil
	})
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "database" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
