// internal/storage/postgres.go
package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/euphoria-shop/storefront/internal/config"
)

type kvEntry struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// PostgresStore backs the key-value store with a single gorm table, for
// deployments where the storefront state should outlive the host.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(cfg config.DatabaseConfig) (*PostgresStore, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if cfg.LogLevel != "silent" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(key string) (string, bool, error) {
	var entry kvEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *PostgresStore) Set(key, value string) error {
	entry := kvEntry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Remove(key string) error {
	if err := s.db.Delete(&kvEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
