package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// PoolConfig bounds the underlying sql.DB connection pool. Requests that
// cannot get a connection queue inside database/sql until one frees up.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewMySQL returns a connected GORM DB instance with a bounded pool.
func NewMySQL(dsn string, pool PoolConfig) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return gormDB, nil
}

// Migrate creates the users, questions, and answers tables inside a single
// transaction. If any step fails the setup rolls back and the caller must
// not begin serving traffic.
func Migrate(gormDB *gorm.DB, models ...interface{}) error {
	return gormDB.Transaction(func(tx *gorm.DB) error {
		for _, m := range models {
			if err := tx.AutoMigrate(m); err != nil {
				return fmt.Errorf("migrate %T: %w", m, err)
			}
		}
		return nil
	})
}
