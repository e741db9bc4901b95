// Package session provides the persistent backing store for the
// client's session middleware: one sqlite table holding the encoded
// token + user blobs, keyed by session ID. It is the only local
// persistence in the client; every exam record lives behind the API.
package session

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Record is one stored session
type Record struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte
	ExpiresAt int64 `gorm:"index"` // unix seconds, 0 = no expiry
}

func (Record) TableName() string { return "sessions" }

// Storage implements fiber.Storage on a sqlite table
type Storage struct {
	db *gorm.DB
}

// NewStorage opens (or creates) the session database
func NewStorage(path string) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Get returns the stored value, or nil when absent or expired
func (s *Storage) Get(key string) ([]byte, error) {
	var record Record
	err := s.db.Where("key = ?", key).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if record.ExpiresAt != 0 && record.ExpiresAt <= time.Now().Unix() {
		return nil, nil
	}
	return record.Value, nil
}

// Set stores a value with an optional expiry
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	record := Record{Key: key, Value: val}
	if exp > 0 {
		record.ExpiresAt = time.Now().Add(exp).Unix()
	}
	return s.db.Save(&record).Error
}

// Delete removes one session
func (s *Storage) Delete(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}

// Reset removes every session
func (s *Storage) Reset() error {
	return s.db.Where("1 = 1").Delete(&Record{}).Error
}

// Close closes the underlying database
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// PurgeExpired deletes sessions past their expiry
func (s *Storage) PurgeExpired() (int64, error) {
	result := s.db.Where("expires_at > 0 AND expires_at <= ?", time.Now().Unix()).Delete(&Record{})
	return result.RowsAffected, result.Error
}

// StartSweeper schedules an hourly purge of expired sessions
func (s *Storage) StartSweeper(c *cron.Cron) {
	c.AddFunc("@hourly", func() {
		purged, err := s.PurgeExpired()
		if err != nil {
			log.Printf("[SESSION-SWEEPER] purge failed: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("[SESSION-SWEEPER] purged %d expired sessions", purged)
		}
	})
	log.Println("[SESSION-SWEEPER] started - runs hourly")
}
