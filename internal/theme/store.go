package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Conceptual-Machines/rug-loom/internal/logger"
	"github.com/Conceptual-Machines/rug-loom/internal/models"
	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store caches AI-sourced themes by normalised style description
type Store interface {
	Get(ctx context.Context, key string) (Theme, bool, error)
	Put(ctx context.Context, key string, t Theme, provider, model string) error
}

// MemoryStore keeps themes for the life of the process
type MemoryStore struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{themes: make(map[string]Theme)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Theme, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.themes[key]
	return t, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, t Theme, _, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[key] = t
	return nil
}

// Len returns the number of cached themes
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.themes)
}

// GormStore keeps themes in the rug_themes table
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) (Theme, bool, error) {
	var record models.ThemeRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Theme{}, false, nil
	}
	if err != nil {
		return Theme{}, false, fmt.Errorf("failed to load theme: %w", err)
	}

	// A lost hit count never fails the lookup
	if err := s.db.WithContext(ctx).Model(&record).UpdateColumn("hit_count", gorm.Expr("hit_count + 1")).Error; err != nil {
		logger.Warn("Theme cache hit count update failed", logger.Fields{"key": key, "error": err.Error()})
	}
	return recordToTheme(record), true, nil
}

func (s *GormStore) Put(ctx context.Context, key string, t Theme, provider, model string) error {
	record := themeToRecord(key, t, provider, model)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "border", "inner_border", "field", "medallion", "accent",
			"provider", "model", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

func themeToRecord(key string, t Theme, provider, model string) models.ThemeRecord {
	return models.ThemeRecord{
		Key:         key,
		Name:        t.Name,
		Description: t.Description,
		Border:      t.Characters.Border,
		InnerBorder: t.Characters.InnerBorder,
		Field:       t.Characters.Field,
		Medallion:   t.Characters.Medallion,
		Accent:      t.Characters.Accent,
		Provider:    provider,
		Model:       model,
	}
}

func recordToTheme(r models.ThemeRecord) Theme {
	return Theme{
		Name:        r.Name,
		Description: r.Description,
		Characters: rug.CharacterSet{
			Border:      r.Border,
			InnerBorder: r.InnerBorder,
			Field:       r.Field,
			Medallion:   r.Medallion,
			Accent:      r.Accent,
		},
		Source: SourceAI,
	}
}
