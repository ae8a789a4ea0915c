package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/models"
)

// ErrNotFound is returned when no equipment record matches the given name.
var ErrNotFound = errors.New("equipment not found")

type StoreConfig struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// Store is the equipment catalog. Lookups are exact byte-equality on the
// name column: "RED DSMC 2" and "RED DSMC2" are different records. The seed
// data and the sample emails disagree on that exact spelling, and the store
// deliberately does not paper over it with normalization.
type Store struct {
	db *gorm.DB
}

func NewWithConfig(config StoreConfig) (*Store, error) {
	if config.Driver == "" {
		config.Driver = "sqlite"
	}
	if config.DSN == "" && config.Driver == "sqlite" {
		config.DSN = "film_equipment_rental.db"
	}

	var dialector gorm.Dialector
	switch config.Driver {
	case "sqlite":
		dialector = sqlite.Open(config.DSN)
	case "postgres":
		dialector = postgres.Open(config.DSN)
	default:
		return nil, fmt.Errorf("unsupported catalog driver: %s", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	if err := db.AutoMigrate(&models.Equipment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate equipment table: %w", err)
	}

	return &Store{db: db}, nil
}

// NewWithDB wraps an already-open connection. Used by tests.
func NewWithDB(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.Equipment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate equipment table: %w", err)
	}
	return &Store{db: db}, nil
}

// FindByName looks up a record by exact name match.
func (s *Store) FindByName(ctx context.Context, name string) (*models.Equipment, error) {
	var equipment models.Equipment
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&equipment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}
	return &equipment, nil
}

// Seed inserts each item whose name is not already present. Running it
// repeatedly leaves exactly one record per name.
func (s *Store) Seed(ctx context.Context, items []models.Equipment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var existing models.Equipment
			err := tx.Where("name = ?", item.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check for %q: %w", item.Name, err)
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to insert %q: %w", item.Name, err)
			}
		}
		return nil
	})
}

// SampleEquipment is the seed inventory for the demo harness.
func SampleEquipment() []models.Equipment {
	return []models.Equipment{
		{Name: "RED DSMC 2", Category: "Cameras", Price: 850.00, Available: true},
		{Name: "Canon EF 24-70mm", Category: "Lenses", Price: 50.00, Available: true},
		{Name: "DJI Ronin-S", Category: "Stabilizers", Price: 75.00, Available: false},
		{Name: "ARRI SkyPanel S60-C", Category: "Lighting", Price: 200.00, Available: true},
	}
}
