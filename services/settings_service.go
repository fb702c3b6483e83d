package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cabin-backoffice/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const settingsCacheKey = "settings:v1"
const settingsCacheTTL = 10 * time.Minute

// Columns an administrator may patch field-by-field. Maps the JSON field
// name the settings form submits to the DB column.
var settingsColumns = map[string]string{
	"minReservationLength":    "min_reservation_length",
	"maxReservationLength":    "max_reservation_length",
	"maxGuestsPerReservation": "max_guests_per_reservation",
	"breakfastPrice":          "breakfast_price",
}

// SettingsService owns the singleton settings row (fixed id). Reads go
// through an optional redis cache; updates patch one column and drop the
// cached copy.
type SettingsService struct {
	DB    *gorm.DB
	Cache *redis.Client // nil disables caching
	Log   zerolog.Logger
}

func NewSettingsService(db *gorm.DB, cache *redis.Client, log zerolog.Logger) *SettingsService {
	return &SettingsService{DB: db, Cache: cache, Log: log}
}

func (s *SettingsService) Get(ctx context.Context) (models.Setting, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, settingsCacheKey).Result(); err == nil {
			var cached models.Setting
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
		}
	}

	var setting models.Setting
	if err := s.DB.WithContext(ctx).First(&setting, models.SettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Setting{}, ErrNotFound
		}
		return models.Setting{}, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(setting); err == nil {
			if err := s.Cache.Set(ctx, settingsCacheKey, raw, settingsCacheTTL).Err(); err != nil {
				s.Log.Warn().Err(err).Msg("settings cache set failed")
			}
		}
	}

	return setting, nil
}

// UpdateField patches a single settings column. Unknown fields and
// non-positive values are validation failures; nothing is written.
func (s *SettingsService) UpdateField(ctx context.Context, field string, value float64) (models.Setting, error) {
	column, ok := settingsColumns[field]
	if !ok {
		return models.Setting{}, fieldError(field, "Unknown setting")
	}
	if value <= 0 {
		return models.Setting{}, fieldError(field, "Must be greater than 0")
	}

	res := s.DB.WithContext(ctx).Model(&models.Setting{}).
		Where("id = ?", models.SettingsID).
		Update(column, value)
	if res.Error != nil {
		return models.Setting{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Setting{}, ErrNotFound
	}

	if s.Cache != nil {
		if err := s.Cache.Del(ctx, settingsCacheKey).Err(); err != nil {
			s.Log.Warn().Err(err).Msg("settings cache invalidation failed")
		}
	}

	var setting models.Setting
	if err := s.DB.WithContext(ctx).First(&setting, models.SettingsID).Error; err != nil {
		return models.Setting{}, err
	}
	return setting, nil
}
