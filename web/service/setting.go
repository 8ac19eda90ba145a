// Package service holds the business logic of the devfolio backend,
// operating on the shared database handle.
package service

import (
	"devfolio/config"
	"devfolio/database"
	"devfolio/database/model"
	"devfolio/util/random"
)

const secretSettingKey = "secret"

type SettingService struct{}

// GetSecret returns the token signing secret. The JWT_SECRET environment
// variable wins; otherwise a generated secret is stored in the settings
// table once and reused across restarts.
func (s *SettingService) GetSecret() (string, error) {
	if env := config.GetTokenSecret(); env != "" {
		return env, nil
	}

	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).
		Where("key = ?", secretSettingKey).
		First(setting).
		Error
	if database.IsNotFound(err) {
		setting = &model.Setting{
			Key:   secretSettingKey,
			Value: random.Seq(32),
		}
		if err := db.Create(setting).Error; err != nil {
			return "", err
		}
		return setting.Value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}
