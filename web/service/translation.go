package service

import (
	"devfolio/database"
	"devfolio/database/model"

	"gorm.io/gorm"
)

type TranslationService struct{}

// GetTranslations returns every translation row across all languages.
func (s *TranslationService) GetTranslations() ([]*model.Translation, error) {
	db := database.GetDB()

	translations := make([]*model.Translation, 0)
	err := db.Model(model.Translation{}).
		Order("id").
		Find(&translations).
		Error
	if err != nil {
		return nil, err
	}
	return translations, nil
}

// UpsertTranslations updates or inserts every key of one language inside
// a single transaction; the batch commits or fails as a whole.
func (s *TranslationService) UpsertTranslations(language string, translations map[string]string) error {
	db := database.GetDB()

	return db.Transaction(func(tx *gorm.DB) error {
		existing := make([]*model.Translation, 0)
		err := tx.Model(model.Translation{}).
			Where("language = ?", language).
			Find(&existing).
			Error
		if err != nil {
			return err
		}

		existingByKey := make(map[string]*model.Translation, len(existing))
		for _, t := range existing {
			existingByKey[t.Key] = t
		}

		for key, value := range translations {
			if row, ok := existingByKey[key]; ok {
				row.Value = value
				if err := tx.Save(row).Error; err != nil {
					return err
				}
				continue
			}
			row := &model.Translation{
				Language: language,
				Key:      key,
				Value:    value,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
