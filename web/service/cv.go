package service

import (
	"devfolio/database"
	"devfolio/database/model"
	"devfolio/web/entity"
)

type CVService struct{}

// GetCV returns the CV singleton, creating an empty one on first read.
// Repeated calls always yield the same row.
func (s *CVService) GetCV() (*model.CV, error) {
	db := database.GetDB()

	cv := &model.CV{}
	err := db.Model(model.CV{}).Order("id").First(cv).Error
	if database.IsNotFound(err) {
		cv = &model.CV{Skills: model.SkillList{}}
		if err := db.Create(cv).Error; err != nil {
			return nil, err
		}
		return cv, nil
	} else if err != nil {
		return nil, err
	}
	return cv, nil
}

// UpdateCV replaces the singleton in place, creating it if absent. The
// row is never recreated, so its id stays stable.
func (s *CVService) UpdateCV(payload *entity.CVPayload) (*model.CV, error) {
	db := database.GetDB()

	cv := &model.CV{}
	err := db.Model(model.CV{}).Order("id").First(cv).Error
	if err != nil && !database.IsNotFound(err) {
		return nil, err
	}

	cv.About = payload.About
	cv.Experience = payload.Experience
	cv.Education = payload.Education
	cv.PhotoUrl = payload.PhotoUrl
	cv.Skills = model.SkillList(payload.Skills)
	if cv.Skills == nil {
		cv.Skills = model.SkillList{}
	}

	if err := db.Save(cv).Error; err != nil {
		return nil, err
	}
	return cv, nil
}
