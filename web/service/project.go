package service

import (
	"devfolio/database"
	"devfolio/database/model"
	"devfolio/web/entity"
)

const maxPageSize = 100

type ProjectService struct{}

// GetProjects lists projects in id order with a bounded page size.
func (s *ProjectService) GetProjects(skip int, limit int) ([]*model.Project, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	db := database.GetDB()
	projects := make([]*model.Project, 0)
	err := db.Model(model.Project{}).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&projects).
		Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetProject(id int) (*model.Project, error) {
	db := database.GetDB()

	project := &model.Project{}
	err := db.Model(model.Project{}).
		Where("id = ?", id).
		First(project).
		Error
	if err != nil {
		return nil, err
	}
	return project, nil
}

// AddProject persists a new project and returns the stored record with
// its assigned id.
func (s *ProjectService) AddProject(payload *entity.ProjectPayload) (*model.Project, error) {
	db := database.GetDB()

	project := &model.Project{}
	applyProjectPayload(project, payload)
	if err := db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject replaces every field of the stored project with the
// payload. Returns gorm.ErrRecordNotFound if the id is absent.
func (s *ProjectService) UpdateProject(id int, payload *entity.ProjectPayload) (*model.Project, error) {
	db := database.GetDB()

	project := &model.Project{}
	err := db.Model(model.Project{}).
		Where("id = ?", id).
		First(project).
		Error
	if err != nil {
		return nil, err
	}

	applyProjectPayload(project, payload)
	if err := db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project and returns its prior state. Deleting
// an absent id is a no-op returning nil, not an error.
func (s *ProjectService) DeleteProject(id int) (*model.Project, error) {
	db := database.GetDB()

	project := &model.Project{}
	err := db.Model(model.Project{}).
		Where("id = ?", id).
		First(project).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if err := db.Delete(&model.Project{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// applyProjectPayload assigns each payload field explicitly; omitted
// transport fields arrive as zero values and overwrite stored ones.
func applyProjectPayload(project *model.Project, payload *entity.ProjectPayload) {
	project.Title = payload.Title
	project.Description = payload.Description
	project.GithubLink = payload.GithubLink
	project.Images = model.StringList(payload.Images)
	project.Tags = model.StringList(payload.Tags)
	if project.Images == nil {
		project.Images = model.StringList{}
	}
	if project.Tags == nil {
		project.Tags = model.StringList{}
	}
}
