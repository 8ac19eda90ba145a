package service

import (
	"testing"

	"devfolio/database"
	"devfolio/web/entity"

	"github.com/stretchr/testify/assert"
)

func TestProjectCreateGetRoundTrip(t *testing.T) {
	setupTestDB(t)

	svc := ProjectService{}

	link := "https://github.com/example/demo"
	created, err := svc.AddProject(&entity.ProjectPayload{
		Title:       "Demo",
		Description: "A demo project",
		GithubLink:  &link,
		Images:      []string{"http://127.0.0.1:8000/media/a.png"},
		Tags:        []string{"go", "web"},
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.Id)

	got, err := svc.GetProject(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.GithubLink, got.GithubLink)
	assert.Equal(t, created.Images, got.Images)
	assert.Equal(t, created.Tags, got.Tags)
}

func TestProjectEmptyListsRoundTrip(t *testing.T) {
	setupTestDB(t)

	svc := ProjectService{}

	created, err := svc.AddProject(&entity.ProjectPayload{
		Title:       "Bare",
		Description: "No images, no tags",
	})
	assert.NoError(t, err)

	got, err := svc.GetProject(created.Id)
	assert.NoError(t, err)
	assert.NotNil(t, got.Images)
	assert.NotNil(t, got.Tags)
	assert.Len(t, got.Images, 0)
	assert.Len(t, got.Tags, 0)
	assert.Nil(t, got.GithubLink)
}

func TestProjectUpdateFullReplace(t *testing.T) {
	setupTestDB(t)

	svc := ProjectService{}

	link := "https://github.com/example/old"
	created, err := svc.AddProject(&entity.ProjectPayload{
		Title:       "Old",
		Description: "Old description",
		GithubLink:  &link,
		Images:      []string{"old.png"},
		Tags:        []string{"old"},
	})
	assert.NoError(t, err)

	// Omitted fields overwrite stored values with their defaults.
	updated, err := svc.UpdateProject(created.Id, &entity.ProjectPayload{
		Title:       "New",
		Description: "New description",
	})
	assert.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "New", updated.Title)
	assert.Nil(t, updated.GithubLink)
	assert.Len(t, updated.Images, 0)
	assert.Len(t, updated.Tags, 0)

	got, err := svc.GetProject(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Nil(t, got.GithubLink)
	assert.Len(t, got.Images, 0)
	assert.Len(t, got.Tags, 0)
}

func TestProjectUpdateMissing(t *testing.T) {
	setupTestDB(t)

	svc := ProjectService{}
	_, err := svc.UpdateProject(12345, &entity.ProjectPayload{
		Title:       "T",
		Description: "D",
	})
	assert.True(t, database.IsNotFound(err))
}

func TestProjectDeleteReturnsPriorState(t *testing.T) {
	setupTestDB(t)

	svc := ProjectService{}

	created, err := svc.AddProject(&entity.ProjectPayload{
		Title:       "Doomed",
		Description: "To be deleted",
	})
	assert.NoError(t, err)

	deleted, err := svc.DeleteProject(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, created.Id, deleted.Id)
	assert.Equal(t, "Doomed", deleted.Title)

	_, err = svc.GetProject(created.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestProjectDeleteMissingIsNoOp(t *testing.T) {
	setupTestDB(t)

	svc := ProjectService{}
	deleted, err := svc.DeleteProject(99999)
	assert.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestProjectListOrderAndPaging(t *testing.T) {
	setupTestDB(t)

	svc := ProjectService{}
	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.AddProject(&entity.ProjectPayload{
			Title:       title,
			Description: "d",
		})
		assert.NoError(t, err)
	}

	all, err := svc.GetProjects(0, 100)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "one", all[0].Title)
	assert.Equal(t, "three", all[2].Title)

	page, err := svc.GetProjects(1, 1)
	assert.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, "two", page[0].Title)
}
