package service

import (
	"testing"

	"devfolio/database/model"
	"devfolio/web/entity"

	"github.com/stretchr/testify/assert"
)

func TestCVLazyCreationIsIdempotent(t *testing.T) {
	setupTestDB(t)

	svc := CVService{}

	first, err := svc.GetCV()
	assert.NoError(t, err)
	assert.NotZero(t, first.Id)
	assert.Empty(t, first.About)
	assert.NotNil(t, first.Skills)
	assert.Len(t, first.Skills, 0)

	second, err := svc.GetCV()
	assert.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
}

func TestCVUpdateInPlace(t *testing.T) {
	setupTestDB(t)

	svc := CVService{}

	created, err := svc.GetCV()
	assert.NoError(t, err)

	updated, err := svc.UpdateCV(&entity.CVPayload{
		About:      "about me",
		Experience: "ten years",
		Education:  "school",
		PhotoUrl:   "http://127.0.0.1:8000/media/photo.jpg",
		Skills: []model.Skill{
			{Name: "Go", Level: "expert"},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "about me", updated.About)
	assert.Len(t, updated.Skills, 1)
	assert.Equal(t, "Go", updated.Skills[0].Name)

	got, err := svc.GetCV()
	assert.NoError(t, err)
	assert.Equal(t, created.Id, got.Id)
	assert.Equal(t, "ten years", got.Experience)
}

func TestCVUpdateCreatesWhenAbsent(t *testing.T) {
	setupTestDB(t)

	svc := CVService{}

	updated, err := svc.UpdateCV(&entity.CVPayload{About: "fresh"})
	assert.NoError(t, err)
	assert.NotZero(t, updated.Id)
	assert.NotNil(t, updated.Skills)

	got, err := svc.GetCV()
	assert.NoError(t, err)
	assert.Equal(t, updated.Id, got.Id)
	assert.Equal(t, "fresh", got.About)
}
