package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealoong/blogserver/models"
	"github.com/sealoong/blogserver/services"
	"github.com/sealoong/blogserver/utils"
)

func TestTagCreateAndList(t *testing.T) {
	repo := newFakeTagRepo()
	svc := services.NewTagService(repo)

	first, err := svc.Create(models.CreateTagRequest{Title: "Go", Color: "#00ADD8"})
	require.NoError(t, err)
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, models.StateActive, first.State)

	second, err := svc.Create(models.CreateTagRequest{Title: "Go", Color: "#FFFFFF"})
	require.NoError(t, err)
	// titles are not unique
	assert.Equal(t, first.Title, second.Title)
	assert.NotEqual(t, first.ID, second.ID)

	tags, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	// newest first
	assert.Equal(t, second.ID, tags[0].ID)
	assert.Equal(t, first.ID, tags[1].ID)
}

func TestTagDeleteTwiceFailsSecondCall(t *testing.T) {
	repo := newFakeTagRepo()
	svc := services.NewTagService(repo)

	created, err := svc.Create(models.CreateTagRequest{Title: "old", Color: "#000"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1))
	assert.Equal(t, models.StateDeleted, repo.tags[1].State)

	// idempotent state, non-idempotent call
	err = svc.Delete(1)
	apiErr, ok := utils.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, models.StateDeleted, repo.tags[1].State)

	// deleted tags are invisible to reads
	tags, err := svc.List()
	require.NoError(t, err)
	for _, tag := range tags {
		assert.NotEqual(t, created.ID, tag.ID)
	}
	assert.Empty(t, tags)

	err = svc.Delete(42)
	_, ok = utils.AsAPIError(err)
	require.True(t, ok)
}
