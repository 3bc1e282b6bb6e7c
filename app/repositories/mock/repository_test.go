package mock

import (
	"errors"
	"testing"
	"time"

	"faredash/app/models"
	"faredash/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repositories.DatasetRepository = (*DatasetRepository)(nil)

func TestMockDatasetRepository(t *testing.T) {
	repo := NewDatasetRepository()
	dataset := &models.Dataset{
		Key:         "k",
		GeneratedAt: time.Now(),
		Records:     []models.CommentRecord{models.NewCommentRecord(time.Now(), "text")},
	}

	_, err := repo.Get("k")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.NoError(t, repo.Save(dataset))
	got, err := repo.Get("k")
	require.NoError(t, err)
	assert.Equal(t, dataset.Comments(), got.Comments())

	got.Records[0].Comment = "mutated"
	again, err := repo.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "text", again.Records[0].Comment)

	keys, err := repo.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
	assert.Equal(t, 3, repo.Gets)
	assert.Equal(t, 1, repo.Saves)

	repo.SaveErr = errors.New("disk full")
	assert.Error(t, repo.Save(dataset))

	require.NoError(t, repo.Delete("k"))
	assert.ErrorIs(t, repo.Delete("k"), repositories.ErrNotFound)
}
