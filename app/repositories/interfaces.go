package repositories

import "faredash/app/models"

// DatasetRepository stores generated datasets by key
type DatasetRepository interface {
	Get(key string) (*models.Dataset, error)
	Save(dataset *models.Dataset) error
	Delete(key string) error
	Keys() ([]string, error)
}
