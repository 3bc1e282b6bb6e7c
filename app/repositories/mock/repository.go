package mock

import (
	"sort"
	"sync"

	"faredash/app/models"
	"faredash/app/repositories"
)

// DatasetRepository is an in-memory repositories.DatasetRepository.
type DatasetRepository struct {
	datasets map[string]*models.Dataset
	mutex    sync.RWMutex

	Gets  int
	Saves int
	// SaveErr, when set, is returned by Save.
	SaveErr error
	// GetErrs are returned by successive Gets; a nil entry reads normally.
	GetErrs []error
}

func NewDatasetRepository() *DatasetRepository {
	return &DatasetRepository{
		datasets: make(map[string]*models.Dataset),
	}
}

func (m *DatasetRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.datasets = make(map[string]*models.Dataset)
}

func (m *DatasetRepository) Get(key string) (*models.Dataset, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.Gets++
	if len(m.GetErrs) > 0 {
		err := m.GetErrs[0]
		m.GetErrs = m.GetErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	d, exists := m.datasets[key]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	cp := *d
	cp.Records = append([]models.CommentRecord(nil), d.Records...)
	return &cp, nil
}

func (m *DatasetRepository) Save(dataset *models.Dataset) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if err := dataset.Validate(); err != nil {
		return err
	}
	cp := *dataset
	cp.Records = append([]models.CommentRecord(nil), dataset.Records...)
	m.datasets[dataset.Key] = &cp
	return nil
}

func (m *DatasetRepository) Delete(key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.datasets[key]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.datasets, key)
	return nil
}

func (m *DatasetRepository) Keys() ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	keys := make([]string, 0, len(m.datasets))
	for k := range m.datasets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
