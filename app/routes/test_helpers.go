package routes

import (
	"testing"

	"faredash/app/controllers"
	"faredash/app/generator"
	"faredash/app/logging"
	"faredash/app/metrics"
	"faredash/app/repositories"
	"faredash/app/services"
	"faredash/app/views"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T, db *badger.DB) (*mux.Router, *metrics.Metrics) {
	t.Helper()
	gen, err := generator.New(generator.Options{Seed: 99})
	require.NoError(t, err)

	m := metrics.New("faredash_test")
	service := services.NewDashboardService(repositories.NewBadgerDatasetRepository(db), gen, nil).
		WithMetrics(m).
		WithLogger(logging.Discard())
	presenter, err := views.NewHTMLPresenter()
	require.NoError(t, err)

	return SetupRoutes(controllers.NewDashboardController(service, presenter), m), m
}
