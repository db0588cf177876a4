package main

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	config := Config{
		DatabasePath:     f.Name(),
		WebhookWorkers:   3,
		LogLevel:         DefaultLogLevel,
		DependencyFinder: TextualDependencyFinderName,
	}

	serviceContainer, err := BuildServiceContainer(config, _discardLogger())

	assert.NoError(t, err)

	// check database
	assert.NotNil(t, serviceContainer.Database)
	assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)
	defer serviceContainer.Database.Close()

	// check storage
	assert.IsType(t, &TableRepository{}, serviceContainer.TableRepository)
	assert.Equal(t, serviceContainer.Database, serviceContainer.TableRepository.(*TableRepository).db)

	assert.IsType(t, &FormulaStore{}, serviceContainer.FormulaStore)
	formulaStore := serviceContainer.FormulaStore.(*FormulaStore)
	assert.Equal(t, serviceContainer.Database, formulaStore.db)
	assert.IsType(t, &CellBinarySerializer{}, formulaStore.serializer)

	// check evaluation
	assert.IsType(t, &FormulaEvaluator{}, serviceContainer.FormulaEvaluator)
	assert.IsType(t, &TextualDependencyFinder{}, serviceContainer.DependencyFinder)

	// check webhook dispatcher
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)
	assert.Equal(t, 3, serviceContainer.WebhookDispatcher.(*WebhookDispatcher).workersCount)

	// check recalculation controller
	assert.IsType(t, &RecalculationController{}, serviceContainer.RecalculationController)
	recalculationController := serviceContainer.RecalculationController.(*RecalculationController)
	assert.Equal(t, serviceContainer.TableRepository, recalculationController.tables)
	assert.Equal(t, serviceContainer.FormulaStore, recalculationController.formulas)
	assert.Equal(t, serviceContainer.FormulaEvaluator, recalculationController.evaluator)
	assert.Equal(t, serviceContainer.DependencyFinder, recalculationController.finder)
	assert.NotNil(t, recalculationController.onCellRecalculated)

	// check api controller
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)
	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.TableRepository, apiController.TableRepository)
	assert.Equal(t, serviceContainer.FormulaStore, apiController.FormulaStore)
	assert.Equal(t, serviceContainer.RecalculationController, apiController.RecalculationController)
	assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)
	assert.IsType(t, &XlsxExporter{}, apiController.TableExporter)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	// 11 api routes + health check
	assert.Len(t, serviceContainer.Router.Routes(), 12)
}

func TestBuildServiceContainer_ReferenceFinder(t *testing.T) {
	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	serviceContainer, err := BuildServiceContainer(Config{
		DatabasePath:     f.Name(),
		DependencyFinder: ReferenceDependencyFinderName,
	}, _discardLogger())

	assert.NoError(t, err)
	defer serviceContainer.Database.Close()

	assert.IsType(t, &ReferenceDependencyFinder{}, serviceContainer.DependencyFinder)
	assert.Equal(t, DefaultWebhookWorkersCount, serviceContainer.WebhookDispatcher.(*WebhookDispatcher).workersCount)
}

func TestBuildServiceContainer_DatabaseError(t *testing.T) {
	_, err := BuildServiceContainer(Config{DatabasePath: "/not-exists/dir/db.db"}, _discardLogger())

	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
