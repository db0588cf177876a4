package main

import (
	"log/slog"
	"time"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

const databaseOpenTimeout = time.Second

type ServiceContainer struct {
	Database                *bbolt.DB
	TableRepository         contracts.TableRepository
	FormulaStore            contracts.FormulaStore
	FormulaEvaluator        contracts.FormulaEvaluator
	DependencyFinder        contracts.DependencyFinder
	WebhookDispatcher       contracts.WebhookDispatcher
	RecalculationController contracts.RecalculationController
	TableExporter           contracts.TableExporter
	ApiController           contracts.ApiController
	Router                  *gin.Engine
}

func BuildServiceContainer(config Config, logger *slog.Logger) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabasePath, 0600, &bbolt.Options{Timeout: databaseOpenTimeout})
	if err != nil {
		return
	}

	serializer := NewCellBinarySerializer()

	container.TableRepository = NewTableRepository(container.Database)
	container.FormulaStore = NewFormulaStore(container.Database, serializer)
	container.FormulaEvaluator = NewFormulaEvaluator()

	if config.DependencyFinder == ReferenceDependencyFinderName {
		container.DependencyFinder = NewReferenceDependencyFinder()
	} else {
		container.DependencyFinder = NewTextualDependencyFinder()
	}

	workersCount := config.WebhookWorkers
	if workersCount < 1 {
		workersCount = DefaultWebhookWorkersCount
	}
	container.WebhookDispatcher = NewWebhookDispatcher(workersCount, logger)

	container.RecalculationController = NewRecalculationController(
		container.TableRepository, container.FormulaStore,
		container.FormulaEvaluator, container.DependencyFinder,
		container.WebhookDispatcher.Notify, logger,
	)

	container.TableExporter = NewXlsxExporter()
	container.ApiController = NewApiController(
		container.TableRepository, container.FormulaStore,
		container.RecalculationController, container.WebhookDispatcher,
		container.TableExporter,
	)

	container.Router = SetupRouter(container.ApiController)

	return
}
