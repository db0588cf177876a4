package main

import (
	"net/http"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/gin-gonic/gin"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"
const exportPath = "export"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)

	apiRouterGroup.POST("/tables", controller.CreateTableAction)
	apiRouterGroup.GET("/tables/:table_id", controller.GetTableAction)
	apiRouterGroup.POST("/tables/:table_id/columns", controller.AddColumnAction)
	apiRouterGroup.POST("/tables/:table_id/rows", controller.InsertRowAction)
	apiRouterGroup.DELETE("/tables/:table_id/rows/:row_id", controller.DeleteRowAction)
	apiRouterGroup.POST("/tables/:table_id/rows/:row_id/cells/:column_name", controller.SetCellAction)
	apiRouterGroup.GET("/tables/:table_id/formulas", controller.GetFormulasAction)
	apiRouterGroup.POST("/tables/:table_id/"+subscribePath, controller.SubscribeAction)
	apiRouterGroup.GET("/tables/:table_id/"+exportPath, controller.ExportAction)

	apiRouterGroup.POST("/formulas/evaluate", controller.EvaluateFormulaAction)
	apiRouterGroup.DELETE("/formulas/:formula_id", controller.DeleteFormulaAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
