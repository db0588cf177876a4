package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	CreateTableAction(c *gin.Context)
	GetTableAction(c *gin.Context)
	AddColumnAction(c *gin.Context)
	InsertRowAction(c *gin.Context)
	DeleteRowAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	GetFormulasAction(c *gin.Context)
	DeleteFormulaAction(c *gin.Context)
	EvaluateFormulaAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
	ExportAction(c *gin.Context)
}
