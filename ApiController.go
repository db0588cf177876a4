package main

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/Halukc1974/erp-sub000/contracts"
	"github.com/gin-gonic/gin"
)

type ApiController struct {
	TableRepository         contracts.TableRepository
	FormulaStore            contracts.FormulaStore
	RecalculationController contracts.RecalculationController
	WebhookDispatcher       contracts.WebhookDispatcher
	TableExporter           contracts.TableExporter
}

type TableEndpointParams struct {
	TableId string `uri:"table_id" binding:"required"`
}

type RowEndpointParams struct {
	TableId string `uri:"table_id" binding:"required"`
	RowId   string `uri:"row_id" binding:"required"`
}

type CellEndpointParams struct {
	TableId    string `uri:"table_id" binding:"required"`
	RowId      string `uri:"row_id" binding:"required"`
	ColumnName string `uri:"column_name" binding:"required"`
}

type FormulaEndpointParams struct {
	FormulaId string `uri:"formula_id" binding:"required"`
}

type CreateTableRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddColumnRequest struct {
	Name         string             `json:"name" binding:"required"`
	Label        string             `json:"label"`
	DataType     contracts.DataType `json:"dataType"`
	SortPosition int                `json:"sortPosition"`
}

type InsertRowRequest struct {
	Data contracts.RowData `json:"rowData"`
}

type SetCellRequest struct {
	Value string `json:"value"`
}

type EvaluateFormulaRequest struct {
	TableId string `json:"table_id" binding:"required"`
	Formula string `json:"formula" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required,url"`
}

// ColumnView is a column with its current coordinate letter
type ColumnView struct {
	*contracts.Column
	Letter string `json:"letter"`
}

type TableView struct {
	Table    *contracts.Table     `json:"table"`
	Columns  []ColumnView         `json:"columns"`
	Rows     []*contracts.Row     `json:"rows"`
	Formulas []*contracts.Formula `json:"formulas"`
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func NewApiController(
	tableRepository contracts.TableRepository, formulaStore contracts.FormulaStore,
	recalculationController contracts.RecalculationController, webhookDispatcher contracts.WebhookDispatcher,
	tableExporter contracts.TableExporter,
) *ApiController {
	return &ApiController{
		TableRepository:         tableRepository,
		FormulaStore:            formulaStore,
		RecalculationController: recalculationController,
		WebhookDispatcher:       webhookDispatcher,
		TableExporter:           tableExporter,
	}
}

func (api *ApiController) CreateTableAction(c *gin.Context) {
	request := CreateTableRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	table, err := api.TableRepository.CreateTable(request.Name)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, table)
}

func (api *ApiController) GetTableAction(c *gin.Context) {
	params := TableEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	table, err := api.TableRepository.LoadTableData(params.TableId)
	var formulas []*contracts.Formula
	if err == nil {
		formulas, err = api.FormulaStore.GetTableFormulas(params.TableId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	response := TableView{
		Table:    table.Table,
		Columns:  make([]ColumnView, 0, len(table.Columns)),
		Rows:     table.Rows,
		Formulas: formulas,
	}
	for index, column := range table.Columns {
		response.Columns = append(response.Columns, ColumnView{Column: column, Letter: ColumnIndexToLetter(index)})
	}

	c.JSON(http.StatusOK, response)
}

func (api *ApiController) AddColumnAction(c *gin.Context) {
	params := TableEndpointParams{}
	request := AddColumnRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	column, err := api.TableRepository.AddColumn(params.TableId, contracts.Column{
		Name:         request.Name,
		Label:        request.Label,
		DataType:     request.DataType,
		SortPosition: request.SortPosition,
	})
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

func (api *ApiController) InsertRowAction(c *gin.Context) {
	params := TableEndpointParams{}
	request := InsertRowRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil && c.Request.ContentLength != 0 {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	row, err := api.TableRepository.InsertRow(params.TableId, request.Data)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, row)
}

// DeleteRowAction removes the row together with its formulas
func (api *ApiController) DeleteRowAction(c *gin.Context) {
	params := RowEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err := api.TableRepository.DeleteRow(params.TableId, params.RowId)
	if err == nil {
		err = api.FormulaStore.DeleteRowFormulas(params.RowId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	response, err := api.RecalculationController.EditCell(params.TableId, params.RowId, params.ColumnName, request.Value)

	if isNotFoundError(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "cell": response})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetFormulasAction(c *gin.Context) {
	params := TableEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	_, err := api.TableRepository.GetTable(params.TableId)
	var formulas []*contracts.Formula
	if err == nil {
		formulas, err = api.FormulaStore.GetTableFormulas(params.TableId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formulas)
}

func (api *ApiController) DeleteFormulaAction(c *gin.Context) {
	params := FormulaEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := api.FormulaStore.Delete(params.FormulaId); err != nil {
		api.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// EvaluateFormulaAction previews a formula result without storing it
func (api *ApiController) EvaluateFormulaAction(c *gin.Context) {
	request := EvaluateFormulaRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := api.RecalculationController.EvaluateFormula(request.TableId, request.Formula)

	switch {
	case isNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, contracts.EmptyFormulaError):
		c.JSON(http.StatusOK, gin.H{"formula": request.Formula, "result": PendingFormulaDisplayValue, "pending": true})
	case err != nil:
		c.JSON(http.StatusOK, gin.H{"formula": request.Formula, "result": result, "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"formula": request.Formula, "result": result})
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := TableEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if _, err = api.TableRepository.GetTable(params.TableId); err != nil {
		api.respondError(c, err)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.TableId, request.WebhookUrl)
	c.JSON(http.StatusCreated, gin.H{"tableId": params.TableId, "webhook_url": request.WebhookUrl})
}

func (api *ApiController) ExportAction(c *gin.Context) {
	params := TableEndpointParams{}
	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	table, err := api.TableRepository.LoadTableData(params.TableId)
	var formulas []*contracts.Formula
	if err == nil {
		formulas, err = api.FormulaStore.GetTableFormulas(params.TableId)
	}

	buffer := &bytes.Buffer{}
	if err == nil {
		err = api.TableExporter.Export(buffer, table, formulas)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+params.TableId+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	if isNotFoundError(err) {
		status = http.StatusNotFound
	} else if errors.Is(err, contracts.EmptyNameError) ||
		errors.Is(err, contracts.InvalidDataTypeError) ||
		errors.Is(err, contracts.ColumnExistsError) {
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func isNotFoundError(err error) bool {
	return errors.Is(err, contracts.TableNotFoundError) ||
		errors.Is(err, contracts.RowNotFoundError) ||
		errors.Is(err, contracts.ColumnNotFoundError) ||
		errors.Is(err, contracts.FormulaNotFoundError)
}
