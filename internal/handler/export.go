package handler

import (
	"fmt"
	"time"

	"github.com/mohamedlefliti/projetennaciria/internal/export"
	"github.com/mohamedlefliti/projetennaciria/internal/form"
	"github.com/mohamedlefliti/projetennaciria/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Form  *form.Controller
	Store export.Lister
	Sheet string
}

func NewExportHandler(ctl *form.Controller, store export.Lister, sheet string) *ExportHandler {
	return &ExportHandler{
		Form:  ctl,
		Store: store,
		Sheet: sheet,
	}
}

// ExportFile writes the workbook to the configured path on the server side.
func (h *ExportHandler) ExportFile(c *gin.Context) {
	path, err := h.Form.Export(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"message": form.MsgExported(path),
		"path":    path,
	})
}

// ExportCSV downloads all transactions as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, err := h.Store.ListAll(c.Request.Context())
	if err != nil {
		fail(c, &form.ExportError{Err: err})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet programs detect the encoding
	_, _ = c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})
	if err := export.WriteCSV(c.Writer, rows); err != nil {
		_ = c.Error(err)
	}
}

// ExportXLSX downloads all transactions as an xlsx workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	rows, err := h.Store.ListAll(c.Request.Context())
	if err != nil {
		fail(c, &form.ExportError{Err: err})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := export.WriteXLSX(c.Writer, h.Sheet, rows); err != nil {
		fail(c, &form.ExportError{Err: err})
	}
}
