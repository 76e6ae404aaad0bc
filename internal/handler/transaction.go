package handler

import (
	"errors"
	"strconv"

	"github.com/mohamedlefliti/projetennaciria/internal/form"
	"github.com/mohamedlefliti/projetennaciria/internal/grid"
	"github.com/mohamedlefliti/projetennaciria/internal/models"
	"github.com/mohamedlefliti/projetennaciria/internal/repository"
	"github.com/mohamedlefliti/projetennaciria/internal/util"

	"github.com/gin-gonic/gin"
)

// FormHandler exposes the transaction form over HTTP.
type FormHandler struct {
	Form *form.Controller
}

func NewFormHandler(ctl *form.Controller) *FormHandler {
	return &FormHandler{Form: ctl}
}

// ---------- request / response ----------

type fieldsReq struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

func (r fieldsReq) fields() form.Fields {
	return form.Fields{
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
		Category:    r.Category,
	}
}

type gridResp struct {
	Columns  []string             `json:"columns"`
	Rows     []models.Transaction `json:"rows"`
	Selected *int                 `json:"selected"`
	Fields   form.Fields          `json:"fields"`
}

func toGridResp(s form.Snapshot) gridResp {
	rows := s.Rows
	if rows == nil {
		rows = []models.Transaction{}
	}
	resp := gridResp{
		Columns: models.Columns,
		Rows:    rows,
		Fields:  s.Fields,
	}
	if s.Selected != grid.NoSelection {
		sel := s.Selected
		resp.Selected = &sel
	}
	return resp
}

// fail writes err with the business code that matches its kind.
func fail(c *gin.Context, err error) {
	var exportErr *form.ExportError
	switch {
	case errors.Is(err, form.ErrMissingFields), errors.Is(err, form.ErrInvalidAmount):
		util.Fail(c, util.CodeInvalidParam, err.Error())
	case errors.Is(err, grid.ErrOutOfRange):
		util.Fail(c, util.CodeInvalidParam, "no such row")
	case errors.Is(err, form.ErrNoSelection):
		util.Fail(c, util.CodeNoSelection, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		util.Fail(c, util.CodeNotFound, err.Error())
	case errors.As(err, &exportErr):
		util.Fail(c, util.CodeExportErr, err.Error())
	default:
		util.Fail(c, util.CodeServerErr, err.Error())
	}
}

// bindFields reads the optional JSON body. has is false when the request
// carries no body, in which case the form keeps its current fields.
func bindFields(c *gin.Context) (f form.Fields, has bool, ok bool) {
	if c.Request.ContentLength == 0 {
		return form.Fields{}, false, true
	}
	var req fieldsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, util.CodeInvalidParam, "invalid request body")
		return form.Fields{}, false, false
	}
	return req.fields(), true, true
}

// ---------- grid ----------

// ListTransactions returns the grid. With ?reload=true the grid is first
// rebuilt from the store, which drops the selection.
func (h *FormHandler) ListTransactions(c *gin.Context) {
	if reload, _ := strconv.ParseBool(c.Query("reload")); reload {
		if err := h.Form.Reload(c.Request.Context()); err != nil {
			fail(c, err)
			return
		}
	}
	util.Success(c, util.Response{
		"grid": toGridResp(h.Form.Snapshot()),
	})
}

// ---------- actions ----------

func (h *FormHandler) AddTransaction(c *gin.Context) {
	fields, has, ok := bindFields(c)
	if !ok {
		return
	}
	var err error
	if has {
		err = h.Form.AddFields(c.Request.Context(), fields)
	} else {
		err = h.Form.Add(c.Request.Context())
	}
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"message": form.MsgAdded,
		"grid":    toGridResp(h.Form.Snapshot()),
	})
}

func (h *FormHandler) UpdateSelected(c *gin.Context) {
	fields, has, ok := bindFields(c)
	if !ok {
		return
	}
	var err error
	if has {
		err = h.Form.UpdateFields(c.Request.Context(), fields)
	} else {
		err = h.Form.Update(c.Request.Context())
	}
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"message": form.MsgUpdated,
		"grid":    toGridResp(h.Form.Snapshot()),
	})
}

// DeleteSelected deletes the selected row when ?confirm=true is given.
func (h *FormHandler) DeleteSelected(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))
	confirm := form.Declined
	if confirmed {
		confirm = form.Confirmed
	}

	err := h.Form.Delete(c.Request.Context(), confirm)
	if errors.Is(err, form.ErrCancelled) {
		util.Success(c, util.Response{
			"message":   err.Error(),
			"cancelled": true,
		})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"message": form.MsgDeleted,
		"grid":    toGridResp(h.Form.Snapshot()),
	})
}

func (h *FormHandler) SelectRow(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		util.Fail(c, util.CodeInvalidParam, "row index must be a number")
		return
	}
	fields, err := h.Form.Select(idx)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"selected": idx,
		"fields":   fields,
	})
}

func (h *FormHandler) Unselect(c *gin.Context) {
	h.Form.Unselect()
	util.Success(c, util.Response{
		"grid": toGridResp(h.Form.Snapshot()),
	})
}

// ---------- fields ----------

func (h *FormHandler) SetFields(c *gin.Context) {
	var req fieldsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, util.CodeInvalidParam, "invalid request body")
		return
	}
	h.Form.SetFields(req.fields())
	util.Success(c, util.Response{
		"fields": h.Form.Fields(),
	})
}

func (h *FormHandler) ClearFields(c *gin.Context) {
	h.Form.Clear()
	util.Success(c, util.Response{
		"message": form.MsgCleared,
		"fields":  h.Form.Fields(),
	})
}
