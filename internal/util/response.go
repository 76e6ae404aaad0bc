package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data payload of a successful reply.
type Response map[string]interface{}

// Business error codes.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeNotFound     = 40401
	CodeNoSelection  = 40901
	CodeServerErr    = 50001
	CodeExportErr    = 50002
)

// Success writes {"code":0,"data":...}.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// StatusOf returns the HTTP status that carries a business code.
func StatusOf(code int) int {
	switch code {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNoSelection:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes {"code":N,"message":...} with the status StatusOf(code).
func Fail(c *gin.Context, code int, msg string) {
	Error(c, StatusOf(code), code, msg)
}

// Error writes {"code":N,"message":...}.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
