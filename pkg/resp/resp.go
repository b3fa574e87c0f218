// Package resp writes the API's response envelope: successes carry
// success/data (lists add count), failures carry success/message.
package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/info-graph/info-graph-task/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func List(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Deleted(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
}

// Error maps the service error taxonomy onto HTTP. failMsg is the
// operation-specific message used when the failure is not the caller's
// fault, e.g. "Failed to create menu item.".
func Error(c *gin.Context, err error, failMsg string) {
	switch {
	case apperr.IsNotFound(err):
		NotFound(c, err.Error())
	case apperr.IsValidation(err):
		BadRequest(c, err.Error())
	case apperr.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": failMsg,
			"error":   err.Error(),
		})
	}
}
