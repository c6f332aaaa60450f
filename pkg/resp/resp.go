package resp

import (
	"log"
	"net/http"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "code": apperr.CodeValidation, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "code": apperr.CodeUnauthorized, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "code": apperr.CodeForbidden, "error": msg})
}

// Error maps an apperr code onto an HTTP status. Anything without a code
// is a store failure: log the cause, answer with a fixed message.
func Error(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		switch e.Code {
		case apperr.CodeValidation:
			c.JSON(http.StatusBadRequest, body(e))
		case apperr.CodeNotFound:
			c.JSON(http.StatusNotFound, body(e))
		case apperr.CodeUnauthorized:
			c.JSON(http.StatusUnauthorized, body(e))
		case apperr.CodeForbidden:
			c.JSON(http.StatusForbidden, body(e))
		case apperr.CodeConflict, apperr.CodeEmptyCart:
			c.JSON(http.StatusConflict, body(e))
		default:
			log.Printf("request failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "code": e.Code, "error": e.Message})
		}
		return
	}
	log.Printf("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "code": apperr.CodeTxFailed, "error": "operation failed"})
}

func body(e *apperr.Error) gin.H {
	return gin.H{"ok": false, "code": e.Code, "error": e.Message}
}
