package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError maps a typed AppError onto its transport status. Anything
// else is logged and answered with a generic 500 so internal detail never
// leaks to the caller.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(HTTPStatus(appErr), JSONResponse{
			Status:  false,
			Message: appErr.Message,
			Data:    gin.H{"kind": appErr.Kind},
		})
		return
	}

	if ErrorLogger != nil {
		ErrorLogger.Printf("unexpected error on %s %s: %v",
			c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(500, JSONResponse{
		Status:  false,
		Message: "internal server error",
	})
}
