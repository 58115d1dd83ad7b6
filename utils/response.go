package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse is the uniform envelope for all routes except the designated
// passthrough. Success carries code 0; errors carry the HTTP status as code.
type JSONResponse struct {
	Data    interface{} `json:"data"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
}

// Success wraps data in the standard success envelope.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, JSONResponse{
		Data:    data,
		Code:    0,
		Message: "请求成功",
		Status:  http.StatusOK,
	})
}

// Error writes an error envelope with the given HTTP status.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, JSONResponse{
		Code:    status,
		Message: message,
		Status:  status,
	})
}

// Fail maps a service error onto the error envelope. Unknown errors become an
// opaque 500; their detail is logged, never exposed.
func Fail(ctx *gin.Context, err error) {
	if apiErr, ok := AsAPIError(err); ok {
		Error(ctx, apiErr.Status, apiErr.Message)
		return
	}
	if Sugar != nil {
		Sugar.Errorf("internal error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	}
	Error(ctx, http.StatusInternalServerError, "服务器内部错误")
}
