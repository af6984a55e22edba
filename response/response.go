package response

import (
	"net/http"

	apperrors "campusrent/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data,omitempty"`
	Total *int        `json:"total,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, Response{
		Code:  1,
		Mess:  "Success",
		Data:  data,
		Total: &total,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Unauthorized",
	})
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// degradedResponse always carries data so clients get the empty shape back.
type degradedResponse struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data"`
}

// Degraded answers 503 but still hands back an empty payload the client can render.
func Degraded(c *gin.Context, message string, empty interface{}) {
	c.JSON(http.StatusServiceUnavailable, degradedResponse{
		Code: 0,
		Mess: message,
		Data: empty,
	})
}

// FromError picks the status for an error by its kind. `empty` is sent with
// transient failures.
func FromError(c *gin.Context, err error, empty interface{}) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	switch {
	case apperrors.IsValidation(err):
		BadRequest(c, appErr.Message)
	case apperrors.IsNotFound(err):
		NotFound(c, appErr.Message)
	case apperrors.IsInvalidOperation(err):
		Conflict(c, appErr.Message)
	case apperrors.IsTransient(err):
		Degraded(c, "Temporarily unavailable, please retry", empty)
	case appErr.Code == apperrors.ErrCodeUnauthorized,
		appErr.Code == apperrors.ErrCodeInvalidToken,
		appErr.Code == apperrors.ErrCodeMissingToken:
		Unauthorized(c)
	default:
		ServerError(c)
	}
}
