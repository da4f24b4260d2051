package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with this envelope, success and failure alike.

const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeNotFound        = "NOT_FOUND"
	CodeServerError     = "SERVER_ERROR"
)

// RequestIDKey is where the request-id middleware stores the id in the gin context.
const RequestIDKey = "request_id"

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
	Meta    Meta        `json:"meta"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Timestamp  time.Time   `json:"timestamp"`
	RequestID  string      `json:"requestId"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func meta(c *gin.Context) Meta {
	return Meta{
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString(RequestIDKey),
	}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: meta(c)})
}

func SuccessWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message, Meta: meta(c)})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Meta: meta(c)})
}

func Paginated(c *gin.Context, data interface{}, page, limit int, total int64) {
	m := meta(c)
	m.Pagination = &Pagination{Page: page, Limit: limit, Total: total}
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: m})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{Success: false, Error: &ErrorBody{Code: code, Message: message}, Meta: meta(c)})
}

func ValidationError(c *gin.Context, message string, details interface{}) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: CodeValidationError, Message: message, Details: details},
		Meta:    meta(c),
	})
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// ServerError hides the underlying error from the client; callers log the
// cause before returning it.
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeServerError, message)
}
