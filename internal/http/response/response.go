package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应信封，HTTP 层始终返回 200。
type Response struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
}

// Pagination 分页元信息。
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// PageResponse 列表数据与分页元信息的组合体。
type PageResponse struct {
	List       interface{} `json:"list"`
	Pagination Pagination  `json:"pagination"`
}

func emit(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: code,
		Msg:        msg,
		Data:       data,
	})
}

// Success 返回成功信封。
func Success(c *gin.Context, data interface{}) {
	emit(c, CodeOK, "success", data)
}

// SuccessWithMsg 返回带自定义消息的成功信封。
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	emit(c, CodeOK, msg, data)
}

// SuccessWithPage 返回列表数据及分页信息。
func SuccessWithPage(c *gin.Context, list interface{}, pagination Pagination) {
	emit(c, CodeOK, "success", PageResponse{
		List:       list,
		Pagination: pagination,
	})
}

// requestID 读取中间件注入的链路标识，缺失时返回空串。
func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get("request_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// withRequestID 把 request_id 并入错误响应的 data，便于排障时对齐日志。
func withRequestID(c *gin.Context, data interface{}) interface{} {
	id := requestID(c)
	if id == "" {
		return data
	}
	switch d := data.(type) {
	case nil:
		return gin.H{"request_id": id}
	case gin.H:
		if _, exists := d["request_id"]; !exists {
			d["request_id"] = id
		}
		return d
	case map[string]interface{}:
		if _, exists := d["request_id"]; !exists {
			d["request_id"] = id
		}
		return d
	default:
		return gin.H{"request_id": id, "detail": data}
	}
}

// Error 返回错误信封。
func Error(c *gin.Context, code int, msg string) {
	emit(c, code, msg, withRequestID(c, nil))
}

// ErrorWithData 返回携带附加数据的错误信封。
func ErrorWithData(c *gin.Context, code int, msg string, data interface{}) {
	emit(c, code, msg, withRequestID(c, data))
}

// BadRequest 参数错误。
func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}

// Unauthorized 未认证。
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

// Forbidden 无权限。
func Forbidden(c *gin.Context, msg string) {
	Error(c, CodeForbidden, msg)
}

// NotFound 资源不存在。
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}
