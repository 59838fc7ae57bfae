package public

import (
	"github.com/gin-gonic/gin"
)

// optionalUserID 读取可选鉴权注入的用户 ID，匿名时返回 0。
func optionalUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}
