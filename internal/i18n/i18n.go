package i18n

import (
	"fmt"
	"strings"

	"github.com/wellkart/wellkart/internal/constants"

	"github.com/gin-gonic/gin"
)

// ResolveLocale 解析请求语言（优先级：query > Header > 默认）
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleEnUS
	}
	if q := strings.TrimSpace(c.Query("locale")); q != "" {
		if normalized, ok := normalizeLocale(q); ok {
			return normalized
		}
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		if normalized, ok := normalizeLocale(tag); ok {
			return normalized
		}
	}
	return constants.LocaleEnUS
}

func normalizeLocale(tag string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(tag))
	for _, supported := range constants.SupportedLocales {
		if lower == strings.ToLower(supported) {
			return supported, true
		}
	}
	// 仅语言前缀匹配（如 en-GB -> en-US）
	prefix := strings.SplitN(lower, "-", 2)[0]
	for _, supported := range constants.SupportedLocales {
		if prefix == strings.SplitN(strings.ToLower(supported), "-", 2)[0] {
			return supported, true
		}
	}
	return "", false
}

// T 返回指定语言的消息文案，未命中时回退到英文，再回退到 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.LocaleEnUS][key]; ok {
		return msg
	}
	return key
}

// Sprintf 返回带参数插值的消息文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
