package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type DeviceTokenRequest struct {
	UserID   string `json:"user_id"`
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

var deviceTokenRequestSchema = z.Struct(z.Shape{
	"UserID":   z.String().Required(),
	"Token":    z.String().Required(),
	"Platform": z.String().Optional(),
})

func (rs *RestfulServer) RegisterDeviceToken(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req DeviceTokenRequest
	if err := deviceTokenRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.Platform == "" {
		req.Platform = "expo"
	}

	count, err := rs.Core.Token.RegisterToken(req.UserID, req.Token, req.Platform)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register device token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Device token registered successfully",
		"token_count": count,
	})
}

func (rs *RestfulServer) GetDeviceTokens(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	userID := c.Param("user_id")

	tokens, err := rs.Core.Token.GetTokens(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load device tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"tokens":  tokens,
		"count":   len(tokens),
	})
}

type RemoveTokenRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

var removeTokenRequestSchema = z.Struct(z.Shape{
	"UserID": z.String().Required(),
	"Token":  z.String().Required(),
})

func (rs *RestfulServer) RemoveDeviceToken(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req RemoveTokenRequest
	if err := removeTokenRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	removed, err := rs.Core.Token.RemoveToken(req.UserID, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove device token"})
		return
	}

	if !removed {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Token not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Token removed"})
}
