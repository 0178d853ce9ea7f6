package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	healthBody = "OK"
	bannerBody = "EasyCRUD Backend is running!"
)

// Health handles GET /health. It does not look at the store.
func Health(c *gin.Context) {
	c.String(http.StatusOK, healthBody)
}

// Root handles GET /
func Root(c *gin.Context) {
	c.String(http.StatusOK, bannerBody)
}
