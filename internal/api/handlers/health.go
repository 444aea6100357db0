package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ThemeProviderInfo is implemented by the theme resolver
type ThemeProviderInfo interface {
	ProviderName() string
	Model() string
}

type HealthHandler struct {
	themes ThemeProviderInfo
	cache  string
}

// NewHealthHandler creates a health handler; cache names the theme store in use
func NewHealthHandler(themes ThemeProviderInfo, cache string) *HealthHandler {
	return &HealthHandler{themes: themes, cache: cache}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	provider := h.themes.ProviderName()
	status := "enabled"
	if provider == "none" {
		status = "disabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"theme_provider": gin.H{
			"status": status,
			"name":   provider,
			"model":  h.themes.Model(),
			"cache":  h.cache,
		},
	})
}
