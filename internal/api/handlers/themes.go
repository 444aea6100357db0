package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/rug-loom/internal/logger"
	"github.com/Conceptual-Machines/rug-loom/internal/models"
	"github.com/Conceptual-Machines/rug-loom/internal/theme"
	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themes ThemeResolver
}

func NewThemeHandler(themes ThemeResolver) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

type ThemeResponse struct {
	Theme theme.Theme `json:"theme"`
	// Published is false when a newer request for the same key superseded this one
	Published bool `json:"published"`
	Stale     bool `json:"stale"`
}

// Resolve handles POST /api/v1/themes. A bad model answer still yields 200 with the fallback theme.
func (h *ThemeHandler) Resolve(c *gin.Context) {
	var req models.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Set(ctxKeyRugStyle, req.Style)

	if req.Key == "" {
		t := h.themes.Resolve(c.Request.Context(), req.Style)
		c.JSON(http.StatusOK, ThemeResponse{Theme: t, Published: true})
		return
	}

	t, published := h.themes.ResolveLatest(c.Request.Context(), req.Key, req.Style)
	if !published {
		logger.Info("Theme superseded by a newer request", logger.WithContext(c))
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: t, Published: published, Stale: !published})
}

// Latest handles GET /api/v1/themes/:key
func (h *ThemeHandler) Latest(c *gin.Context) {
	t, ok := h.themes.Latest(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no theme published for key"})
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: t, Published: true})
}
