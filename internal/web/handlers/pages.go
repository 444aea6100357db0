package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/rug-loom/internal/logger"
	"github.com/Conceptual-Machines/rug-loom/internal/render"
	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/Conceptual-Machines/rug-loom/internal/theme"
	"github.com/gin-gonic/gin"
)

// LatestThemes looks up the theme last published for a client key
type LatestThemes interface {
	Latest(key string) (theme.Theme, bool)
}

type WebHandler struct {
	themes LatestThemes
}

func NewWebHandler(themes LatestThemes) *WebHandler {
	return &WebHandler{themes: themes}
}

// Home renders a rug straight into the browser. ?style= picks a style with
// its canvas preset and ?key= weaves with the theme last published for that key.
func (h *WebHandler) Home(c *gin.Context) {
	cfg := rug.DefaultConfig()
	if style := rug.ParseStyle(c.Query("style")); style.Known() {
		cfg = cfg.WithStylePreset(style)
	}
	if name := c.Query("palette"); name != "" {
		if palette, ok := rug.PaletteByName(name); ok {
			cfg.Palette = palette
		}
	}

	t := theme.DefaultTheme()
	if key := c.Query("key"); key != "" && h.themes != nil {
		if latest, ok := h.themes.Latest(key); ok {
			t = latest
		}
	}

	grid := rug.Generate(cfg, t.Characters)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	component := render.HTML(grid, cfg, render.Caption{Name: t.Name, Description: t.Description})
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		logger.Error("Failed to render home page", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
	}
}
