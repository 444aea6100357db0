package handlers

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/logger"
	"github.com/Conceptual-Machines/rug-loom/internal/models"
	"github.com/Conceptual-Machines/rug-loom/internal/render"
	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/Conceptual-Machines/rug-loom/internal/theme"
	"github.com/gin-gonic/gin"
)

// ThemeResolver is the part of theme.Resolver the handlers use
type ThemeResolver interface {
	ThemeProviderInfo
	Resolve(ctx context.Context, style string) theme.Theme
	ResolveLatest(ctx context.Context, key, style string) (theme.Theme, bool)
	Latest(key string) (theme.Theme, bool)
}

// GenerationRecorder receives rug generation metrics
type GenerationRecorder interface {
	RecordGeneration(ctx context.Context, style string, cells int, duration time.Duration, success bool)
}

type RugHandler struct {
	themes   ThemeResolver
	recorder GenerationRecorder
	maxDim   int
	workers  int
}

func NewRugHandler(themes ThemeResolver, recorder GenerationRecorder, maxDimension int) *RugHandler {
	return &RugHandler{
		themes:   themes,
		recorder: recorder,
		maxDim:   maxDimension,
		workers:  runtime.GOMAXPROCS(0),
	}
}

// woven is one finished rug with everything the renderers need
type woven struct {
	cfg   rug.Config
	theme theme.Theme
	grid  rug.Grid
}

// weave binds the request, picks the glyphs and generates the grid. It writes
// the error response itself and reports false when the caller should stop.
func (h *RugHandler) weave(c *gin.Context) (woven, bool) {
	var req models.RugRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return woven{}, false
		}
	}

	cfg, err := buildConfig(req, h.maxDim)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return woven{}, false
	}
	c.Set(ctxKeyRugStyle, string(cfg.Style))

	var t theme.Theme
	switch {
	case req.Characters != nil:
		chars := toCharacterSet(*req.Characters)
		if err := chars.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return woven{}, false
		}
		t = theme.CustomTheme(chars)
	case req.UseAITheme && h.themes != nil:
		t = h.themes.Resolve(c.Request.Context(), string(cfg.Style))
	default:
		t = theme.DefaultTheme()
	}

	start := time.Now()
	grid, err := rug.GenerateParallel(c.Request.Context(), cfg, t.Characters, h.workers)
	duration := time.Since(start)
	if h.recorder != nil {
		h.recorder.RecordGeneration(c.Request.Context(), string(cfg.Style), cfg.Width*cfg.Height, duration, err == nil)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusServiceUnavailable
		}
		logger.Error("Rug generation failed", err, logger.WithContext(c))
		c.JSON(status, gin.H{"error": "rug generation failed"})
		return woven{}, false
	}

	fields := logger.WithContext(c)
	fields["theme_source"] = string(t.Source)
	logger.LogRugGenerated(string(cfg.Style), cfg.Width, cfg.Height, duration, fields)

	return woven{cfg: cfg, theme: t, grid: grid}, true
}

// Generate handles POST /api/v1/rugs
func (h *RugHandler) Generate(c *gin.Context) {
	w, ok := h.weave(c)
	if !ok {
		return
	}

	rows := make([][]models.RugCell, len(w.grid))
	for y, row := range w.grid {
		out := make([]models.RugCell, len(row))
		for x, cell := range row {
			out[x] = models.RugCell{
				Char:  cell.Char,
				Role:  string(cell.Role),
				Color: rug.ResolveColor(cell.Role, w.cfg),
			}
		}
		rows[y] = out
	}

	palette := w.cfg.Palette.Name
	if w.cfg.UseCustomColors {
		palette = "custom"
	}

	c.JSON(http.StatusOK, models.RugResponse{
		RequestID:  c.GetString("request_id"),
		Width:      w.grid.Width(),
		Height:     w.grid.Height(),
		Style:      string(w.cfg.Style),
		Palette:    palette,
		Background: rug.ResolveColor(rug.RoleBackground, w.cfg),
		IsLight:    w.cfg.IsLight(),
		Theme: models.ThemeInfo{
			Name:        w.theme.Name,
			Description: w.theme.Description,
			Characters:  fromCharacterSet(w.theme.Characters),
			Source:      string(w.theme.Source),
		},
		Rows: rows,
		Text: render.Text(w.grid),
	})
}

// Export handles POST /api/v1/rugs/export and returns the grid as a text download
func (h *RugHandler) Export(c *gin.Context) {
	w, ok := h.weave(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+render.ExportFilename(time.Now())+`"`)
	c.Data(http.StatusOK, contentTypeText, []byte(render.Text(w.grid)))
}

// ANSI handles POST /api/v1/rugs/ansi and returns the grid as truecolor terminal text
func (h *RugHandler) ANSI(c *gin.Context) {
	w, ok := h.weave(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, contentTypeText, []byte(render.ANSI(w.grid, w.cfg)))
}

// Preview handles POST /api/v1/rugs/preview and returns a standalone HTML page
func (h *RugHandler) Preview(c *gin.Context) {
	w, ok := h.weave(c)
	if !ok {
		return
	}

	c.Header("Content-Type", contentTypeHTML)
	c.Status(http.StatusOK)
	component := render.HTML(w.grid, w.cfg, render.Caption{
		Name:        w.theme.Name,
		Description: strings.TrimSpace(w.theme.Description),
	})
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		logger.Error("Failed to render rug preview", err, logger.WithContext(c))
	}
}
