package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	maxDim int
}

func NewCatalogHandler(maxDimension int) *CatalogHandler {
	if maxDimension <= 0 {
		maxDimension = rug.MaxDimension
	}
	return &CatalogHandler{maxDim: maxDimension}
}

type styleEntry struct {
	Name         string `json:"name"`
	Berber       bool   `json:"berber"`
	HasMedallion bool   `json:"has_medallion"`
}

type CatalogResponse struct {
	Styles         []styleEntry     `json:"styles"`
	Palettes       []rug.Palette    `json:"palettes"`
	Motifs         []rug.Motif      `json:"motifs"`
	PlacementModes interface{}      `json:"placement_modes"`
	CustomColors   rug.CustomColors `json:"custom_colors"`
	Characters     rug.CharacterSet `json:"characters"`
	Defaults       gin.H            `json:"defaults"`
	Limits         gin.H            `json:"limits"`
}

// GetCatalog handles GET /api/v1/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	styles := make([]styleEntry, 0, len(rug.Styles))
	for _, s := range rug.Styles {
		styles = append(styles, styleEntry{
			Name:         string(s),
			Berber:       s.IsBerber(),
			HasMedallion: s.SupportsMedallion(),
		})
	}

	defaults := rug.DefaultConfig()
	c.JSON(http.StatusOK, CatalogResponse{
		Styles:         styles,
		Palettes:       rug.Palettes,
		Motifs:         rug.Motifs,
		PlacementModes: rug.PlacementModes,
		CustomColors:   rug.DefaultCustomColors,
		Characters:     rug.DefaultCharacterSet(),
		Defaults: gin.H{
			"width":          defaults.Width,
			"height":         defaults.Height,
			"style":          defaults.Style,
			"palette":        defaults.Palette.Name,
			"has_medallion":  defaults.HasMedallion,
			"motifs":         defaults.SelectedMotifIDs,
			"placement_mode": defaults.PlacementMode,
		},
		Limits: gin.H{
			"min_dimension": minGridDimension,
			"max_dimension": h.maxDim,
			"max_motifs":    maxMotifIDs,
		},
	})
}
