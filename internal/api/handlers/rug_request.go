package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Conceptual-Machines/rug-loom/internal/models"
	"github.com/Conceptual-Machines/rug-loom/internal/rug"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// buildConfig applies a request on top of the default loom state. A style
// preset is applied first so explicit fields still win over it.
func buildConfig(req models.RugRequest, maxDimension int) (rug.Config, error) {
	cfg := rug.DefaultConfig()

	if strings.TrimSpace(req.Style) != "" {
		cfg.Style = rug.ParseStyle(req.Style)
	}
	if req.StylePreset {
		cfg = cfg.WithStylePreset(cfg.Style)
	}

	if req.Width != nil {
		cfg.Width = *req.Width
	}
	if req.Height != nil {
		cfg.Height = *req.Height
	}

	if req.Palette != "" {
		palette, ok := rug.PaletteByName(req.Palette)
		if !ok {
			return rug.Config{}, fmt.Errorf("unknown palette %q", req.Palette)
		}
		cfg.Palette = palette
	}

	if req.CustomColors != nil {
		colors, err := customColors(*req.CustomColors)
		if err != nil {
			return rug.Config{}, err
		}
		cfg.CustomColors = colors
	}
	cfg.UseCustomColors = req.UseCustomColors

	if req.HasMedallion != nil {
		cfg.HasMedallion = *req.HasMedallion
	}

	if req.Motifs != nil {
		if len(req.Motifs) > maxMotifIDs {
			return rug.Config{}, fmt.Errorf("at most %d motifs may be selected", maxMotifIDs)
		}
		cfg.SelectedMotifIDs = append([]string(nil), req.Motifs...)
	}

	if req.PlacementMode != "" {
		cfg.PlacementMode = rug.PlacementMode(req.PlacementMode)
	}

	if err := cfg.Validate(maxDimension); err != nil {
		return rug.Config{}, err
	}
	return cfg, nil
}

func customColors(in models.CustomColors) (rug.CustomColors, error) {
	out := rug.DefaultCustomColors
	fields := []struct {
		name  string
		value string
		dst   *string
	}{
		{"primary", in.Primary, &out.Primary},
		{"secondary", in.Secondary, &out.Secondary},
		{"accent", in.Accent, &out.Accent},
		{"background", in.Background, &out.Background},
		{"border", in.Border, &out.Border},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if !hexColorPattern.MatchString(f.value) {
			return rug.CustomColors{}, fmt.Errorf("custom color %s must be a hex color, got %q", f.name, f.value)
		}
		*f.dst = f.value
	}
	return out, nil
}

func toCharacterSet(c models.Characters) rug.CharacterSet {
	return rug.CharacterSet{
		Border:      c.Border,
		InnerBorder: c.InnerBorder,
		Field:       c.Field,
		Medallion:   c.Medallion,
		Accent:      c.Accent,
	}
}

func fromCharacterSet(c rug.CharacterSet) models.Characters {
	return models.Characters{
		Border:      c.Border,
		InnerBorder: c.InnerBorder,
		Field:       c.Field,
		Medallion:   c.Medallion,
		Accent:      c.Accent,
	}
}
