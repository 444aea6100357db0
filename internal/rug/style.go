package rug

import "strings"

// Style identifies which rule governs the whole grid.
type Style string

const (
	StylePersianMasterpiece   Style = "Persian Masterpiece"
	StyleBerberTribal         Style = "Berber Tribal (Nomadic)"
	StyleIntricateMultiBorder Style = "Intricate Multi-Border"
	StyleBirdAndBloom         Style = "Bird & Bloom"
	StyleSacredGeometry       Style = "Sacred Geometry"
	StyleMedallionCenterpiece Style = "Medallion Centerpiece"
	StyleFloralGarden         Style = "Floral Garden"
)

// Styles lists every style in catalog order.
var Styles = [...]Style{
	StylePersianMasterpiece,
	StyleBerberTribal,
	StyleIntricateMultiBorder,
	StyleBirdAndBloom,
	StyleSacredGeometry,
	StyleMedallionCenterpiece,
	StyleFloralGarden,
}

// Known reports whether s is one of the catalog styles (exact match).
func (s Style) Known() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStyle maps a client-supplied name onto a style. Names must match a
// catalog entry exactly; anything else is kept as-is and weaves with the
// Persian rule.
func ParseStyle(name string) Style {
	return Style(name)
}

// IsBerber reports whether the style belongs to the Berber family, which
// uses a portrait canvas and its own palette preset.
func (s Style) IsBerber() bool {
	return strings.Contains(string(s), "Berber")
}

// SupportsMedallion reports whether the style's preset enables the medallion.
func (s Style) SupportsMedallion() bool {
	return s == StyleMedallionCenterpiece || s == StylePersianMasterpiece
}

// PlacementMode governs how motif choice varies across the field.
type PlacementMode string

const (
	PlacementUniform PlacementMode = "uniform"
	PlacementRandom  PlacementMode = "random"
	PlacementTiled   PlacementMode = "tiled"
)

// PlacementModes lists the supported modes with their display labels.
var PlacementModes = []struct {
	ID    PlacementMode `json:"id"`
	Label string        `json:"label"`
}{
	{ID: PlacementUniform, Label: "Uniform"},
	{ID: PlacementRandom, Label: "Random Mix"},
	{ID: PlacementTiled, Label: "Rectangular Tiling"},
}

// Valid reports whether m is a supported placement mode.
func (m PlacementMode) Valid() bool {
	switch m {
	case PlacementUniform, PlacementRandom, PlacementTiled:
		return true
	}
	return false
}
