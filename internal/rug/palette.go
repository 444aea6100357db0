package rug

import "strings"

// ColorRole is the logical color slot a cell is painted with.
type ColorRole string

const (
	RolePrimary    ColorRole = "primary"
	RoleSecondary  ColorRole = "secondary"
	RoleAccent     ColorRole = "accent"
	RoleBorder     ColorRole = "border"
	RoleBackground ColorRole = "background"
)

// Palette is a named set of color roles. Colors are hex strings.
type Palette struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Border     string `json:"border"`
	IsLight    bool   `json:"is_light"`
}

// CustomColors are the manual color overrides, including the background.
type CustomColors struct {
	Background string `json:"background"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Border     string `json:"border"`
}

// Palettes are the built-in palettes in catalog order.
var Palettes = []Palette{
	{Name: "Shiraz Garden", Primary: "#dc2626", Secondary: "#10b981", Accent: "#fbbf24", Background: "#1a0505", Border: "#450a0a"},
	{Name: "Pearl White", Primary: "#1e293b", Secondary: "#1d4ed8", Accent: "#e11d48", Background: "#f8fafc", Border: "#cbd5e1", IsLight: true},
	{Name: "Berber Canvas", Primary: "#0f172a", Secondary: "#2563eb", Accent: "#f97316", Background: "#fcf8f0", Border: "#d6d3d1", IsLight: true},
	{Name: "High Atlas", Primary: "#292524", Secondary: "#f43f5e", Accent: "#059669", Background: "#f4f1ea", Border: "#e7e5e4", IsLight: true},
	{Name: "Royal Saffron", Primary: "#78350f", Secondary: "#991b1b", Accent: "#3730a3", Background: "#fef3c7", Border: "#fcd34d", IsLight: true},
	{Name: "Lapis Sky", Primary: "#ffffff", Secondary: "#a5f3fc", Accent: "#fde047", Background: "#2563eb", Border: "#1e40af"},
	{Name: "Tabriz Royal", Primary: "#3b82f6", Secondary: "#eab308", Accent: "#f43f5e", Background: "#050a1a", Border: "#1e3a8a"},
}

const (
	paletteShiraz = 0
	paletteBerber = 2
)

// DefaultCustomColors seeds the manual color controls.
var DefaultCustomColors = CustomColors{
	Background: "#1a0505",
	Primary:    "#dc2626",
	Secondary:  "#10b981",
	Accent:     "#fbbf24",
	Border:     "#450a0a",
}

// PaletteByName looks up a built-in palette, ignoring case.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range Palettes {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Palette{}, false
}

// Color returns the palette color for role.
func (p Palette) Color(role ColorRole) string {
	switch role {
	case RoleSecondary:
		return p.Secondary
	case RoleAccent:
		return p.Accent
	case RoleBorder:
		return p.Border
	case RoleBackground:
		return p.Background
	default:
		return p.Primary
	}
}

// Color returns the custom color for role.
func (c CustomColors) Color(role ColorRole) string {
	switch role {
	case RoleSecondary:
		return c.Secondary
	case RoleAccent:
		return c.Accent
	case RoleBorder:
		return c.Border
	case RoleBackground:
		return c.Background
	default:
		return c.Primary
	}
}

// ResolveColor maps a role to a literal color from whichever color source
// the config has active.
func ResolveColor(role ColorRole, cfg Config) string {
	if cfg.UseCustomColors {
		return cfg.CustomColors.Color(role)
	}
	return cfg.Palette.Color(role)
}

// IsLight reports whether the active color source wants dark-on-light
// chrome. Custom colors are always treated as dark.
func (c Config) IsLight() bool {
	if c.UseCustomColors {
		return false
	}
	return c.Palette.IsLight
}
