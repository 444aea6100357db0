package rug

import "math"

// Glyphs the rules use regardless of the character set.
const (
	glyphBlank      = " "
	glyphDot        = "·"
	glyphOrnate     = "╬"
	glyphDarkShade  = "▓"
	glyphLightShade = "░"
	glyphDoubleV    = "╫"
	glyphDoubleH    = "╪"
	glyphStar       = "✧"
	glyphPine       = "▲"
	glyphTick       = "-"
	glyphFringe     = "≀"
	glyphTexture    = "⁛"
)

// RuleFunc maps one coordinate to a cell. Rules never look at other cells.
type RuleFunc func(g Geometry, rc *RuleContext) Cell

// RuleContext carries the per-generation inputs shared by every cell.
type RuleContext struct {
	Width, Height int
	HasMedallion  bool
	Placement     PlacementMode
	Charset       CharacterSet
	Active        []Motif
}

// NewRuleContext prepares the shared inputs for cfg and charset.
func NewRuleContext(cfg Config, charset CharacterSet) *RuleContext {
	return &RuleContext{
		Width:        cfg.Width,
		Height:       cfg.Height,
		HasMedallion: cfg.HasMedallion,
		Placement:    cfg.PlacementMode,
		Charset:      charset,
		Active:       ActiveMotifs(cfg.SelectedMotifIDs),
	}
}

// motif returns the motif glyph at (x, y), or the accent glyph when no motif
// is active.
func (rc *RuleContext) motif(x, y int) string {
	if len(rc.Active) == 0 {
		return rc.Charset.Accent
	}
	return SelectMotif(x, y, rc.Placement, rc.Active).Glyph(x, y)
}

var rules = map[Style]RuleFunc{
	StylePersianMasterpiece:   persianRule,
	StyleBerberTribal:         berberRule,
	StyleIntricateMultiBorder: multiBorderRule,
	StyleSacredGeometry:       sacredGeometryRule,
	StyleMedallionCenterpiece: medallionRule,
	StyleBirdAndBloom:         gardenRule(8, false),
	StyleFloralGarden:         gardenRule(4, true),
}

// Rule returns the rule for style. Unknown styles get the Persian rule.
func Rule(style Style) RuleFunc {
	if r, ok := rules[style]; ok {
		return r
	}
	return persianRule
}

func berberRule(g Geometry, rc *RuleContext) Cell {
	x, y, h := g.X, g.Y, rc.Height

	if y < 4 || y > h-5 {
		switch {
		case x%6 == 0 && (y == 1 || y == h-2):
			return Cell{Char: glyphPine, Role: RoleAccent}
		case y == 0 || y == h-1:
			return Cell{Char: glyphTick, Role: RoleBorder}
		}
		return Cell{Char: glyphBlank, Role: RolePrimary}
	}

	fy := float64(y)
	wiggleLeft := math.Abs(float64(x)-(6+math.Sin(fy*0.2)*2)) < 0.6
	wiggleRight := math.Abs(float64(x)-(float64(rc.Width-7)+math.Cos(fy*0.25)*1.5)) < 0.6
	if wiggleLeft || wiggleRight {
		return Cell{Char: glyphFringe, Role: RoleSecondary}
	}

	inColumn := abs(x%15-7) < 3
	if inColumn && y%12 < 6 {
		return Cell{Char: rc.motif(x, y), Role: RoleAccent}
	}
	return Cell{Char: glyphBlank, Role: RolePrimary}
}

func multiBorderRule(g Geometry, rc *RuleContext) Cell {
	if g.Depth < 24 {
		switch g.Depth % 4 {
		case 0:
			band := g.Depth / 4
			glyphs := [...]string{rc.Charset.Border, glyphOrnate, glyphDarkShade, glyphLightShade, glyphDoubleV, glyphDoubleH}
			roles := [...]ColorRole{RoleBorder, RoleSecondary, RolePrimary, RoleAccent}
			return Cell{Char: glyphs[band%len(glyphs)], Role: roles[band%len(roles)]}
		case 1:
			return Cell{Char: glyphDot, Role: RolePrimary}
		}
	}

	if g.X%5 == 0 && g.Y%5 == 0 {
		return Cell{Char: rc.motif(g.X, g.Y), Role: RoleAccent}
	}
	return Cell{Char: glyphDot, Role: RolePrimary}
}

func sacredGeometryRule(g Geometry, rc *RuleContext) Cell {
	if g.Depth < 4 {
		return Cell{Char: rc.Charset.Border, Role: RoleBorder}
	}

	ring := math.Abs(math.Mod(g.Radial*10, 1)) < 0.1
	cross := g.X == int(math.Floor(g.CenterX)) || g.Y == int(math.Floor(g.CenterY))
	diagonal := math.Abs(math.Abs(g.NormDx)-math.Abs(g.NormDy)) < 0.02

	switch {
	case ring || cross || diagonal:
		return Cell{Char: glyphOrnate, Role: RoleSecondary}
	case g.X%10 == 0 && g.Y%10 == 0:
		return Cell{Char: rc.motif(g.X, g.Y), Role: RoleAccent}
	}
	return Cell{Char: glyphDot, Role: RolePrimary}
}

func medallionRule(g Geometry, rc *RuleContext) Cell {
	if g.Depth < 5 {
		return Cell{Char: rc.Charset.Border, Role: RoleBorder}
	}

	if g.Diamond < 0.6 {
		ring := int(math.Floor(g.Diamond * 10))
		switch {
		case ring == 1:
			return Cell{Char: rc.Charset.Medallion, Role: RoleAccent}
		case ring%2 == 0:
			return Cell{Char: glyphStar, Role: RoleSecondary}
		}
		return Cell{Char: glyphLightShade, Role: RolePrimary}
	}

	if g.X%8 == 0 && g.Y%8 == 0 {
		return Cell{Char: rc.motif(g.X, g.Y), Role: RoleAccent}
	}
	return Cell{Char: glyphDot, Role: RolePrimary}
}

// gardenRule backs both Bird & Bloom and Floral Garden; they differ in
// lattice density and in the texture fill.
func gardenRule(density int, textured bool) RuleFunc {
	return func(g Geometry, rc *RuleContext) Cell {
		if g.Depth < 4 {
			return Cell{Char: rc.Charset.Border, Role: RoleBorder}
		}

		switch {
		case g.X%density == 0 && g.Y%density == 0:
			return Cell{Char: rc.motif(g.X, g.Y), Role: RoleAccent}
		case textured && (g.X%2 == 0 || g.Y%2 == 0):
			return Cell{Char: glyphTexture, Role: RoleSecondary}
		}
		return Cell{Char: glyphDot, Role: RolePrimary}
	}
}

func persianRule(g Geometry, rc *RuleContext) Cell {
	if g.Depth < 5 {
		if g.Depth%2 == 0 {
			return Cell{Char: rc.Charset.Border, Role: RoleBorder}
		}
		return Cell{Char: glyphOrnate, Role: RoleBorder}
	}

	if rc.HasMedallion && g.Diamond < 0.3 {
		if g.Diamond < 0.1 {
			return Cell{Char: rc.Charset.Medallion, Role: RoleAccent}
		}
		return Cell{Char: glyphStar, Role: RoleAccent}
	}

	if g.X%6 == 0 && g.Y%6 == 0 {
		return Cell{Char: rc.motif(g.X, g.Y), Role: RoleSecondary}
	}
	return Cell{Char: rc.Charset.Field, Role: RolePrimary}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
