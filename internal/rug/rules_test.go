package rug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func evalRule(style Style, width, height, x, y int) Cell {
	cfg := DefaultConfig()
	cfg.Style = style
	cfg.Width, cfg.Height = width, height
	cfg.PlacementMode = PlacementUniform
	cfg.SelectedMotifIDs = []string{"floral"}

	rc := NewRuleContext(cfg, DefaultCharacterSet())
	return Rule(style)(ComputeGeometry(x, y, width, height), rc)
}

type ruleCase struct {
	name string
	x, y int
	want Cell
}

func runRuleCases(t *testing.T, style Style, width, height int, tests []ruleCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalRule(style, width, height, tt.x, tt.y))
		})
	}
}

func TestBerberRule(t *testing.T) {
	runRuleCases(t, StyleBerberTribal, 60, 80, []ruleCase{
		{name: "top tick", x: 0, y: 0, want: Cell{Char: "-", Role: RoleBorder}},
		{name: "bottom tick", x: 30, y: 79, want: Cell{Char: "-", Role: RoleBorder}},
		{name: "top pine", x: 0, y: 1, want: Cell{Char: "▲", Role: RoleAccent}},
		{name: "bottom pine", x: 30, y: 78, want: Cell{Char: "▲", Role: RoleAccent}},
		{name: "band gap", x: 1, y: 1, want: Cell{Char: " ", Role: RolePrimary}},
		{name: "left wiggle", x: 8, y: 10, want: Cell{Char: "≀", Role: RoleSecondary}},
		{name: "right wiggle", x: 52, y: 10, want: Cell{Char: "≀", Role: RoleSecondary}},
		{name: "wiggle wins over column", x: 7, y: 12, want: Cell{Char: "≀", Role: RoleSecondary}},
		{name: "column motif", x: 22, y: 12, want: Cell{Char: "❁", Role: RoleAccent}},
		{name: "column gap rows", x: 22, y: 18, want: Cell{Char: " ", Role: RolePrimary}},
		{name: "between columns", x: 15, y: 12, want: Cell{Char: " ", Role: RolePrimary}},
	})
}

func TestMultiBorderRule(t *testing.T) {
	runRuleCases(t, StyleIntricateMultiBorder, 80, 60, []ruleCase{
		{name: "outer ring", x: 0, y: 0, want: Cell{Char: "█", Role: RoleBorder}},
		{name: "spacer ring", x: 1, y: 30, want: Cell{Char: "·", Role: RolePrimary}},
		{name: "second band", x: 4, y: 30, want: Cell{Char: "╬", Role: RoleSecondary}},
		{name: "third band", x: 8, y: 30, want: Cell{Char: "▓", Role: RolePrimary}},
		{name: "fourth band", x: 12, y: 30, want: Cell{Char: "░", Role: RoleAccent}},
		{name: "sixth band wraps colors", x: 20, y: 30, want: Cell{Char: "╪", Role: RoleSecondary}},
		{name: "gap ring lattice", x: 10, y: 10, want: Cell{Char: "❀", Role: RoleAccent}},
		{name: "gap ring dot", x: 2, y: 30, want: Cell{Char: "·", Role: RolePrimary}},
		{name: "centre lattice", x: 40, y: 30, want: Cell{Char: "❀", Role: RoleAccent}},
	})
}

func TestSacredGeometryRule(t *testing.T) {
	runRuleCases(t, StyleSacredGeometry, 80, 60, []ruleCase{
		{name: "border", x: 0, y: 0, want: Cell{Char: "█", Role: RoleBorder}},
		{name: "cross", x: 40, y: 10, want: Cell{Char: "╬", Role: RoleSecondary}},
		{name: "diagonal", x: 10, y: 10, want: Cell{Char: "╬", Role: RoleSecondary}},
		{name: "lattice", x: 30, y: 10, want: Cell{Char: "❀", Role: RoleAccent}},
		{name: "field", x: 5, y: 6, want: Cell{Char: "·", Role: RolePrimary}},
	})
}

func TestMedallionRule(t *testing.T) {
	runRuleCases(t, StyleMedallionCenterpiece, 80, 60, []ruleCase{
		{name: "border", x: 4, y: 30, want: Cell{Char: "█", Role: RoleBorder}},
		{name: "ring zero", x: 40, y: 30, want: Cell{Char: "✧", Role: RoleSecondary}},
		{name: "ring one", x: 46, y: 30, want: Cell{Char: "❂", Role: RoleAccent}},
		{name: "ring three", x: 54, y: 30, want: Cell{Char: "░", Role: RolePrimary}},
		{name: "lattice", x: 8, y: 8, want: Cell{Char: "✿", Role: RoleAccent}},
		{name: "field", x: 9, y: 8, want: Cell{Char: "·", Role: RolePrimary}},
	})
}

func TestGardenRules(t *testing.T) {
	t.Run("floral garden", func(t *testing.T) {
		runRuleCases(t, StyleFloralGarden, 80, 60, []ruleCase{
			{name: "border", x: 3, y: 20, want: Cell{Char: "█", Role: RoleBorder}},
			{name: "node", x: 8, y: 8, want: Cell{Char: "✿", Role: RoleAccent}},
			{name: "dense node", x: 12, y: 8, want: Cell{Char: "❀", Role: RoleAccent}},
			{name: "texture", x: 5, y: 6, want: Cell{Char: "⁛", Role: RoleSecondary}},
			{name: "field", x: 5, y: 7, want: Cell{Char: "·", Role: RolePrimary}},
		})
	})

	t.Run("bird and bloom", func(t *testing.T) {
		runRuleCases(t, StyleBirdAndBloom, 80, 60, []ruleCase{
			{name: "border", x: 3, y: 20, want: Cell{Char: "█", Role: RoleBorder}},
			{name: "node", x: 8, y: 8, want: Cell{Char: "✿", Role: RoleAccent}},
			{name: "sparse lattice", x: 12, y: 8, want: Cell{Char: "·", Role: RolePrimary}},
			{name: "no texture", x: 5, y: 6, want: Cell{Char: "·", Role: RolePrimary}},
		})
	})
}

func TestPersianRule(t *testing.T) {
	runRuleCases(t, StylePersianMasterpiece, 80, 60, []ruleCase{
		{name: "even ring", x: 0, y: 0, want: Cell{Char: "█", Role: RoleBorder}},
		{name: "odd ring", x: 1, y: 1, want: Cell{Char: "╬", Role: RoleBorder}},
		{name: "medallion core", x: 40, y: 30, want: Cell{Char: "❂", Role: RoleAccent}},
		{name: "medallion ring", x: 50, y: 30, want: Cell{Char: "✧", Role: RoleAccent}},
		{name: "lattice", x: 6, y: 6, want: Cell{Char: "✾", Role: RoleSecondary}},
		{name: "field", x: 7, y: 7, want: Cell{Char: "·", Role: RolePrimary}},
	})

	t.Run("medallion off", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.HasMedallion = false
		cfg.PlacementMode = PlacementUniform
		rc := NewRuleContext(cfg, DefaultCharacterSet())
		cell := Rule(StylePersianMasterpiece)(ComputeGeometry(41, 31, 80, 60), rc)
		assert.Equal(t, Cell{Char: "·", Role: RolePrimary}, cell)
	})
}

func TestGeometry(t *testing.T) {
	g := ComputeGeometry(40, 30, 80, 60)
	assert.Equal(t, 29, g.Depth)
	assert.InDelta(t, 0, g.Diamond, 1e-9)
	assert.InDelta(t, 0, g.Radial, 1e-9)

	corner := ComputeGeometry(0, 0, 80, 60)
	assert.Equal(t, 0, corner.Depth)
	assert.InDelta(t, -1, corner.NormDx, 1e-9)
	assert.InDelta(t, -1, corner.NormDy, 1e-9)
	assert.InDelta(t, 2, corner.Diamond, 1e-9)

	assert.Equal(t, 3, EdgeDepth(76, 30, 80, 60))
	assert.Equal(t, 0, EdgeDepth(0, 0, 1, 1))
}
