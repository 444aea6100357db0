// Package rug renders procedural ASCII rug patterns into a character grid.
//
// Generation is a pure function of a Config and a CharacterSet: the same
// inputs always produce the same Grid.
package rug

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 60
	MaxDimension  = 160

	berberWidth  = 60
	berberHeight = 80
)

// Config is the immutable input of one generation pass.
type Config struct {
	Width            int
	Height           int
	Style            Style
	Palette          Palette
	CustomColors     CustomColors
	UseCustomColors  bool
	HasMedallion     bool
	SelectedMotifIDs []string
	PlacementMode    PlacementMode
}

// DefaultConfig mirrors the loom's start-up state.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Style:            StylePersianMasterpiece,
		Palette:          Palettes[paletteShiraz],
		CustomColors:     DefaultCustomColors,
		HasMedallion:     true,
		SelectedMotifIDs: []string{"floral"},
		PlacementMode:    PlacementRandom,
	}
}

// WithStylePreset switches to style and applies its canvas preset: Berber
// styles weave a portrait canvas on Berber Canvas, the rest a landscape
// canvas on Shiraz Garden.
func (c Config) WithStylePreset(style Style) Config {
	c.Style = style
	if style.IsBerber() {
		c.Palette = Palettes[paletteBerber]
		c.Width, c.Height = berberWidth, berberHeight
	} else {
		c.Palette = Palettes[paletteShiraz]
		c.Width, c.Height = DefaultWidth, DefaultHeight
	}
	c.HasMedallion = style.SupportsMedallion()
	return c
}

// Validate rejects configs the engine must not be called with.
func (c Config) Validate(maxDimension int) error {
	if maxDimension <= 0 {
		maxDimension = MaxDimension
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d must be positive", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Width > maxDimension || c.Height > maxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidDimensions, c.Width, c.Height, maxDimension)
	}
	if !c.PlacementMode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPlacement, c.PlacementMode)
	}
	for _, id := range c.SelectedMotifIDs {
		if _, ok := MotifByID(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMotif, id)
		}
	}
	return nil
}

// Cell is one glyph plus the logical color it is painted with.
type Cell struct {
	Char string    `json:"char"`
	Role ColorRole `json:"role"`
}

// Grid is height rows of width cells, row 0 at the top.
type Grid [][]Cell

// Rows exposes the grid row by row.
func (g Grid) Rows() [][]Cell { return g }

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the number of cells per row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the cell at column x, row y.
func (g Grid) At(x, y int) Cell { return g[y][x] }

// Text flattens the grid into export form: each row's glyphs concatenated,
// rows joined by newlines.
func (g Grid) Text() string {
	var b strings.Builder
	for y, row := range g {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(cell.Char)
		}
	}
	return b.String()
}

// Generate evaluates the style rule at every coordinate.
func Generate(cfg Config, charset CharacterSet) Grid {
	rule := Rule(cfg.Style)
	rc := NewRuleContext(cfg, charset)

	grid := make(Grid, cfg.Height)
	for y := range grid {
		grid[y] = generateRow(y, rule, rc)
	}
	return grid
}

// GenerateParallel is Generate with rows spread over workers goroutines.
// The result is identical to Generate's.
func GenerateParallel(ctx context.Context, cfg Config, charset CharacterSet, workers int) (Grid, error) {
	if workers < 1 {
		workers = 1
	}
	rule := Rule(cfg.Style)
	rc := NewRuleContext(cfg, charset)
	grid := make(Grid, cfg.Height)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := range grid {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			grid[y] = generateRow(y, rule, rc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}

func generateRow(y int, rule RuleFunc, rc *RuleContext) []Cell {
	row := make([]Cell, rc.Width)
	for x := range row {
		row[x] = rule(ComputeGeometry(x, y, rc.Width, rc.Height), rc)
	}
	return row
}
