package rug

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persianConfig() Config {
	cfg := DefaultConfig()
	cfg.Style = StylePersianMasterpiece
	cfg.HasMedallion = true
	cfg.SelectedMotifIDs = []string{"floral"}
	cfg.PlacementMode = PlacementUniform
	return cfg
}

func TestGenerate_ShapeInvariant(t *testing.T) {
	dims := []struct {
		width, height int
	}{
		{1, 1},
		{3, 2},
		{40, 40},
		{80, 60},
		{60, 80},
		{160, 160},
	}

	for _, style := range Styles {
		for _, d := range dims {
			cfg := DefaultConfig()
			cfg.Style = style
			cfg.Width, cfg.Height = d.width, d.height

			grid := Generate(cfg, DefaultCharacterSet())
			require.Len(t, grid, d.height, "style %s", style)
			for y, row := range grid {
				assert.Len(t, row, d.width, "style %s row %d", style, y)
			}
			assert.Equal(t, d.width, grid.Width())
			assert.Equal(t, d.height, grid.Height())
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, style := range Styles {
		for _, mode := range []PlacementMode{PlacementUniform, PlacementRandom, PlacementTiled} {
			t.Run(string(style)+"/"+string(mode), func(t *testing.T) {
				cfg := DefaultConfig()
				cfg.Style = style
				cfg.PlacementMode = mode
				cfg.SelectedMotifIDs = []string{"sun", "floral", "diamond"}

				first := Generate(cfg, DefaultCharacterSet())
				second := Generate(cfg, DefaultCharacterSet())
				assert.Equal(t, first, second)
			})
		}
	}
}

func TestGenerate_PersianScenario(t *testing.T) {
	grid := Generate(persianConfig(), DefaultCharacterSet())

	assert.Equal(t, Cell{Char: "█", Role: RoleBorder}, grid[0][0])
	assert.Equal(t, Cell{Char: "❂", Role: RoleAccent}, grid[30][40])
}

func TestGenerate_PersianBorderAlternatesByDepth(t *testing.T) {
	cfg := persianConfig()
	grid := Generate(cfg, DefaultCharacterSet())

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			depth := EdgeDepth(x, y, cfg.Width, cfg.Height)
			if depth >= 5 {
				continue
			}
			want := "█"
			if depth%2 == 1 {
				want = "╬"
			}
			cell := grid[y][x]
			require.Equal(t, want, cell.Char, "cell (%d,%d) depth %d", x, y, depth)
			require.Equal(t, RoleBorder, cell.Role)
			require.NotEqual(t, DefaultCharacterSet().Field, cell.Char)
		}
	}
}

func TestGenerate_UnknownStyleFallsBackToPersian(t *testing.T) {
	cfg := persianConfig()
	want := Generate(cfg, DefaultCharacterSet())

	cfg.Style = Style("Kilim Experimental")
	assert.False(t, cfg.Style.Known())
	assert.Equal(t, want, Generate(cfg, DefaultCharacterSet()))
}

func TestGenerate_EmptyMotifsUseAccentGlyph(t *testing.T) {
	cfg := persianConfig()
	cfg.SelectedMotifIDs = nil

	grid := Generate(cfg, DefaultCharacterSet())
	assert.Equal(t, Cell{Char: "✧", Role: RoleSecondary}, grid[6][6])
}

func TestGenerate_UsesCharacterSet(t *testing.T) {
	charset := CharacterSet{Border: "#", InnerBorder: "=", Field: ".", Medallion: "@", Accent: "*"}
	grid := Generate(persianConfig(), charset)

	assert.Equal(t, "#", grid[0][0].Char)
	assert.Equal(t, "@", grid[30][40].Char)
	assert.Equal(t, ".", grid[7][7].Char)
}

func TestGrid_Text(t *testing.T) {
	grid := Grid{
		{{Char: "a"}, {Char: "b"}, {Char: "c"}},
		{{Char: "d"}, {Char: "e"}, {Char: "f"}},
	}
	assert.Equal(t, "abc\ndef", grid.Text())
	assert.Len(t, grid.Rows(), 2)
	assert.Equal(t, "e", grid.At(1, 1).Char)
	assert.Equal(t, "", Grid{}.Text())
}

func TestGenerateParallel_MatchesGenerate(t *testing.T) {
	for _, style := range Styles {
		cfg := DefaultConfig().WithStylePreset(style)
		cfg.SelectedMotifIDs = []string{"heart", "bird"}

		want := Generate(cfg, DefaultCharacterSet())
		got, err := GenerateParallel(context.Background(), cfg, DefaultCharacterSet(), 4)
		require.NoError(t, err)
		assert.Equal(t, want, got, "style %s", style)
	}
}

func TestGenerateParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	grid, err := GenerateParallel(ctx, DefaultConfig(), DefaultCharacterSet(), 2)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, grid)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "defaults", mutate: func(_ *Config) {}},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }, wantErr: ErrInvalidDimensions},
		{name: "negative height", mutate: func(c *Config) { c.Height = -3 }, wantErr: ErrInvalidDimensions},
		{name: "too wide", mutate: func(c *Config) { c.Width = MaxDimension + 1 }, wantErr: ErrInvalidDimensions},
		{name: "unknown placement", mutate: func(c *Config) { c.PlacementMode = "spiral" }, wantErr: ErrUnknownPlacement},
		{name: "unknown motif", mutate: func(c *Config) { c.SelectedMotifIDs = []string{"floral", "dragon"} }, wantErr: ErrUnknownMotif},
		{name: "empty motifs allowed", mutate: func(c *Config) { c.SelectedMotifIDs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate(0)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_WithStylePreset(t *testing.T) {
	tests := []struct {
		style        Style
		wantPalette  string
		wantWidth    int
		wantHeight   int
		wantMedallon bool
	}{
		{StyleBerberTribal, "Berber Canvas", 60, 80, false},
		{StylePersianMasterpiece, "Shiraz Garden", 80, 60, true},
		{StyleMedallionCenterpiece, "Shiraz Garden", 80, 60, true},
		{StyleFloralGarden, "Shiraz Garden", 80, 60, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			cfg := DefaultConfig().WithStylePreset(tt.style)
			assert.Equal(t, tt.style, cfg.Style)
			assert.Equal(t, tt.wantPalette, cfg.Palette.Name)
			assert.Equal(t, tt.wantWidth, cfg.Width)
			assert.Equal(t, tt.wantHeight, cfg.Height)
			assert.Equal(t, tt.wantMedallon, cfg.HasMedallion)
		})
	}
}
