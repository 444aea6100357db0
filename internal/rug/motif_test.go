package rug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveMotifs_KeepsGlobalOrder(t *testing.T) {
	active := ActiveMotifs([]string{"star", "floral", "bird"})
	require.Len(t, active, 3)
	assert.Equal(t, "floral", active[0].ID)
	assert.Equal(t, "bird", active[1].ID)
	assert.Equal(t, "star", active[2].ID)

	assert.Empty(t, ActiveMotifs(nil))
}

func TestSelectMotif_Uniform(t *testing.T) {
	active := ActiveMotifs([]string{"sun", "heart"})
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			assert.Equal(t, "sun", SelectMotif(x, y, PlacementUniform, active).ID)
		}
	}
}

func TestSelectMotif_TiledBlocks(t *testing.T) {
	active := ActiveMotifs([]string{"floral", "bird"})

	for by := 0; by < 6; by++ {
		for bx := 0; bx < 8; bx++ {
			want := SelectMotif(bx*tileSize, by*tileSize, PlacementTiled, active).ID
			for dy := 0; dy < tileSize; dy++ {
				for dx := 0; dx < tileSize; dx++ {
					got := SelectMotif(bx*tileSize+dx, by*tileSize+dy, PlacementTiled, active).ID
					require.Equal(t, want, got, "block (%d,%d)", bx, by)
				}
			}
		}
	}

	assert.Equal(t, "floral", SelectMotif(0, 0, PlacementTiled, active).ID)
	assert.Equal(t, "bird", SelectMotif(10, 0, PlacementTiled, active).ID)
	assert.Equal(t, "floral", SelectMotif(10, 10, PlacementTiled, active).ID)
}

func TestSelectMotif_RandomIsCoordinateHash(t *testing.T) {
	active := ActiveMotifs([]string{"floral", "bird"})

	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "floral"}, // seed 0
		{1, 0, "floral"}, // seed 123
		{4, 0, "floral"}, // seed 492
		{5, 0, "bird"},   // seed 615
		{8, 0, "bird"},   // seed 984
		{9, 0, "floral"}, // seed 107
	}
	for _, tt := range tests {
		first := SelectMotif(tt.x, tt.y, PlacementRandom, active)
		again := SelectMotif(tt.x, tt.y, PlacementRandom, active)
		assert.Equal(t, tt.want, first.ID, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, first, again)
	}
}

func TestSelectMotif_RandomIndexInRange(t *testing.T) {
	for n := 1; n <= len(Motifs); n++ {
		active := Motifs[:n]
		for x := 0; x < MaxDimension; x++ {
			for y := 0; y < MaxDimension; y++ {
				m := SelectMotif(x, y, PlacementRandom, active)
				require.NotEmpty(t, m.ID)
			}
		}
	}
}

func TestMotif_Glyph(t *testing.T) {
	floral, ok := MotifByID("floral")
	require.True(t, ok)

	assert.Equal(t, "❀", floral.Glyph(0, 0))
	assert.Equal(t, "✿", floral.Glyph(1, 0))
	assert.Equal(t, "❁", floral.Glyph(22, 12))
	assert.Equal(t, "❀", floral.Glyph(3, 2))
}

func TestMotifSelection_Toggle(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		toggle  string
		want    []string
	}{
		{name: "add", initial: []string{"floral"}, toggle: "bird", want: []string{"floral", "bird"}},
		{name: "remove", initial: []string{"floral", "bird"}, toggle: "floral", want: []string{"bird"}},
		{name: "last one stays", initial: []string{"sun"}, toggle: "sun", want: []string{"sun"}},
		{name: "empty seeds floral", initial: nil, toggle: "star", want: []string{"floral", "star"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewMotifSelection(tt.initial...)
			got := sel.Toggle(tt.toggle)
			assert.Equal(t, tt.want, got.IDs())
			assert.NotEmpty(t, got.IDs())
		})
	}
}

func TestMotifSelection_DropsDuplicates(t *testing.T) {
	sel := NewMotifSelection("heart", "heart", "sun")
	assert.Equal(t, []string{"heart", "sun"}, sel.IDs())

	ids := sel.IDs()
	ids[0] = "mutated"
	assert.True(t, sel.Contains("heart"))
}
