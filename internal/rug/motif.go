package rug

import "math"

const tileSize = 10

// Motif is a decorative symbol repeated across the field.
type Motif struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Glyphs []string `json:"glyphs"`
}

// Motifs holds every motif in the fixed global order used for selection.
var Motifs = []Motif{
	{ID: "floral", Label: "Floral", Glyphs: []string{"❀", "✿", "✾", "❃", "❁"}},
	{ID: "bird", Label: "Bird", Glyphs: []string{"v", "y", "w", "Y", "M"}},
	{ID: "sun", Label: "Sun", Glyphs: []string{"☼", "☀", "✹", "✺"}},
	{ID: "heart", Label: "Heart", Glyphs: []string{"♥", "♡", "❣"}},
	{ID: "star", Label: "Star", Glyphs: []string{"★", "☆", "✧", "✦"}},
	{ID: "bunny", Label: "Bunny", Glyphs: []string{"(Y)", "🐰"}},
	{ID: "geometric", Label: "Sigils", Glyphs: []string{"╬", "╫", "╪", "╫"}},
	{ID: "diamond", Label: "Stacked Diamonds", Glyphs: []string{"◆", "◇", "◈", "◊"}},
}

// MotifByID returns the motif with the given id.
func MotifByID(id string) (Motif, bool) {
	for _, m := range Motifs {
		if m.ID == id {
			return m, true
		}
	}
	return Motif{}, false
}

// ActiveMotifs filters Motifs down to the selected ids. The result keeps the
// global motif order, not the selection order.
func ActiveMotifs(selected []string) []Motif {
	if len(selected) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		want[id] = struct{}{}
	}

	active := make([]Motif, 0, len(selected))
	for _, m := range Motifs {
		if _, ok := want[m.ID]; ok {
			active = append(active, m)
		}
	}
	return active
}

// SelectMotif picks the motif that governs (x, y) under mode.
// active must not be empty; callers substitute the accent glyph instead.
func SelectMotif(x, y int, mode PlacementMode, active []Motif) Motif {
	n := len(active)
	switch mode {
	case PlacementRandom:
		seed := (x*123 + y*456) % 1000
		idx := int(math.Floor(float64(seed) / 1000 * float64(n)))
		if idx >= n {
			idx = n - 1
		}
		return active[idx]
	case PlacementTiled:
		return active[(x/tileSize+y/tileSize)%n]
	default:
		return active[0]
	}
}

// Glyph returns the motif glyph for (x, y).
func (m Motif) Glyph(x, y int) string {
	return m.Glyphs[(x+y)%len(m.Glyphs)]
}

// MotifSelection is an ordered set of motif ids that is never empty.
type MotifSelection struct {
	ids []string
}

// NewMotifSelection builds a selection, dropping duplicates. An empty input
// yields the first global motif.
func NewMotifSelection(ids ...string) MotifSelection {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		out = append(out, Motifs[0].ID)
	}
	return MotifSelection{ids: out}
}

// IDs returns a copy of the selected ids in selection order.
func (s MotifSelection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Contains reports whether id is selected.
func (s MotifSelection) Contains(id string) bool {
	for _, have := range s.ids {
		if have == id {
			return true
		}
	}
	return false
}

// Toggle adds id when absent and removes it when present. Removing the last
// remaining id leaves the selection unchanged.
func (s MotifSelection) Toggle(id string) MotifSelection {
	if !s.Contains(id) {
		next := append(s.IDs(), id)
		return MotifSelection{ids: next}
	}

	next := make([]string, 0, len(s.ids))
	for _, have := range s.ids {
		if have != id {
			next = append(next, have)
		}
	}
	if len(next) == 0 {
		return MotifSelection{ids: []string{id}}
	}
	return MotifSelection{ids: next}
}
