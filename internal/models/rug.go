package models

// RugRequest is the body shared by every /api/v1/rugs endpoint.
// Pointer fields distinguish "absent" from the zero value so defaults apply.
type RugRequest struct {
	Width           *int          `json:"width,omitempty"`
	Height          *int          `json:"height,omitempty"`
	Style           string        `json:"style,omitempty"`
	Palette         string        `json:"palette,omitempty"`
	CustomColors    *CustomColors `json:"custom_colors,omitempty"`
	UseCustomColors bool          `json:"use_custom_colors"`
	HasMedallion    *bool         `json:"has_medallion,omitempty"`
	Motifs          []string      `json:"motifs,omitempty"`
	PlacementMode   string        `json:"placement_mode,omitempty"`
	UseAITheme      bool          `json:"use_ai_theme"`
	Characters      *Characters   `json:"characters,omitempty"`
	StylePreset     bool          `json:"style_preset"`
}

// CustomColors is the manual palette as sent by clients
type CustomColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Border     string `json:"border"`
}

// Characters overrides the five glyphs of a grid
type Characters struct {
	Border      string `json:"border"`
	InnerBorder string `json:"innerBorder"`
	Field       string `json:"field"`
	Medallion   string `json:"medallion"`
	Accent      string `json:"accent"`
}

// RugCell is one rendered cell with its color resolved
type RugCell struct {
	Char  string `json:"char"`
	Role  string `json:"role"`
	Color string `json:"color"`
}

// ThemeInfo is the theme summary returned with a rug
type ThemeInfo struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Characters  Characters `json:"characters"`
	Source      string     `json:"source"`
}

// RugResponse is returned by POST /api/v1/rugs
type RugResponse struct {
	RequestID  string      `json:"request_id"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Style      string      `json:"style"`
	Palette    string      `json:"palette"`
	Background string      `json:"background"`
	IsLight    bool        `json:"is_light"`
	Theme      ThemeInfo   `json:"theme"`
	Rows       [][]RugCell `json:"rows"`
	Text       string      `json:"text"`
}

// ThemeRequest is the body of POST /api/v1/themes
type ThemeRequest struct {
	Style string `json:"style" binding:"required"`
	// Key scopes the stale-response guard; requests sharing a key only publish the newest answer
	Key string `json:"key"`
}

// ToggleRequest is the body of POST /api/v1/motifs/toggle
type ToggleRequest struct {
	Selected []string `json:"selected"`
	ID       string   `json:"id" binding:"required"`
}

// ToggleResponse carries the new motif selection
type ToggleResponse struct {
	Selected []string `json:"selected"`
}
