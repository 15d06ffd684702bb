// Package report turns solver output into charts and exportable documents.
// It is a pure formatting layer: no numeric value is altered or re-derived.
package report

// Palette carries the visual style for charts and documents. It is passed
// explicitly to every renderer; there is no ambient styling state.
type Palette struct {
	Setup      string `yaml:"setup"`
	Holding    string `yaml:"holding"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Warning    string `yaml:"warning"`
}

// DefaultPalette returns the planner's stock colour scheme.
func DefaultPalette() Palette {
	return Palette{
		Setup:      "#1d3557",
		Holding:    "#457b9d",
		Accent:     "#a8dadc",
		Background: "#f1faee",
		Warning:    "#e63946",
	}
}

// Merge overlays non-empty fields of other onto p.
func (p Palette) Merge(other Palette) Palette {
	if other.Setup != "" {
		p.Setup = other.Setup
	}
	if other.Holding != "" {
		p.Holding = other.Holding
	}
	if other.Accent != "" {
		p.Accent = other.Accent
	}
	if other.Background != "" {
		p.Background = other.Background
	}
	if other.Warning != "" {
		p.Warning = other.Warning
	}
	return p
}
