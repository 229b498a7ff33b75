package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headers and highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - successful creation
	Edit   string `yaml:"edit"`   // Blue - updates and moves
	Delete string `yaml:"delete"` // Red - delete confirmations

	// Board and card markers
	Pinned    string `yaml:"pinned"`
	Completed string `yaml:"completed"`
	Repeated  string `yaml:"repeated"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.Pinned, preset.Pinned)
	fill(&c.Completed, preset.Completed)
	fill(&c.Repeated, preset.Repeated)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overrides colors with the non-empty values of other.
// A different preset resets every color to that preset first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}

	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.Accent, other.Accent)
	set(&c.Create, other.Create)
	set(&c.Edit, other.Edit)
	set(&c.Delete, other.Delete)
	set(&c.Pinned, other.Pinned)
	set(&c.Completed, other.Completed)
	set(&c.Repeated, other.Repeated)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.InfoFg, other.InfoFg)
	set(&c.WarningFg, other.WarningFg)
	set(&c.ErrorFg, other.ErrorFg)
}
