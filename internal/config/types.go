package config

// Settings is the optional gridcraft settings document. It configures the
// application only; layout parameters always start from their defaults.
type Settings struct {
	LogLevel  string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error disabled"`
	LogFile   string `yaml:"log_file,omitempty" validate:"omitempty,log_path"`
	Seed      int64  `yaml:"seed,omitempty"`
	AltScreen *bool  `yaml:"alt_screen,omitempty"`
	Unicode   *bool  `yaml:"unicode,omitempty"`
	Limits    Limits `yaml:"limits,omitempty"`
}

// Limits bounds the range controls.
type Limits struct {
	MaxColumns int `yaml:"max_columns,omitempty" validate:"omitempty,min=1,max=24"`
	MaxItems   int `yaml:"max_items,omitempty" validate:"omitempty,min=1,max=200"`
}

// Defaults returns the settings used when no file is supplied.
func Defaults() Settings {
	on := true
	unicode := true
	return Settings{
		LogLevel:  "info",
		AltScreen: &on,
		Unicode:   &unicode,
		Limits: Limits{
			MaxColumns: 12,
			MaxItems:   40,
		},
	}
}

// ApplyDefaults fills unset fields from Defaults.
func (s Settings) ApplyDefaults() Settings {
	d := Defaults()
	out := s
	if out.LogLevel == "" {
		out.LogLevel = d.LogLevel
	}
	if out.AltScreen == nil {
		out.AltScreen = d.AltScreen
	}
	if out.Unicode == nil {
		out.Unicode = d.Unicode
	}
	if out.Limits.MaxColumns == 0 {
		out.Limits.MaxColumns = d.Limits.MaxColumns
	}
	if out.Limits.MaxItems == 0 {
		out.Limits.MaxItems = d.Limits.MaxItems
	}
	return out
}

// UseAltScreen reports whether the TUI should take over the full screen.
func (s Settings) UseAltScreen() bool {
	return s.AltScreen == nil || *s.AltScreen
}

// UseUnicode reports whether box-drawing characters may be used.
func (s Settings) UseUnicode() bool {
	return s.Unicode == nil || *s.Unicode
}
