package config

// Config represents the complete configuration for bezel.
type Config struct {
	// Window controls the shell window geometry.
	Window WindowConfig `mapstructure:"window" yaml:"window" toml:"window" json:"window"`
	// Tabs controls how new tabs are opened and labelled.
	Tabs TabsConfig `mapstructure:"tabs" yaml:"tabs" toml:"tabs" json:"tabs"`
	// Sidebar controls the slide-in tab list overlay.
	Sidebar SidebarConfig `mapstructure:"sidebar" yaml:"sidebar" toml:"sidebar" json:"sidebar"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// WindowConfig holds the initial window size and the bezel inset.
type WindowConfig struct {
	// Width is the initial window width in pixels.
	Width int `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=200,default=1200"`
	// Height is the initial window height in pixels.
	Height int `mapstructure:"height" yaml:"height" toml:"height" json:"height" jsonschema:"minimum=150,default=800"`
	// BezelWidth is the border kept around page content on every side.
	// It doubles as the hover zone that reveals the sidebar.
	BezelWidth int `mapstructure:"bezel_width" yaml:"bezel_width" toml:"bezel_width" json:"bezel_width" jsonschema:"minimum=0,maximum=64,default=8"`
}

// TabsConfig holds tab defaults.
type TabsConfig struct {
	// DefaultURL is opened by tabs created without an explicit URL.
	DefaultURL string `mapstructure:"default_url" yaml:"default_url" toml:"default_url" json:"default_url" jsonschema:"default=https://www.google.com"`
	// TitleMaxLength is the number of characters a tab title may use before
	// it is truncated with an ellipsis.
	TitleMaxLength int `mapstructure:"title_max_length" yaml:"title_max_length" toml:"title_max_length" json:"title_max_length" jsonschema:"minimum=4,default=30"`
}

// SidebarConfig holds the overlay geometry and animation timing.
type SidebarConfig struct {
	Width int `mapstructure:"width" yaml:"width" toml:"width" json:"width" jsonschema:"minimum=120,default=280"`
	// AnimationDurationMs is the slide duration. Zero disables the animation.
	AnimationDurationMs int `mapstructure:"animation_duration_ms" yaml:"animation_duration_ms" toml:"animation_duration_ms" json:"animation_duration_ms" jsonschema:"minimum=0,maximum=2000,default=200"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}
