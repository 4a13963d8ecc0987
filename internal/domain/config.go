package domain

// Config mirrors ~/.orgai/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version" json:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences" json:"preferences"`
	Models              []ModelDefinition `yaml:"models" json:"models"`
	Listing             ListingSettings   `yaml:"listing" json:"listing"`
	Execution           ExecutionSettings `yaml:"execution" json:"execution"`
	Logging             LoggingSettings   `yaml:"logging" json:"logging"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel string `yaml:"default_model" json:"default_model"`
	// TimeoutSeconds bounds the whole run; zero leaves every step unbounded.
	TimeoutSeconds int `yaml:"timeout" json:"timeout"`
}

// ListingSettings configures the directory listing utility.
type ListingSettings struct {
	Command     string   `yaml:"command" json:"command"`
	Args        []string `yaml:"args" json:"args"`
	EmptyMarker string   `yaml:"empty_marker" json:"empty_marker"`
}

// ExecutionSettings controls how approved scripts run.
type ExecutionSettings struct {
	Shell     string   `yaml:"shell" json:"shell"`
	ShellArgs []string `yaml:"shell_args" json:"shell_args"`
}

// LoggingSettings configures the optional rotating log file.
type LoggingSettings struct {
	File       string `yaml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
}
