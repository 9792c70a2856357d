package config

// GlobalFlags contains common flags used across commands
type GlobalFlags struct {
	// Output and logging flags
	Verbose bool
	NoColor bool
	Format  string

	// ConfigPath overrides the configuration file lookup.
	ConfigPath string

	// Yes skips interactive confirmation prompts.
	Yes bool
}

// Global is the shared instance of GlobalFlags
var Global = GlobalFlags{Format: "table"}
