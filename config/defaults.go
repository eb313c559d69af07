package config

// Default file paths for chartembed.
const (
	// DefaultConfigPath is where the CLI looks for its config file.
	DefaultConfigPath = "chartembed.yaml"
)
