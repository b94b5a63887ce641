package config

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		Scan: Scan{
			MinFileSize: "50MB",
			MaxDepth:    6,
		},
		ProtectedPaths:      []string{},
		ProtectedExtensions: []string{},
		History: HistoryConfig{
			Enabled: true,
		},
		DryRun:  true, // advisory tool - deletion requires explicit opt-in
		Verbose: false,
	}
}
