package domain

// Config represents the main application configuration.
type Config struct {
	Parser  ParserConfig  `mapstructure:"parser"`
	PRS     PRSConfig     `mapstructure:"prs"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ParserConfig represents genotype file parser configuration.
type ParserConfig struct {
	// MaxLineBytes bounds a single data line; raw exports keep lines short,
	// so anything past this is treated as malformed input.
	MaxLineBytes int `mapstructure:"max_line_bytes"`
}

// PRSConfig represents polygenic risk engine configuration.
type PRSConfig struct {
	HighRiskThreshold float64 `mapstructure:"high_risk_threshold"` // percentile cutoff for the traits report
	CacheSize         int     `mapstructure:"cache_size"`          // LRU entries for computed results
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "text"
	Output string `mapstructure:"output"` // "stdout" or "stderr"
}
