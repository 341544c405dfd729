package config

// Environment variables that override the config file.
const (
	EnvLogLevel     = "MINDFUL_LOG_LEVEL"
	EnvLogFormat    = "MINDFUL_LOG_FORMAT"
	EnvOutputFormat = "MINDFUL_OUTPUT_FORMAT"
	EnvServerAddr   = "MINDFUL_SERVER_ADDR"
)

// ApplyEnv overlays environment variables found through lookup. Empty values
// are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
	if v, ok := lookup(EnvServerAddr); ok && v != "" {
		c.Server.Addr = v
	}
}
