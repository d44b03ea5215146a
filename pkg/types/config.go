package types

// Transport names accepted in Config.Transport
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config represents the configuration for the calc-mcp server
type Config struct {
	LogLevel     string `yaml:"log_level" json:"log_level,omitempty"`
	Transport    string `yaml:"transport" json:"transport,omitempty"`
	Address      string `yaml:"address" json:"address,omitempty"`
	BaseURL      string `yaml:"base_url" json:"base_url,omitempty"`
	MaxSessions  int    `yaml:"max_sessions" json:"max_sessions,omitempty"`
	ResetOnError *bool  `yaml:"reset_on_error" json:"reset_on_error,omitempty"`
}

// ShouldResetOnError reports whether a failed command clears the calculator
func (c Config) ShouldResetOnError() bool {
	return c.ResetOnError == nil || *c.ResetOnError
}
