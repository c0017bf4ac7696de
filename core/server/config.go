package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, uploads included.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"10"`
}

// ListenAddr returns the address passed to fiber's Listen.
func (c Config) ListenAddr() string {
	return ":" + c.Port
}

// BodyLimit returns the body limit in bytes, defaulting to 10 MiB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 10 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
