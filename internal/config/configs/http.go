package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to, ShutdownTimeout bounds graceful
// shutdown and CORSOrigins lists the origins allowed by the CORS
// middleware.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8000.
	Port uint16 `env:"PORT" envDefault:"8000"`
	// ShutdownTimeout is how long in-flight requests get after a
	// termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// CORSOrigins is a comma separated list of allowed origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}
