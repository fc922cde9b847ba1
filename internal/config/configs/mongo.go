package configs

import "time"

// Mongo holds configuration for connecting to the MongoDB document store.
// URL is a standard mongodb:// or mongodb+srv:// connection string and Name
// selects the database holding the agency collections.
type Mongo struct {
	URL  string `env:"URL" envDefault:"mongodb://localhost:27017"`
	Name string `env:"NAME" envDefault:"agency"`
	// ConnectTimeout bounds the initial connect and ping.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
	// Seed inserts demo documents on startup when the client collection is
	// empty. Only honoured by main.
	Seed bool `env:"SEED" envDefault:"false"`

	// URLSet reports whether URL came from the environment rather than
	// from its default. Filled in by config.Load.
	URLSet bool
}
