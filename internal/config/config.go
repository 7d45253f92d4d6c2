// path: internal/config/config.go
package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Server struct {
		Host string `envconfig:"SERVER_HOST"`
		Port string `envconfig:"SERVER_PORT" default:"8080"`
	}
	Database struct {
		Address      string `envconfig:"MONGO_ADDRESS"`
		DatabaseName string `envconfig:"MONGO_DATABASE" default:"chess_arbiter"`
		Collection   string `envconfig:"MONGO_COLLECTION" default:"replays"`
	}
	Replay struct {
		Workers int `envconfig:"REPLAY_WORKERS" default:"4"`
	}
	Debug bool `envconfig:"DEBUG"`
}

// ArchiveEnabled reports whether a result archive is configured.
// Without a database address the replay tooling runs archive-free.
func (c *Configuration) ArchiveEnabled() bool {
	return c.Database.Address != ""
}

// ServerAddr joins host and port for net listeners.
func (c *Configuration) ServerAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func InitConfig() (*Configuration, error) {
	config := &Configuration{}
	err := envconfig.Process("", config)
	return config, err
}
