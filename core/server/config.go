package server

import "strconv"

// Config holds configuration for the inspector HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ScreenWidth and ScreenHeight size the default view of the headless renderer.
	ScreenWidth  int `mapstructure:"screen_width" default:"640"`
	ScreenHeight int `mapstructure:"screen_height" default:"480"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// IsValidPort checks that Port is a usable TCP port number.
func (c Config) IsValidPort() bool {
	n, err := strconv.Atoi(c.Port)
	return err == nil && n > 0 && n < 65536
}
