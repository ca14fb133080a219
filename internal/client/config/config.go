// Package config handles configuration for the unictl admin client.
package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/unigate/internal/flagx"
	"github.com/dmitrijs2005/unigate/internal/timex"
)

// Config holds runtime settings for unictl.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// flags. Later sources take precedence.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	j := &JsonConfig{ServerEndpointAddr: cfg.ServerEndpointAddr, RequestTimeout: timex.Duration{Duration: cfg.RequestTimeout}}
	if err := json.Unmarshal(file, j); err != nil {
		return err
	}
	cfg.ServerEndpointAddr = j.ServerEndpointAddr
	cfg.RequestTimeout = j.RequestTimeout.Duration
	return nil
}

// parseFlags handles
//
//	-a string   address and port of the gRPC endpoint
//	-t int      request timeout, seconds
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("unictl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
