package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Snapshot encodings understood by the server
const (
	EncodingJSON    = "json"
	EncodingMsgpack = "msgpack"
)

// Defaults
const (
	DefaultPort            = "3000"
	DefaultTickRate        = 60
	DefaultSendBuffer      = 256
	DefaultSlowClientDrops = 30
	DefaultEnvFile         = ".env"
)

// Config holds the runtime settings of the server
type Config struct {
	Port            string
	TickRate        int    // Simulation ticks per second
	Encoding        string // EncodingJSON or EncodingMsgpack
	SendBuffer      int    // Per-client outbound queue length
	SlowClientDrops int    // Consecutive dropped frames before a client is evicted
}

// TickInterval returns the time between two simulation ticks
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("tick rate %d out of range [1, 240]", c.TickRate)
	}
	if c.Encoding != EncodingJSON && c.Encoding != EncodingMsgpack {
		return fmt.Errorf("unknown encoding %q", c.Encoding)
	}
	if c.SendBuffer < 1 {
		return fmt.Errorf("send buffer %d must be positive", c.SendBuffer)
	}
	if c.SlowClientDrops < 1 {
		return fmt.Errorf("slow client drops %d must be positive", c.SlowClientDrops)
	}
	return nil
}

// Load builds the configuration from an optional .env file, the
// SOCCER_* environment variables and finally the command line flags.
func Load(args []string) (*Config, error) {
	fset := flag.NewFlagSet("soccer-web", flag.ContinueOnError)
	envFile := fset.String("env-file", DefaultEnvFile, "Path to an optional .env file")
	port := fset.String("port", "", "Server port")
	tickRate := fset.Int("tick-rate", 0, "Simulation ticks per second")
	encoding := fset.String("encoding", "", "Snapshot encoding: json or msgpack")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	if err := godotenv.Load(*envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", *envFile, err)
		}
	} else {
		log.Printf("Loaded environment from %s", *envFile)
	}

	cfg := &Config{
		Port:     getEnv("SOCCER_PORT", DefaultPort),
		Encoding: getEnv("SOCCER_ENCODING", EncodingJSON),
	}

	var err error
	if cfg.TickRate, err = getEnvInt("SOCCER_TICK_RATE", DefaultTickRate); err != nil {
		return nil, err
	}
	if cfg.SendBuffer, err = getEnvInt("SOCCER_SEND_BUFFER", DefaultSendBuffer); err != nil {
		return nil, err
	}
	if cfg.SlowClientDrops, err = getEnvInt("SOCCER_SLOW_CLIENT_DROPS", DefaultSlowClientDrops); err != nil {
		return nil, err
	}

	// Flags win over the environment
	if *port != "" {
		cfg.Port = *port
	}
	if *tickRate != 0 {
		cfg.TickRate = *tickRate
	}
	if *encoding != "" {
		cfg.Encoding = *encoding
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
