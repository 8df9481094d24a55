package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/qnkhuat/blockterm/pkg/board"
)

const (
	DefaultEnvFile = ".env"
	DefaultTick    = 800 * time.Millisecond
	DefaultTheme   = "basic"
	DefaultSSHAddr = ":2222"
	DefaultHostKey = "blockterm_host_key"

	MinWidth  = 4
	MinHeight = 4
	MaxWidth  = 64
	MaxHeight = 64

	MinTick = 50 * time.Millisecond
)

var (
	ErrInvalidSize     = errors.New("config: invalid board size")
	ErrInvalidInterval = errors.New("config: invalid tick interval")
)

type Config struct {
	Width  int
	Height int
	Tick   time.Duration

	// Seed 0 means seed from the clock.
	Seed int64

	Theme      string
	ThemesFile string
	Sound      bool

	LogFile  string
	LogLevel int

	SSHAddr     string
	HostKeyFile string
}

func Default() Config {
	return Config{
		Width:       board.DefaultWidth,
		Height:      board.DefaultHeight,
		Tick:        DefaultTick,
		Theme:       DefaultTheme,
		SSHAddr:     DefaultSSHAddr,
		HostKeyFile: DefaultHostKey,
	}
}

// Load reads BLOCKTERM_* variables on top of the defaults. envFile is loaded
// first when it exists; variables already set in the environment win.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	c := Default()

	var err error
	if c.Width, err = GetEnvAsInt("BLOCKTERM_WIDTH", c.Width); err != nil {
		return Config{}, err
	}
	if c.Height, err = GetEnvAsInt("BLOCKTERM_HEIGHT", c.Height); err != nil {
		return Config{}, err
	}

	tick, err := GetEnvAsInt("BLOCKTERM_TICK_MS", int(c.Tick/time.Millisecond))
	if err != nil {
		return Config{}, err
	}
	c.Tick = time.Duration(tick) * time.Millisecond

	seed, err := GetEnvAsInt("BLOCKTERM_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	c.Seed = int64(seed)

	if c.Sound, err = GetEnvAsBool("BLOCKTERM_SOUND", c.Sound); err != nil {
		return Config{}, err
	}
	if c.LogLevel, err = GetEnvAsInt("BLOCKTERM_LOG_LEVEL", c.LogLevel); err != nil {
		return Config{}, err
	}

	c.Theme = GetEnv("BLOCKTERM_THEME", c.Theme)
	c.ThemesFile = GetEnv("BLOCKTERM_THEMES_FILE", c.ThemesFile)
	c.LogFile = GetEnv("BLOCKTERM_LOG", c.LogFile)
	c.SSHAddr = GetEnv("BLOCKTERM_SSH_ADDR", c.SSHAddr)
	c.HostKeyFile = GetEnv("BLOCKTERM_HOST_KEY", c.HostKeyFile)

	return c, nil
}

func (c Config) Validate() error {
	if c.Width < MinWidth || c.Width > MaxWidth || c.Height < MinHeight || c.Height > MaxHeight {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}

	if c.Tick < MinTick {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.Tick)
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue, fmt.Errorf("config: %s: %w", key, err)
	}
	return value, nil
}

func GetEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue, fmt.Errorf("config: %s: %w", key, err)
	}
	return value, nil
}
