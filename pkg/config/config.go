package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// Config holds the configuration for the towerlight simulator
type Config struct {
	// Service configuration
	ServiceName string
	LogLevel    string

	// Window configuration
	WindowWidth  int
	WindowHeight int

	// Building configuration
	Floors        int
	RoomsPerFloor int
	LayoutFile    string
	Seed          int64

	// Simulation configuration
	SpeedLevel int
	ShowDebug  bool

	// Solar mode configuration
	Solar     bool
	Latitude  float64
	Longitude float64
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		ServiceName:   "towerlight",
		LogLevel:      "info",
		WindowWidth:   640,
		WindowHeight:  900,
		Floors:        15,
		RoomsPerFloor: 5,
		LayoutFile:    "",
		Seed:          0,
		SpeedLevel:    1,
		ShowDebug:     false,
		Solar:         false,
		// Helsinki coordinates
		Latitude:  60.1695,
		Longitude: 24.9354,
	}
}

// LoadFromEnv loads configuration from environment variables with TOWERLIGHT_ prefix
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("TOWERLIGHT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("TOWERLIGHT_WINDOW_WIDTH"); v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			c.WindowWidth = w
		}
	}
	if v := os.Getenv("TOWERLIGHT_WINDOW_HEIGHT"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			c.WindowHeight = h
		}
	}
	if v := os.Getenv("TOWERLIGHT_FLOORS"); v != "" {
		if floors, err := strconv.Atoi(v); err == nil {
			c.Floors = floors
		}
	}
	if v := os.Getenv("TOWERLIGHT_ROOMS_PER_FLOOR"); v != "" {
		if rooms, err := strconv.Atoi(v); err == nil {
			c.RoomsPerFloor = rooms
		}
	}
	if v := os.Getenv("TOWERLIGHT_LAYOUT_FILE"); v != "" {
		c.LayoutFile = v
	}
	if v := os.Getenv("TOWERLIGHT_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv("TOWERLIGHT_SPEED_LEVEL"); v != "" {
		if level, err := strconv.Atoi(v); err == nil {
			c.SpeedLevel = level
		}
	}
	if v := os.Getenv("TOWERLIGHT_SHOW_DEBUG"); v != "" {
		if show, err := strconv.ParseBool(v); err == nil {
			c.ShowDebug = show
		}
	}
	if v := os.Getenv("TOWERLIGHT_SOLAR"); v != "" {
		if solar, err := strconv.ParseBool(v); err == nil {
			c.Solar = solar
		}
	}
	if v := os.Getenv("TOWERLIGHT_LATITUDE"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			c.Latitude = lat
		}
	}
	if v := os.Getenv("TOWERLIGHT_LONGITUDE"); v != "" {
		if lon, err := strconv.ParseFloat(v, 64); err == nil {
			c.Longitude = lon
		}
	}
}

// LoadFromFlags parses command-line flags and overrides config values
func (c *Config) LoadFromFlags() {
	pflag.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")

	pflag.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "Window width in pixels")
	pflag.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "Window height in pixels")

	pflag.IntVar(&c.Floors, "floors", c.Floors, "Number of building floors")
	pflag.IntVar(&c.RoomsPerFloor, "rooms-per-floor", c.RoomsPerFloor, "Rooms per floor")
	pflag.StringVar(&c.LayoutFile, "layout", c.LayoutFile, "YAML building layout file (random dwellers when empty)")
	pflag.Int64Var(&c.Seed, "seed", c.Seed, "Random seed for dweller generation (0 = time-based)")

	pflag.IntVar(&c.SpeedLevel, "speed", c.SpeedLevel, "Initial simulation speed level (minimum 1)")
	pflag.BoolVar(&c.ShowDebug, "debug-overlay", c.ShowDebug, "Start with the debug overlay visible")

	pflag.BoolVar(&c.Solar, "solar", c.Solar, "Derive sunrise/sunset from geographic position instead of fixed hours")
	pflag.Float64Var(&c.Latitude, "latitude", c.Latitude, "Geographic latitude for solar mode")
	pflag.Float64Var(&c.Longitude, "longitude", c.Longitude, "Geographic longitude for solar mode")

	pflag.Parse()
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service name is required")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.Floors <= 0 {
		return fmt.Errorf("floors must be positive, got %d", c.Floors)
	}
	if c.RoomsPerFloor <= 0 {
		return fmt.Errorf("rooms per floor must be positive, got %d", c.RoomsPerFloor)
	}
	if c.SpeedLevel < 1 {
		return fmt.Errorf("speed level must be at least 1, got %d", c.SpeedLevel)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %f", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %f", c.Longitude)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
