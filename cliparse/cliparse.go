package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	DefaultScale  string
	RoomTTL       time.Duration
	SweepInterval time.Duration
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var roomTTL, sweepEvery string

	fs := flag.NewFlagSet("pointsup", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DefaultScale, "scale", "", "Default estimation scale for new rooms")
	fs.StringVar(&roomTTL, "room-ttl", "", "Idle time before a room is reclaimed (0 disables)")
	fs.StringVar(&sweepEvery, "sweep-every", "", "Interval between idle-room sweeps")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3324 // default
		}
	}

	if cfg.DefaultScale == "" {
		cfg.DefaultScale = os.Getenv("DEFAULT_SCALE")
	}
	if cfg.DefaultScale == "" {
		cfg.DefaultScale = "fibonacci"
	}

	if roomTTL == "" {
		roomTTL = os.Getenv("ROOM_TTL")
	}
	if roomTTL == "" {
		cfg.RoomTTL = 24 * time.Hour
	} else {
		ttl, err := time.ParseDuration(roomTTL)
		if err != nil || ttl < 0 {
			return Config{}, fmt.Errorf("invalid room TTL %q (want a Go duration like 24h, or 0)", roomTTL)
		}
		cfg.RoomTTL = ttl
	}

	if sweepEvery == "" {
		sweepEvery = os.Getenv("SWEEP_INTERVAL")
	}
	if sweepEvery == "" {
		cfg.SweepInterval = 5 * time.Minute
	} else {
		interval, err := time.ParseDuration(sweepEvery)
		if err != nil || interval <= 0 {
			return Config{}, fmt.Errorf("invalid sweep interval %q (want a positive Go duration)", sweepEvery)
		}
		cfg.SweepInterval = interval
	}

	return cfg, nil
}
