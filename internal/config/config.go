package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ChannelSecret string
	ChannelToken  string
	DBDSN         string
	Environment   string
	Port          string
	CoachIDs      []string
	OpenWeekdays  []time.Weekday
	ReminderHour  int
	WeeksAhead    int
}

// Load reads configuration from the environment, with .env as a fallback
// for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		ChannelSecret: os.Getenv("LINE_CHANNEL_SECRET"),
		ChannelToken:  os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		DBDSN:         os.Getenv("DB_DSN"),
		Environment:   os.Getenv("ENV"),
		Port:          os.Getenv("PORT"),
		ReminderHour:  20,
		WeeksAhead:    2,
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.ChannelSecret == "" {
		return nil, fmt.Errorf("LINE_CHANNEL_SECRET is required but not set")
	}
	if cfg.ChannelToken == "" {
		return nil, fmt.Errorf("LINE_CHANNEL_ACCESS_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	for _, id := range strings.Split(os.Getenv("COACH_IDS"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			cfg.CoachIDs = append(cfg.CoachIDs, id)
		}
	}
	if len(cfg.CoachIDs) == 0 {
		return nil, fmt.Errorf("COACH_IDS is required but not set")
	}

	weekdays, err := parseWeekdays(os.Getenv("OPEN_WEEKDAYS"))
	if err != nil {
		return nil, err
	}
	cfg.OpenWeekdays = weekdays

	if v := os.Getenv("REMINDER_HOUR"); v != "" {
		hour, err := strconv.Atoi(v)
		if err != nil || hour < 0 || hour > 23 {
			return nil, fmt.Errorf("REMINDER_HOUR must be 0-23, got %q", v)
		}
		cfg.ReminderHour = hour
	}

	if v := os.Getenv("WEEKS_AHEAD"); v != "" {
		weeks, err := strconv.Atoi(v)
		if err != nil || weeks < 1 {
			return nil, fmt.Errorf("WEEKS_AHEAD must be a positive integer, got %q", v)
		}
		cfg.WeeksAhead = weeks
	}

	return cfg, nil
}

// parseWeekdays parses "1,2,3,4" (time.Weekday numbering, Sunday = 0).
// Empty input falls back to Monday through Thursday.
func parseWeekdays(s string) ([]time.Weekday, error) {
	if s == "" {
		return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday}, nil
	}

	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("OPEN_WEEKDAYS: bad weekday %q", part)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}
