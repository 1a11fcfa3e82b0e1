package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"timetable-server/models"
)

// Redis defaults
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Portal defaults
const PORTAL_ENDPOINT_BASE = "https://portal.kuzstu.ru/api"
const DEFAULT_GROUPS = "6668:ЦСб-231"

// Server and refresher defaults
const HTTP_ADDRESS = ":8080"
const REFRESH_SCHEDULE = "@every 6h"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const STUDENT_SCHEDULE_RESOURCE = "student_schedule.json"

// Config holds every setting read from the environment.
type Config struct {
	Env                string         `validate:"required"`
	PortalEndpointBase string         `validate:"required,url"`
	Groups             []models.Group `validate:"required,min=1,dive"`
	RedisAddress       string         `validate:"required,hostname_port"`
	RedisPassword      string
	RedisDB            int    `validate:"gte=0"`
	HTTPAddress        string `validate:"required"`
	RefreshSchedule    string `validate:"required"`
}

// IsProd reports whether real redis and the real portal should be used.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// GroupName returns the configured name of a group, or the ID itself when unknown.
func (c *Config) GroupName(groupID string) string {
	for _, g := range c.Groups {
		if g.ID == groupID {
			return g.Name
		}
	}
	return groupID
}

// Load reads .env (if present) and the process environment into a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(filepath.Join(BaseDir(), ".env")); err != nil {
		log.Println("[Config] No .env file found, using system environment")
	} else {
		log.Println("[Config] Loaded .env file")
	}

	groups, err := ParseGroups(getEnv("TIMETABLE_GROUPS", DEFAULT_GROUPS))
	if err != nil {
		return nil, err
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", strconv.Itoa(REDIS_DB)))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "dev"),
		PortalEndpointBase: getEnv("PORTAL_ENDPOINT_BASE", PORTAL_ENDPOINT_BASE),
		Groups:             groups,
		RedisAddress:       getEnv("REDIS_ADDRESS", REDIS_DB_ADDRESS),
		RedisPassword:      getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:            redisDB,
		HTTPAddress:        getEnv("HTTP_ADDRESS", HTTP_ADDRESS),
		RefreshSchedule:    getEnv("REFRESH_SCHEDULE", REFRESH_SCHEDULE),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Printf("[Config] env=%s portal=%s groups=%d redis=%s", cfg.Env, cfg.PortalEndpointBase, len(cfg.Groups), cfg.RedisAddress)
	return cfg, nil
}

// ParseGroups parses "id:name,id:name". A missing name falls back to the ID.
func ParseGroups(value string) ([]models.Group, error) {
	var groups []models.Group
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, name, found := strings.Cut(entry, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("invalid group entry %q: empty group id", entry)
		}
		name = strings.TrimSpace(name)
		if !found || name == "" {
			name = id
		}
		groups = append(groups, models.Group{ID: id, Name: name})
	}
	return groups, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
