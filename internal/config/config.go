package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"weather-station/internal/weather"
)

// UnsetCoordinate marks a latitude or longitude that has not been geocoded
// yet. Saving a new location resets both coordinates to it.
const UnsetCoordinate = -181

// PlaceholderAPIKey ships in factory settings; the station treats it the
// same as no key at all.
const PlaceholderAPIKey = "APIKEY"

// Supported forecast providers.
const (
	ProviderOpenWeatherMap = "openweathermap"
	ProviderOpenMeteo      = "openmeteo"
	ProviderWeatherAPI     = "weatherapi"
)

var validate = validator.New()

// Settings holds every user and operator configurable value. The station
// persists them as a JSON file; environment variables override on load.
type Settings struct {
	// Wifi credentials are carried for the setup form; joining a network is
	// the host system's business.
	SSID     string `json:"ssid" validate:"max=63"`
	Password string `json:"password" validate:"max=63"`

	APIKey        string             `json:"api_key" validate:"max=63"`
	GoogleAPIKey  string             `json:"google_api_key,omitempty"`
	WeatherAPIKey string             `json:"weatherapi_key,omitempty"`
	Provider      string             `json:"provider" validate:"oneof=openweathermap openmeteo weatherapi"`
	Location      string             `json:"location" validate:"required,max=127"`
	Latitude      float64            `json:"latitude" validate:"gte=-181,lte=90"`
	Longitude     float64            `json:"longitude" validate:"gte=-181,lte=180"`
	Units         weather.UnitSystem `json:"units" validate:"oneof=M I"`

	RefreshMinutes int `json:"refresh_minutes" validate:"min=1"`
	WakeupHour     int `json:"wakeup_hour" validate:"min=0,max=23"`
	SleepHour      int `json:"sleep_hour" validate:"min=1,max=24"`

	DisplayWidth  int    `json:"display_width" validate:"min=1"`
	DisplayHeight int    `json:"display_height" validate:"min=1"`
	Output        string `json:"output" validate:"oneof=png epd"`
	OutputPath    string `json:"output_path"`

	// Port for the setup web server.
	Port string `json:"port"`

	// Last-good forecast retention.
	StoreMaxHistory    int `json:"store_max_history" validate:"min=0"`
	StoreMaxAgeMinutes int `json:"store_max_age_minutes" validate:"min=0"`

	// Overrides for hosts without a battery gauge or wireless interface.
	// Unset means read the hardware.
	BatteryVolts *float64 `json:"battery_volts,omitempty"`
	RSSI         *int     `json:"rssi,omitempty"`

	// DeviceID is generated on first boot and kept across saves.
	DeviceID string `json:"device_id"`
}

// Defaults returns the first-boot settings.
func Defaults() Settings {
	return Settings{
		SSID:               "SSID",
		Password:           "Password",
		APIKey:             PlaceholderAPIKey,
		Provider:           ProviderOpenWeatherMap,
		Location:           "Chicago,IL,US",
		Latitude:           UnsetCoordinate,
		Longitude:          UnsetCoordinate,
		Units:              weather.Metric,
		RefreshMinutes:     60,
		WakeupHour:         0,
		SleepHour:          24,
		DisplayWidth:       960,
		DisplayHeight:      540,
		Output:             "png",
		OutputPath:         "weather.png",
		Port:               "8080",
		StoreMaxHistory:    24,
		StoreMaxAgeMinutes: 180,
	}
}

// Load reads the settings file, applies environment overrides and validates
// the result. A missing file starts from defaults; the file is created as
// soon as a device id has to be persisted.
func Load(path string) (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse settings file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		log.Printf("INFO: settings file %s not found, starting from defaults", path)
	default:
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.DeviceID == "" {
		cfg.DeviceID = uuid.NewString()
		if err := cfg.Save(path); err != nil {
			return nil, fmt.Errorf("persist device id: %w", err)
		}
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &cfg, nil
}

// Save writes the settings as indented JSON so the file stays hand-editable.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file %s: %w", path, err)
	}
	return nil
}

// Validate checks the current values, for callers mutating settings after
// load.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// CoordinatesResolved reports whether a geocoded position is stored.
func (s *Settings) CoordinatesResolved() bool {
	return s.Latitude != UnsetCoordinate && s.Longitude != UnsetCoordinate
}

// ResetCoordinates marks the stored position as stale so the next refresh
// geocodes the location string again.
func (s *Settings) ResetCoordinates() {
	s.Latitude = UnsetCoordinate
	s.Longitude = UnsetCoordinate
}

// RefreshInterval returns the refresh cadence as a duration.
func (s *Settings) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshMinutes) * time.Minute
}

// StoreMaxAge returns how long a cached forecast may substitute for a failed
// fetch.
func (s *Settings) StoreMaxAge() time.Duration {
	return time.Duration(s.StoreMaxAgeMinutes) * time.Minute
}

// Awake reports whether the hour falls inside the wake window
// [WakeupHour, SleepHour). A SleepHour of 24 keeps the station awake all day.
func (s *Settings) Awake(hour int) bool {
	return hour >= s.WakeupHour && hour < s.SleepHour
}

func applyEnv(cfg *Settings) {
	cfg.APIKey = getenvDefault("OPENWEATHER_API_KEY", cfg.APIKey)
	cfg.GoogleAPIKey = getenvDefault("GOOGLE_API_KEY", cfg.GoogleAPIKey)
	cfg.WeatherAPIKey = getenvDefault("WEATHERAPI_KEY", cfg.WeatherAPIKey)
	cfg.Provider = getenvDefault("WEATHER_PROVIDER", cfg.Provider)
	cfg.Location = getenvDefault("WEATHER_LOCATION", cfg.Location)
	if v := os.Getenv("WEATHER_UNITS"); v != "" {
		cfg.Units = weather.UnitSystem(v)
	}
	cfg.RefreshMinutes = getenvInt("REFRESH_MINUTES", cfg.RefreshMinutes)
	cfg.Port = getenvDefault("PORT", cfg.Port)
	cfg.Output = getenvDefault("OUTPUT", cfg.Output)
	cfg.OutputPath = getenvDefault("OUTPUT_PATH", cfg.OutputPath)
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", cfg.StoreMaxHistory)
	cfg.StoreMaxAgeMinutes = getenvInt("STORE_MAX_AGE_MINUTES", cfg.StoreMaxAgeMinutes)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
