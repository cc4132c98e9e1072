// Package config loads the node's JSON configuration file once at
// boot and applies the environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config is the full set of boot-time settings. Unknown JSON keys are
// ignored by encoding/json by default.
type Config struct {
	DeviceID        string  `json:"device_id"`
	Threshold       float64 `json:"threshold"`
	SleepTimeoutSec int     `json:"sleep_timeout_sec"`

	GRPCPort        string `json:"-"`
	GRPCTarget      string `json:"-"`
	HEFPath         string `json:"-"`
	LowlightEnhance bool   `json:"-"`
	WakeUpTarget    string `json:"-"`
	ForwardTarget   string `json:"-"`
	VideoPath       string `json:"-"`
}

// Defaults returns the documented fallback configuration. Used
// whenever the file is absent, unreadable, or malformed.
func Defaults() *Config {
	return &Config{
		Threshold:       0.5,
		SleepTimeoutSec: 300,
		GRPCPort:        "50051",
		WakeUpTarget:    "192.168.100.59:50050",
	}
}

// Load reads path, falling back to Defaults() on any read or parse
// error — a malformed config file is never fatal. If device_id is
// absent it is generated from the hostname and the current epoch
// second and written back to path.
func Load(path string) *Config {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			cfg = Defaults()
		}
	}

	cfg.ApplyEnv()
	Validate(cfg)

	if cfg.DeviceID == "" {
		cfg.DeviceID = generateDeviceID()
		save(path, cfg)
	}

	return cfg
}

func generateDeviceID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "edgevision"
	}
	return fmt.Sprintf("%s-%d", host, time.Now().Unix())
}

func save(path string, cfg *Config) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}

// ApplyEnv layers the recognized environment variables on top of cfg,
// overriding any value the file set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GRPC_PORT"); v != "" {
		c.GRPCPort = v
	}
	if v := os.Getenv("GRPC_TARGET"); v != "" {
		c.GRPCTarget = v
	}
	if v := os.Getenv("HEF_PATH"); v != "" {
		c.HEFPath = v
	}
	if v := os.Getenv("LOWLIGHT_ENHANCE"); v == "1" {
		c.LowlightEnhance = true
	}
	if v := os.Getenv("DETECTION_THRESHOLD"); v != "" {
		if f, err := parseFloat(v); err == nil {
			c.Threshold = f
		}
	}
	if v := os.Getenv("WAKEUP_TARGET"); v != "" {
		c.WakeUpTarget = v
	}
	if v := os.Getenv("FORWARD_TARGET"); v != "" {
		c.ForwardTarget = v
	}
	if v := os.Getenv("VIDEO_PATH"); v != "" {
		c.VideoPath = v
	}
}

func parseFloat(s string) (float64, error) {
	var f float64
	_, err := fmt.Sscanf(s, "%g", &f)
	return f, err
}
