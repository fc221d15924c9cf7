package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg                Pg      `yaml:"pg"`
	UploadsDir        string  `yaml:"uploads_dir"`
	SeedPath          string  `yaml:"seed_path"`
	LogLevel          string  `yaml:"log_level"`
	LogJSON           bool    `yaml:"log_json"`
	SessionTTLMinutes int     `yaml:"session_ttl_minutes"`
	SubmitPerMinute   float64 `yaml:"submit_per_minute"` // anonymous submission rate per client IP
	SubmitBurst       float64 `yaml:"submit_burst"`
	MaxAttachmentMiB  int64   `yaml:"max_attachment_mib"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	AdminKeyHash string `yaml:"admin_key_hash"` // bcrypt hash; empty disables every gated endpoint
	SessionKey   string `yaml:"session_key"`
}

func (c *Config) AdminKeyHash() string {
	return c.private.AdminKeyHash
}

func (c *Config) SessionKey() string {
	return c.private.SessionKey
}

func (c *Config) SessionTTL() time.Duration {
	if c.Public.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.Public.SessionTTLMinutes) * time.Minute
}

// MaxAttachmentBytes returns the upload size cap, defaulting to 8 MiB.
func (c *Config) MaxAttachmentBytes() int64 {
	if c.Public.MaxAttachmentMiB <= 0 {
		return 8 << 20
	}
	return c.Public.MaxAttachmentMiB << 20
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
