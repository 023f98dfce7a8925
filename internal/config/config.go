package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config is built once at startup and passed by reference to every
// component that needs it. Validate is the single point that fails fast
// when a required key is missing.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // local only
		BaseURL   string `yaml:"base_url"`   // public URL base, local only
		Bucket    string `yaml:"bucket"`     // private applications bucket
		Region    string `yaml:"region"`     // s3 only
		AccessKey string `yaml:"access_key"` // privileged credential
		SecretKey string `yaml:"secret_key"`
		Endpoint  string `yaml:"endpoint"` // store endpoint (R2 / Supabase S3 / custom)
	} `yaml:"storage"`

	Email struct {
		Provider       string `yaml:"provider"` // sendgrid, smtp
		SendGridAPIKey string `yaml:"sendgrid_api_key"`
		SMTPHost       string `yaml:"smtp_host"`
		SMTPPort       int    `yaml:"smtp_port"`
		SMTPUsername   string `yaml:"smtp_user"`
		SMTPPassword   string `yaml:"smtp_password"`
		FromEmail      string `yaml:"from_email"`
		ToEmail        string `yaml:"to_email"` // single fixed recipient for notifications
	} `yaml:"email"`

	Admin struct {
		Secret string `yaml:"secret"`
	} `yaml:"admin"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`       // bytes
		AllowedExtensions []string `yaml:"allowed_types"`  // .pdf, .doc, .docx
		SignedURLExpires  int      `yaml:"signed_url_ttl"` // seconds, default 60
	} `yaml:"upload"`
}

// Load reads config.yaml (CONFIG_PATH overrides the location) and then
// applies environment variable overrides. A .env file is picked up when
// present so local runs match the deployed secret names.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to parse config file at %s: %w", configPath, err)
		}
		f.Close()
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("STORAGE_ENDPOINT"); v != "" {
		cfg.Storage.Endpoint = v
	}
	if v := os.Getenv("STORAGE_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
	if v := os.Getenv("STORAGE_ACCESS_KEY"); v != "" {
		cfg.Storage.AccessKey = v
	}
	if v := os.Getenv("STORAGE_SECRET_KEY"); v != "" {
		cfg.Storage.SecretKey = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		cfg.Email.SendGridAPIKey = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.Email.FromEmail = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		cfg.Email.ToEmail = v
	}
	if v := os.Getenv("ADMIN_SECRET"); v != "" {
		cfg.Admin.Secret = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "s3"
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = "resumes"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "sendgrid"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{".pdf", ".doc", ".docx"}
	}
	if cfg.Upload.SignedURLExpires == 0 {
		cfg.Upload.SignedURLExpires = 60
	}
}

// Validate enumerates the required keys and reports every missing one in a
// single error.
func (c *Config) Validate() error {
	var missing []string

	if c.Database.DSN == "" {
		missing = append(missing, "database.url (DATABASE_URL)")
	}
	if c.Admin.Secret == "" {
		missing = append(missing, "admin.secret (ADMIN_SECRET)")
	}
	if c.Storage.Type == "s3" {
		if c.Storage.Endpoint == "" {
			missing = append(missing, "storage.endpoint (STORAGE_ENDPOINT)")
		}
		if c.Storage.AccessKey == "" {
			missing = append(missing, "storage.access_key (STORAGE_ACCESS_KEY)")
		}
		if c.Storage.SecretKey == "" {
			missing = append(missing, "storage.secret_key (STORAGE_SECRET_KEY)")
		}
		if c.Storage.Bucket == "" {
			missing = append(missing, "storage.bucket (STORAGE_BUCKET)")
		}
	}
	switch c.Email.Provider {
	case "sendgrid":
		if c.Email.SendGridAPIKey == "" {
			missing = append(missing, "email.sendgrid_api_key (SENDGRID_API_KEY)")
		}
	case "smtp":
		if c.Email.SMTPHost == "" {
			missing = append(missing, "email.smtp_host")
		}
	}
	if c.Email.FromEmail == "" {
		missing = append(missing, "email.from_email (EMAIL_FROM)")
	}
	if c.Email.ToEmail == "" {
		missing = append(missing, "email.to_email (EMAIL_TO)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// HasStorageConfig reports whether the signed-URL path can be served at all.
// The handler turns a false here into a configuration error response.
func (c *Config) HasStorageConfig() bool {
	if c.Storage.Type == "local" {
		return c.Storage.BasePath != "" || c.Storage.BaseURL != ""
	}
	return c.Storage.Endpoint != "" && c.Storage.AccessKey != "" &&
		c.Storage.SecretKey != "" && c.Storage.Bucket != ""
}

// HasEmailConfig reports whether the notification path can be served.
func (c *Config) HasEmailConfig() bool {
	if c.Email.FromEmail == "" || c.Email.ToEmail == "" {
		return false
	}
	switch c.Email.Provider {
	case "smtp":
		return c.Email.SMTPHost != ""
	default:
		return c.Email.SendGridAPIKey != ""
	}
}
