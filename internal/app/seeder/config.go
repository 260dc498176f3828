package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo seeding settings.
type Config struct {
	SchoolName   string   `yaml:"school_name"   env:"SEEDER_SCHOOL_NAME"   env-default:"Demo High School"`
	SchoolDomain string   `yaml:"school_domain" env:"SEEDER_SCHOOL_DOMAIN" env-default:"school.com"`
	Locations    []string `yaml:"locations"     env:"SEEDER_LOCATIONS"     env-default:"Main Office,Library,Cafeteria"`
	AdminEmail   string   `yaml:"admin_email"   env:"SEEDER_ADMIN_EMAIL"`
	MaxStudents  int      `yaml:"max_students"  env:"SEEDER_MAX_STUDENTS"`
	BatchSize    int      `yaml:"batch_size"    env:"SEEDER_BATCH_SIZE"    env-default:"500"`
	DryRun       bool     `yaml:"dry_run"       env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
