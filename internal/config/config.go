package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string     `env:"PORT" env-default:"9091"`
	Firebase Firebase   `env-prefix:"FIREBASE_"`
	Redis    Redis      `env-prefix:"REDIS_"`
	Media    Cloudinary `env-prefix:"CLOUDINARY_"`
	Cache    Cache      `env-prefix:"CACHE_"`
}

type Firebase struct {
	ProjectID          string `env:"PROJECT_ID"`
	ServiceAccountPath string `env:"SERVICE_ACCOUNT_PATH"`
}

type Redis struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" env-default:"6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" env-default:"0"`
}

type Cloudinary struct {
	CloudName    string `env:"CLOUD_NAME"`
	UploadPreset string `env:"UPLOAD_PRESET"`
	Folder       string `env:"FOLDER" env-default:"khalid-lifestyle"`
}

type Cache struct {
	TTLSeconds int `env:"TTL_SECONDS" env-default:"10"`
}

// MustLoad reads the .env file if present, then the process environment.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}
