package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath = ".env"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BackendLocal = "local"
	BackendGCS   = "gcs"
	BackendMinIO = "minio"

	// DefaultDownloadKey is the placeholder shipped for development.
	// Starting in prod with it still set is refused.
	DefaultDownloadKey = "YOUR_SECRET_KEY_HERE"

	defaultRunAddress = ":3000"
	defaultBucket     = "wingmann-submissions"
)

type Config struct {
	Env      string
	Server   server
	Download download
	Storage  storage
	Logger   logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type download struct {
	Key string `env:"DOWNLOAD_KEY"`
}

type storage struct {
	Backend        string `env:"STORAGE_BACKEND"`
	DataDir        string `env:"DATA_DIR"`
	Bucket         string `env:"GCS_BUCKET_NAME"`
	Project        string `env:"GOOGLE_CLOUD_PROJECT"`
	MinIOEndpoint  string `env:"MINIO_ENDPOINT"`
	MinIOAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinIOSecretKey string `env:"MINIO_SECRET_KEY"`
	MinIOUseSSL    bool   `env:"MINIO_USE_SSL"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		Download: download{
			Key: viper.GetString("download_key"),
		},
		Storage: storage{
			Backend:        viper.GetString("storage_backend"),
			DataDir:        viper.GetString("data_dir"),
			Bucket:         viper.GetString("gcs_bucket_name"),
			Project:        viper.GetString("google_cloud_project"),
			MinIOEndpoint:  viper.GetString("minio_endpoint"),
			MinIOAccessKey: viper.GetString("minio_access_key"),
			MinIOSecretKey: viper.GetString("minio_secret_key"),
			MinIOUseSSL:    viper.GetBool("minio_use_ssl"),
		},
		Logger: logger{
			LogLevel: viper.GetString("log_level"),
		},
	}

	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.Download.Key == "" {
		config.Download.Key = DefaultDownloadKey
	}
	if config.Storage.Backend == "" {
		config.Storage.Backend = BackendLocal
	}
	if config.Storage.DataDir == "" {
		config.Storage.DataDir = "."
	}
	if config.Storage.Bucket == "" {
		config.Storage.Bucket = defaultBucket
	}

	return &config
}
