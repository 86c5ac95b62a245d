package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pingui001/Crud-y-DB/pkg/logger"
	"github.com/pkg/errors"
)

const ConfigTagName = "env"
const ConfigDefaultTagName = "default"

var config *Config

// Config holds every configuration value the service reads. Only this struct
// may be used to carry configuration; no direct env/ini access anywhere else.
type Config struct {
	AppEnv   string `env:"APP_ENV" default:"dev"`
	AppName  string `env:"APP_NAME" default:"crud_y_db"`
	AppDebug bool   `env:"APP_DEBUG" default:"1"`

	HttpListenAddr string `env:"HTTP_LISTEN_ADDR" default:":3000"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	PromNamespace string `env:"PROM_NAMESPACE" default:"crud_y_db"`

	// UploadDir is where multipart CSV files are spooled before parsing.
	// Empty means os.TempDir().
	UploadDir      string `env:"UPLOAD_DIR"`
	UploadMaxFiles int    `env:"UPLOAD_MAX_FILES" default:"10"`

	StaticDir string `env:"STATIC_DIR" default:"./public"`

	LogLevel []string `env:"LOG_LEVEL"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.New("failed to load configuration file " + path + " error: " + err.Error())
		}
	}

	_, err = env.UnmarshalFromEnviron(c)

	if err != nil {
		return errors.New("failed to map env variables to Configuration object " + " error: " + err.Error())
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
