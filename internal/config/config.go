package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresMaxConns int

	HTTPPort string
	LogLevel logrus.Level

	OperatorWorkers   int
	OperatorQueueSize int

	// ReportLocation is the zone report buckets are cut in.
	ReportLocation *time.Location
	RunMigrations  bool
}

// LoadDotEnv reads path into the process environment when the file exists.
// Variables already set are not overridden.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("godotenv.Load: %w", err)
	}
	return nil
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:   "localhost",
		PostgresPort:      "5433",
		PostgresDB:        "postgres",
		PostgresUsername:  "postgres",
		PostgresPassword:  "testpassword",
		PostgresMaxConns:  10,
		HTTPPort:          "9446",
		LogLevel:          logrus.InfoLevel,
		OperatorWorkers:   4,
		OperatorQueueSize: 1000,
		ReportLocation:    time.Local,
		RunMigrations:     false,
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")

	if err := setPositiveInt(&env.PostgresMaxConns, "POSTGRES_MAX_CONNS"); err != nil {
		return nil, err
	}
	if err := setPositiveInt(&env.OperatorWorkers, "OPERATOR_WORKERS"); err != nil {
		return nil, err
	}
	if err := setPositiveInt(&env.OperatorQueueSize, "OPERATOR_QUEUE_SIZE"); err != nil {
		return nil, err
	}

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	if v := os.Getenv("REPORT_TIMEZONE"); len(v) != 0 {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, fmt.Errorf("REPORT_TIMEZONE: %w", err)
		}
		env.ReportLocation = loc
	}

	if v := os.Getenv("RUN_MIGRATIONS"); len(v) != 0 {
		run, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("RUN_MIGRATIONS: %w", err)
		}
		env.RunMigrations = run
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*dst = v
	}
}

func setPositiveInt(dst *int, key string) error {
	v := os.Getenv(key)
	if len(v) == 0 {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if n < 1 {
		return fmt.Errorf("%s: must be at least 1, got %d", key, n)
	}
	*dst = n
	return nil
}
