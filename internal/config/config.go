package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

type Settings struct {
	Port        int
	DBDriver    string
	DatabaseDSN string
	Timezone    string
	LogLevel    string
	LogFormat   string
	LogFile     string
	CorsOrigins []string
}

var Logger = logrus.New()

// Load reads .env when present and then the process environment.
func Load() Settings {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getenv("PORT", "8080"))
	if err != nil {
		port = 8080
	}

	return Settings{
		Port:        port,
		DBDriver:    getenv("DB_DRIVER", "sqlite"),
		DatabaseDSN: getenv("DATABASE_DSN", "habits.db"),
		Timezone:    getenv("APP_TIMEZONE", "Local"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "text"),
		LogFile:     os.Getenv("LOG_FILE"),
		CorsOrigins: splitList(getenv("CORS_ORIGINS", "*")),
	}
}

// Init configures the shared logger and the calendar zone.
func Init(s Settings) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	if s.LogFormat == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if s.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   s.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	Logger.SetOutput(out)

	if err := util.SetLocation(s.Timezone); err != nil {
		Logger.WithError(err).Warnf("Unknown timezone %q, using local time", s.Timezone)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
