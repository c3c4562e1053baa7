// Package config provides runtime configuration for the ad-hub backend,
// read from environment variables with sensible development defaults.
package config

import (
	_ "embed"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("ADH_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("ADH_DEBUG") == "true"
}

func GetListen() string {
	listen := os.Getenv("ADH_LISTEN")
	if listen == "" {
		listen = ":8080"
	}
	return listen
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("ADH_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetJWTSecret returns the HMAC key used to sign access tokens.
func GetJWTSecret() string {
	secret := os.Getenv("ADH_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return secret
}
