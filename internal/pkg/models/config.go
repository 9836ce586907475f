package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	JWT    JWTConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int
	ClientURL       string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// JWTConfig contains token signing configuration
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
