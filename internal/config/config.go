package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	LLM      LLMConfig      `envPrefix:"LLM_"`
	Auth     AuthConfig     `envPrefix:"AUTH_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type DatabaseConfig struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"mentor"`
}

type LLMConfig struct {
	GeminiAPIKey  string `env:"GEMINI_API_KEY,required"`
	Model         string `env:"MODEL" envDefault:"googleai/gemini-1.5-flash"`
	ResourcesFile string `env:"RESOURCES_FILE" envDefault:"student_resources.json"`
}

// AuthConfig has no defaults: a missing secret or credential is a startup
// error.
type AuthConfig struct {
	JWTSecret         string `env:"JWT_SECRET,required"`
	AdminUsername     string `env:"ADMIN_USERNAME,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`
	TokenTTLHours     int    `env:"TOKEN_TTL_HOURS" envDefault:"8"`
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"mentor-chat-events"`
	GroupID string   `env:"GROUP_ID" envDefault:"mentor-api"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
