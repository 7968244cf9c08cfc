package config

import (
	"log"

	"github.com/spf13/viper"
)

type AppSettings struct {
	Name string `mapstructure:"name" yaml:"name"`
	Port string `mapstructure:"port" yaml:"port"`
}

type DatabaseSettings struct {
	Host         string `mapstructure:"host" yaml:"host"`
	Port         string `mapstructure:"port" yaml:"port"`
	User         string `mapstructure:"user" yaml:"user"`
	Password     string `mapstructure:"password" yaml:"password"`
	Name         string `mapstructure:"name" yaml:"name"`
	Sslmode      string `mapstructure:"sslmode" yaml:"sslmode"`
	Timezone     string `mapstructure:"timezone" yaml:"timezone"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns" yaml:"max_open_conns"`
}

type RedisSettings struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" yaml:"DB"`
}

// StorageSettings configures the S3-compatible object store holding audio
// files and the podcast feed document.
type StorageSettings struct {
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`
	Region    string `mapstructure:"region" yaml:"region"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`
	Bucket    string `mapstructure:"bucket" yaml:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl" yaml:"use_ssl"`
	// PublicBaseURL overrides the default virtual-hosted S3 URL when the
	// bucket is served from a CDN or a non-AWS endpoint.
	PublicBaseURL string `mapstructure:"public_base_url" yaml:"public_base_url"`
}

type SpeechSettings struct {
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	Model   string `mapstructure:"model" yaml:"model"`
}

// FeedSettings is the fixed feed-level metadata written into the podcast
// feed document.
type FeedSettings struct {
	Title       string `mapstructure:"title" yaml:"title"`
	Description string `mapstructure:"description" yaml:"description"`
	Link        string `mapstructure:"link" yaml:"link"`
	Language    string `mapstructure:"language" yaml:"language"`
	Author      string `mapstructure:"author" yaml:"author"`
	Category    string `mapstructure:"category" yaml:"category"`
	Filename    string `mapstructure:"filename" yaml:"filename"`
}

type AuthSettings struct {
	Secret string `mapstructure:"secret" yaml:"secret"`
}

type Config struct {
	App      AppSettings      `mapstructure:"app" yaml:"app"`
	Database DatabaseSettings `mapstructure:"database" yaml:"database"`
	Redis    RedisSettings    `mapstructure:"redis" yaml:"redis"`
	Storage  StorageSettings  `mapstructure:"storage" yaml:"storage"`
	Speech   SpeechSettings   `mapstructure:"speech" yaml:"speech"`
	Feed     FeedSettings     `mapstructure:"feed" yaml:"feed"`
	Auth     AuthSettings     `mapstructure:"auth" yaml:"auth"`
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	AppConfig = &Config{}
	err = viper.Unmarshal(AppConfig)
	if err != nil {
		log.Fatalf("Failed to unmarshal config: %v", err)
	}

	initDB()
	initRedis()
}
