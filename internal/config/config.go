package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	S3        S3Config
	App       AppConfig
	Forensics ForensicsConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	Region          string
}

type AppConfig struct {
	MaxUploadSize  int64
	AllowedFormats []string
	HistoryLimit   int
}

// ForensicsConfig exposes the scoring heuristics as deployment knobs.
// The defaults are the baseline placeholder values; none of them comes
// from validated forensic research.
type ForensicsConfig struct {
	ExtractorTimeout   time.Duration
	EmptyTagsBonus     int
	LowNoiseBonus      int
	NoiseStdThreshold  float64
	FlatnessBonus      int
	FlatnessThreshold  float64
	SmallImageBonus    int
	SmallImageMaxBytes int64
	DecisionThreshold  int
}

func Load() (*Config, error) {
	viper.SetDefault("SERVER_HOST", "localhost")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("S3_ENDPOINT", "localhost:9000")
	viper.SetDefault("S3_ACCESS_KEY_ID", "minioadmin")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "minioadmin")
	viper.SetDefault("S3_USE_SSL", false)
	viper.SetDefault("S3_BUCKET_NAME", "analyses")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("APP_MAX_UPLOAD_SIZE", 10*1024*1024) // 10MB
	viper.SetDefault("APP_ALLOWED_FORMATS", []string{"jpeg", "png", "webp"})
	viper.SetDefault("APP_HISTORY_LIMIT", 50)
	viper.SetDefault("FORENSICS_EXTRACTOR_TIMEOUT", "500ms")
	viper.SetDefault("FORENSICS_EMPTY_TAGS_BONUS", 10)
	viper.SetDefault("FORENSICS_LOW_NOISE_BONUS", 30)
	viper.SetDefault("FORENSICS_NOISE_STD_THRESHOLD", 5.0)
	viper.SetDefault("FORENSICS_FLATNESS_BONUS", 10)
	viper.SetDefault("FORENSICS_FLATNESS_THRESHOLD", 2.0)
	viper.SetDefault("FORENSICS_SMALL_IMAGE_BONUS", 10)
	viper.SetDefault("FORENSICS_SMALL_IMAGE_MAX_BYTES", 50*1024)
	viper.SetDefault("FORENSICS_DECISION_THRESHOLD", 40)

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("SERVER_HOST"),
			Port: viper.GetString("SERVER_PORT"),
		},
		S3: S3Config{
			Endpoint:        viper.GetString("S3_ENDPOINT"),
			AccessKeyID:     viper.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("S3_SECRET_ACCESS_KEY"),
			UseSSL:          viper.GetBool("S3_USE_SSL"),
			BucketName:      viper.GetString("S3_BUCKET_NAME"),
			Region:          viper.GetString("S3_REGION"),
		},
		App: AppConfig{
			MaxUploadSize:  viper.GetInt64("APP_MAX_UPLOAD_SIZE"),
			AllowedFormats: viper.GetStringSlice("APP_ALLOWED_FORMATS"),
			HistoryLimit:   viper.GetInt("APP_HISTORY_LIMIT"),
		},
		Forensics: ForensicsConfig{
			ExtractorTimeout:   viper.GetDuration("FORENSICS_EXTRACTOR_TIMEOUT"),
			EmptyTagsBonus:     viper.GetInt("FORENSICS_EMPTY_TAGS_BONUS"),
			LowNoiseBonus:      viper.GetInt("FORENSICS_LOW_NOISE_BONUS"),
			NoiseStdThreshold:  viper.GetFloat64("FORENSICS_NOISE_STD_THRESHOLD"),
			FlatnessBonus:      viper.GetInt("FORENSICS_FLATNESS_BONUS"),
			FlatnessThreshold:  viper.GetFloat64("FORENSICS_FLATNESS_THRESHOLD"),
			SmallImageBonus:    viper.GetInt("FORENSICS_SMALL_IMAGE_BONUS"),
			SmallImageMaxBytes: viper.GetInt64("FORENSICS_SMALL_IMAGE_MAX_BYTES"),
			DecisionThreshold:  viper.GetInt("FORENSICS_DECISION_THRESHOLD"),
		},
	}

	return cfg, nil
}
