package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Storage   StorageConfig   `yaml:"storage"`
	Redis     RedisConfig     `yaml:"redis"`
	AI        AIConfig        `yaml:"ai"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Upload    UploadConfig    `yaml:"upload"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Detection DetectionConfig `yaml:"detection"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"5m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"          env-default:"fieldreport"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"   env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST"  env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Storage backends.
const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// StorageConfig selects where uploaded files live.
type StorageConfig struct {
	Backend  string      `yaml:"backend"   env:"STORAGE_BACKEND"   env-default:"local"`
	LocalDir string      `yaml:"local_dir" env:"STORAGE_LOCAL_DIR" env-default:"./uploads"`
	Minio    MinioConfig `yaml:"minio"`
}

// MinioConfig holds S3-compatible object storage settings.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"   env:"MINIO_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket"     env:"MINIO_BUCKET"     env-default:"fieldreport"`
	UseSSL    bool   `yaml:"use_ssl"    env:"MINIO_USE_SSL"    env-default:"false"`
}

// RedisConfig holds Redis settings. An empty Addr disables Redis; locks and
// rate limits then fall back to in-process implementations.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"fieldreport"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// AI provider names.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGCP       = "gcp"
	ProviderStub      = "stub"
)

// AIConfig selects the enrichment gateways and holds their credentials.
type AIConfig struct {
	TextProvider          string          `yaml:"text_provider"          env:"AI_TEXT_PROVIDER"          env-default:"stub"`
	TranscriptionProvider string          `yaml:"transcription_provider" env:"AI_TRANSCRIPTION_PROVIDER" env-default:"stub"`
	DetectionProvider     string          `yaml:"detection_provider"     env:"AI_DETECTION_PROVIDER"     env-default:"stub"`
	RequestTimeout        time.Duration   `yaml:"request_timeout"        env:"AI_REQUEST_TIMEOUT"        env-default:"120s"`
	Anthropic             AnthropicConfig `yaml:"anthropic"`
	OpenAI                OpenAIConfig    `yaml:"openai"`
	GCP                   GCPConfig       `yaml:"gcp"`
}

// AnthropicConfig holds Anthropic Messages API settings.
type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	Model     string `yaml:"model"      env:"ANTHROPIC_MODEL"      env-default:"claude-sonnet-4-5"`
	MaxTokens int64  `yaml:"max_tokens" env:"ANTHROPIC_MAX_TOKENS" env-default:"2048"`
}

// OpenAIConfig holds settings for an OpenAI-compatible API.
type OpenAIConfig struct {
	BaseURL            string `yaml:"base_url"            env:"OPENAI_BASE_URL"            env-default:"https://api.openai.com/v1"`
	APIKey             string `yaml:"api_key"             env:"OPENAI_API_KEY"`
	ChatModel          string `yaml:"chat_model"          env:"OPENAI_CHAT_MODEL"          env-default:"gpt-4o-mini"`
	TranscriptionModel string `yaml:"transcription_model" env:"OPENAI_TRANSCRIPTION_MODEL" env-default:"whisper-1"`
}

// GCPConfig holds Google Cloud settings. Credentials is either a path to a
// service-account file or the JSON itself; empty means application default.
type GCPConfig struct {
	Credentials    string `yaml:"credentials"     env:"GCP_CREDENTIALS"`
	SpeechLanguage string `yaml:"speech_language" env:"GCP_SPEECH_LANGUAGE" env-default:"en-US"`
}

// PipelineConfig tunes report synthesis.
type PipelineConfig struct {
	Concurrency int           `yaml:"concurrency" env:"PIPELINE_CONCURRENCY" env-default:"4"`
	LockTTL     time.Duration `yaml:"lock_ttl"    env:"PIPELINE_LOCK_TTL"    env-default:"10m"`
}

// UploadConfig limits multipart uploads.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes" env:"UPLOAD_MAX_BYTES" env-default:"33554432"`
	MaxFiles int   `yaml:"max_files" env:"UPLOAD_MAX_FILES" env-default:"20"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATELIMIT_AUTH_PER_MINUTE" env-default:"20"`
}

// DetectionConfig holds preview housekeeping settings.
type DetectionConfig struct {
	PreviewRetention time.Duration `yaml:"preview_retention" env:"DETECTION_PREVIEW_RETENTION" env-default:"24h"`
}
