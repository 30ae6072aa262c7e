package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Pipeline.Concurrency <= 0 {
		return fmt.Errorf("pipeline.concurrency must be > 0 (got %d)", c.Pipeline.Concurrency)
	}
	if c.Pipeline.LockTTL <= 0 {
		return fmt.Errorf("pipeline.lock_ttl must be > 0 (got %v)", c.Pipeline.LockTTL)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be > 0 (got %d)", c.Upload.MaxBytes)
	}
	if c.Upload.MaxFiles <= 0 {
		return fmt.Errorf("upload.max_files must be > 0 (got %d)", c.Upload.MaxFiles)
	}
	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("ratelimit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch strings.ToLower(s.Backend) {
	case StorageLocal:
		if strings.TrimSpace(s.LocalDir) == "" {
			return fmt.Errorf("local_dir is required for the local backend")
		}
	case StorageMinio:
		if s.Minio.Endpoint == "" || s.Minio.AccessKey == "" || s.Minio.SecretKey == "" || s.Minio.Bucket == "" {
			return fmt.Errorf("minio endpoint, access_key, secret_key and bucket are required")
		}
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	s.Backend = strings.ToLower(s.Backend)
	return nil
}

func (a *AIConfig) validate() error {
	a.TextProvider = strings.ToLower(a.TextProvider)
	a.TranscriptionProvider = strings.ToLower(a.TranscriptionProvider)
	a.DetectionProvider = strings.ToLower(a.DetectionProvider)

	switch a.TextProvider {
	case ProviderAnthropic:
		if a.Anthropic.APIKey == "" {
			return fmt.Errorf("anthropic.api_key is required for text_provider %q", a.TextProvider)
		}
		if a.Anthropic.MaxTokens <= 0 {
			return fmt.Errorf("anthropic.max_tokens must be > 0")
		}
	case ProviderOpenAI:
		if a.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required for text_provider %q", a.TextProvider)
		}
	case ProviderStub:
	default:
		return fmt.Errorf("unknown text_provider %q", a.TextProvider)
	}

	switch a.TranscriptionProvider {
	case ProviderOpenAI:
		if a.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required for transcription_provider %q", a.TranscriptionProvider)
		}
	case ProviderGCP, ProviderStub:
	default:
		return fmt.Errorf("unknown transcription_provider %q", a.TranscriptionProvider)
	}

	switch a.DetectionProvider {
	case ProviderGCP, ProviderStub:
	default:
		return fmt.Errorf("unknown detection_provider %q", a.DetectionProvider)
	}

	if a.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %v)", a.RequestTimeout)
	}
	return nil
}
