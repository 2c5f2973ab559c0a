package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_URL", "CORS_ALLOW_ORIGINS", "OBJECT_STORE",
		"PRIMARY_MODEL", "FALLBACK_MODEL", "PARSE_PRIMARY_MODEL",
		"PARSE_FALLBACK_MODEL", "REGENERATE_MODEL", "LLM_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port = %s", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Errorf("default env = %s", cfg.Env)
	}
	if cfg.ObjectStoreType != "local" {
		t.Errorf("default store = %s", cfg.ObjectStoreType)
	}
	if cfg.GeneratePrimary != defaultGeneratePrimary || cfg.GenerateFallback != defaultGenerateFallback {
		t.Errorf("generate models = %s / %s", cfg.GeneratePrimary, cfg.GenerateFallback)
	}
	if cfg.RegenerateModel != defaultRegenerateModel {
		t.Errorf("regenerate model = %s", cfg.RegenerateModel)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("llm timeout = %s", cfg.LLMTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRIMARY_MODEL", "model-x")
	t.Setenv("FALLBACK_MODEL", "model-y")
	t.Setenv("LLM_TIMEOUT_SECONDS", "5")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()
	if cfg.GeneratePrimary != "model-x" || cfg.GenerateFallback != "model-y" {
		t.Errorf("model overrides ignored: %s / %s", cfg.GeneratePrimary, cfg.GenerateFallback)
	}
	if cfg.LLMTimeout != 5*time.Second {
		t.Errorf("timeout override ignored: %s", cfg.LLMTimeout)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "http://b.example" {
		t.Errorf("cors origins = %v", cfg.CORSAllowOrigin)
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"local":      "local",
		"anything":   "dev",
		"":           "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Errorf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLLMTimeoutIgnoresInvalid(t *testing.T) {
	t.Setenv("LLM_TIMEOUT_SECONDS", "not-a-number")
	if got := llmTimeout(); got != 30*time.Second {
		t.Errorf("invalid timeout should fall back to default, got %s", got)
	}
	t.Setenv("LLM_TIMEOUT_SECONDS", "-3")
	if got := llmTimeout(); got != 30*time.Second {
		t.Errorf("negative timeout should fall back to default, got %s", got)
	}
}
