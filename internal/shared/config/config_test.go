package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("ENV", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("LLM_MODEL", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %q", cfg.Env)
	}
	if cfg.LLMModel != DefaultLLMModel {
		t.Fatalf("expected default model %q, got %q", DefaultLLMModel, cfg.LLMModel)
	}
	if cfg.LLMConfigured() {
		t.Fatal("expected LLMConfigured false without a key")
	}
}

func TestLoadSplitsOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://audit.example.com ,")

	cfg := Load()
	want := []string{"http://localhost:3000", "https://audit.example.com"}
	if len(cfg.CORSAllowOrigin) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.CORSAllowOrigin)
	}
	for i, origin := range want {
		if cfg.CORSAllowOrigin[i] != origin {
			t.Fatalf("origin %d: expected %q, got %q", i, origin, cfg.CORSAllowOrigin[i])
		}
	}
}

func TestLLMConfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := Load()
	if !cfg.LLMConfigured() {
		t.Fatal("expected LLMConfigured true with a key")
	}
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":       "production",
		"PRODUCTION": "production",
		"staging":    "staging",
		"local":      "local",
		"dev":        "dev",
		"unknown":    "dev",
		"":           "dev",
	}
	for raw, want := range cases {
		if got := normalizeEnv(raw); got != want {
			t.Fatalf("normalizeEnv(%q): expected %q, got %q", raw, want, got)
		}
	}
}
