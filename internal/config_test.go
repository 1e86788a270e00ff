package internal

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Synonyms(t *testing.T) {
	path := writeConfig(t, `
synonyms:
  total_assets:
    - "suma del activo"
  net_sales:
    - "Ingresos por Ventas"
currency: MXN
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Currency != "MXN" {
		t.Errorf("Currency = %q, want MXN", cfg.Currency)
	}

	matchers := cfg.Matchers()
	if matchers[0].Field != "total_assets" {
		t.Fatalf("matcher order changed: first field is %q", matchers[0].Field)
	}
	if !slices.Contains(matchers[0].Keywords, "suma del activo") {
		t.Errorf("expected synonym in total_assets keywords, got %v", matchers[0].Keywords)
	}

	// Synonyms are lower-cased so matching stays case-insensitive
	for _, m := range matchers {
		if m.Field == "net_sales" && !slices.Contains(m.Keywords, "ingresos por ventas") {
			t.Errorf("expected lower-cased synonym in net_sales keywords, got %v", m.Keywords)
		}
	}
}

func TestLoadConfig_UnknownSynonymField(t *testing.T) {
	path := writeConfig(t, `
synonyms:
  totall_assets:
    - "typo"
`)

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for unknown synonym field")
	}
	if !strings.Contains(err.Error(), "totall_assets") {
		t.Errorf("error should name the bad field, got: %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestConfig_MatchersWithoutSynonyms(t *testing.T) {
	var nilCfg *Config
	defaults := DefaultMatchers()

	for _, cfg := range []*Config{nilCfg, {}} {
		matchers := cfg.Matchers()
		if len(matchers) != len(defaults) {
			t.Fatalf("expected %d matchers, got %d", len(defaults), len(matchers))
		}
		for i := range matchers {
			if matchers[i].Field != defaults[i].Field {
				t.Errorf("matcher %d field = %q, want %q", i, matchers[i].Field, defaults[i].Field)
			}
		}
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := &Config{
		Synonyms: map[string][]string{"inventory": {"existencias"}},
		Currency: "COP",
	}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Currency != "COP" {
		t.Errorf("Currency = %q, want COP", loaded.Currency)
	}
	if len(loaded.Synonyms["inventory"]) != 1 || loaded.Synonyms["inventory"][0] != "existencias" {
		t.Errorf("Synonyms = %v, want existencias under inventory", loaded.Synonyms)
	}
}
