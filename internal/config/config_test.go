package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
batch:
  delay_seconds: 5
locate:
  tlds: [".com", ".dev"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Batch.DelaySeconds != 5 {
		t.Fatalf("delay_seconds = %d", cfg.Batch.DelaySeconds)
	}
	if len(cfg.Locate.TLDs) != 2 || cfg.Locate.TLDs[1] != ".dev" {
		t.Fatalf("tlds = %v", cfg.Locate.TLDs)
	}
	// untouched sections keep their defaults
	if cfg.HTTP.TimeoutSeconds != Default().HTTP.TimeoutSeconds {
		t.Fatalf("timeout lost its default: %d", cfg.HTTP.TimeoutSeconds)
	}
	if len(cfg.Locate.CareersKeywords) == 0 {
		t.Fatal("careers keywords lost their defaults")
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.HTTP.TimeoutSeconds = 0
	cfg.Batch.MaxJobs = 9
	cfg.Locate.TLDs = []string{"com"}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	for _, want := range []string{
		"http.timeout_seconds",
		"batch.max_jobs",
		"locate.tlds[0]",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	if err := SaveAtomic(path, Default()); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	cfg.Batch.DelaySeconds = 7
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("expected a backup of the previous config: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Batch.DelaySeconds != 7 {
		t.Fatalf("delay_seconds = %d", got.Batch.DelaySeconds)
	}
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Browser.NavTimeoutMS = 0
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := SaveAtomic(path, cfg); err == nil {
		t.Fatal("invalid config must not be written")
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatal("file should not exist after a rejected save")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("config written outside the data dir: %s", path)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("bootstrapped config must validate: %v", err)
	}

	// second call must not rewrite the file
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureUserConfig(dir); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("existing config was rewritten")
	}
}
