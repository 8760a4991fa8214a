package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.HTTP.TimeoutSeconds <= 0 {
		errs = append(errs, "http.timeout_seconds must be > 0")
	}
	if cfg.HTTP.PerHostRPS <= 0 {
		errs = append(errs, "http.per_host_rps must be > 0")
	}
	if cfg.HTTP.PerHostBurst < 1 {
		errs = append(errs, "http.per_host_burst must be >= 1")
	}
	if cfg.Batch.DelaySeconds < 0 {
		errs = append(errs, "batch.delay_seconds must be >= 0")
	}
	if cfg.Batch.MaxJobs < 1 || cfg.Batch.MaxJobs > 3 {
		errs = append(errs, "batch.max_jobs must be 1..3")
	}
	if cfg.Batch.DescriptionMaxChars < 0 {
		errs = append(errs, "batch.description_max_chars must be >= 0")
	}
	if len(cfg.Locate.TLDs) == 0 {
		errs = append(errs, "locate.tlds must have at least 1 entry")
	}
	for i, tld := range cfg.Locate.TLDs {
		if !strings.HasPrefix(tld, ".") {
			errs = append(errs, fmt.Sprintf("locate.tlds[%d] must start with a dot", i))
		}
	}
	if len(cfg.Locate.CareersKeywords) == 0 {
		errs = append(errs, "locate.careers_keywords must have at least 1 entry")
	}
	if cfg.Browser.NavTimeoutMS <= 0 {
		errs = append(errs, "browser.nav_timeout_ms must be > 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
