package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	HTTP struct {
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		UserAgent      string  `yaml:"user_agent"`
		PerHostRPS     float64 `yaml:"per_host_rps"`
		PerHostBurst   int     `yaml:"per_host_burst"`
	} `yaml:"http"`

	Batch struct {
		DelaySeconds        int `yaml:"delay_seconds"`
		MaxJobs             int `yaml:"max_jobs"`
		DescriptionMaxChars int `yaml:"description_max_chars"`
		CheckpointEvery     int `yaml:"checkpoint_every"`
	} `yaml:"batch"`

	Locate struct {
		TLDs                []string `yaml:"tlds"`
		CareersKeywords     []string `yaml:"careers_keywords"`
		CareersHrefPatterns []string `yaml:"careers_href_patterns"`
		NavSelectors        []string `yaml:"nav_selectors"`
		NavKeywords         []string `yaml:"nav_keywords"`
		SearchFallback      bool     `yaml:"search_fallback"`
	} `yaml:"locate"`

	Generic struct {
		RoleKeywords []string `yaml:"role_keywords"`
		SkipTitles   []string `yaml:"skip_titles"`
	} `yaml:"generic"`

	Browser struct {
		Enabled      bool `yaml:"enabled"`
		NavTimeoutMS int  `yaml:"nav_timeout_ms"`
	} `yaml:"browser"`
}

// Default returns the built-in configuration. Load starts from it, so a
// partial user file only overrides the keys it names.
func Default() Config {
	var cfg Config

	cfg.App.DataDir = "."

	cfg.HTTP.TimeoutSeconds = 15
	cfg.HTTP.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	cfg.HTTP.PerHostRPS = 1
	cfg.HTTP.PerHostBurst = 1

	cfg.Batch.DelaySeconds = 2
	cfg.Batch.MaxJobs = 3
	cfg.Batch.DescriptionMaxChars = 500
	cfg.Batch.CheckpointEvery = 25

	cfg.Locate.TLDs = []string{".com", ".co", ".org", ".net", ".io", ".ai", ".tech"}
	cfg.Locate.CareersKeywords = []string{
		"career", "careers", "jobs", "join us", "we're hiring", "we are hiring", "open positions",
	}
	cfg.Locate.CareersHrefPatterns = []string{
		"careers", "jobs", "join-us", "join", "work-with-us", "we-are-hiring",
		"open-positions", "current-openings", "opportunities", "team", "about/careers",
	}
	cfg.Locate.NavSelectors = []string{"nav", ".nav", ".navigation", ".menu", ".header", ".main-menu"}
	cfg.Locate.NavKeywords = []string{"career", "careers", "jobs"}
	cfg.Locate.SearchFallback = true

	cfg.Generic.RoleKeywords = []string{
		"engineer", "manager", "analyst", "specialist", "coordinator",
		"director", "developer", "scientist", "consultant",
	}
	cfg.Generic.SkipTitles = []string{
		"careers", "jobs", "opportunities", "help", "support", "about", "contact", "apply", "join us",
	}

	cfg.Browser.Enabled = true
	cfg.Browser.NavTimeoutMS = 30000

	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
