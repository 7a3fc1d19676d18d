package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/claude/liftlog/internal/bodyweight"
	"github.com/claude/liftlog/internal/csvfix"
	"github.com/claude/liftlog/internal/ingest/gymbook"
	"github.com/claude/liftlog/internal/pipeline"
)

type Config struct {
	Inputs    InputsConfig    `yaml:"inputs"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

// InputsConfig names the four export files. Relative paths are resolved
// against the directory of the config file.
type InputsConfig struct {
	Progression     string `yaml:"progression"`
	GymBook         string `yaml:"gymbook"`
	BodyweightDaily string `yaml:"bodyweight_daily"`
	BodyweightScale string `yaml:"bodyweight_scale"`
}

type PipelineConfig struct {
	CommentPolicy         string        `yaml:"comment_policy"`
	SessionLimit          time.Duration `yaml:"session_limit"`
	OutlierGap            time.Duration `yaml:"outlier_gap"`
	SmoothGaps            bool          `yaml:"smooth_gaps"`
	SmoothGapMin          time.Duration `yaml:"smooth_gap_min"`
	SmoothGapMax          time.Duration `yaml:"smooth_gap_max"`
	SmoothGapTarget       time.Duration `yaml:"smooth_gap_target"`
	GymBookEncoding       string        `yaml:"gymbook_encoding"`
	BodyweightDefaultTime string        `yaml:"bodyweight_default_time"`
	TempDir               string        `yaml:"temp_dir"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Default returns a config with every optional setting filled in.
func Default() *Config {
	opts := pipeline.DefaultOptions()
	return &Config{
		Pipeline: PipelineConfig{
			CommentPolicy:         string(opts.CommentPolicy),
			SessionLimit:          opts.SessionLimit,
			OutlierGap:            opts.OutlierGap,
			SmoothGaps:            opts.SmoothGaps,
			SmoothGapMin:          opts.SmoothMin,
			SmoothGapMax:          opts.SmoothMax,
			SmoothGapTarget:       opts.SmoothTarget,
			GymBookEncoding:       opts.GymBookEncoding,
			BodyweightDefaultTime: opts.BodyweightDefaultTime,
		},
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Tailscale: TailscaleConfig{Hostname: "liftlog"},
	}
}

// PipelineInputs returns the resolved input paths.
func (c *Config) PipelineInputs() pipeline.Inputs {
	return pipeline.Inputs{
		Progression:     c.Inputs.Progression,
		GymBook:         c.Inputs.GymBook,
		BodyweightDaily: c.Inputs.BodyweightDaily,
		BodyweightScale: c.Inputs.BodyweightScale,
	}
}

// PipelineOptions converts the pipeline section into runner options.
// Load has already validated the comment policy.
func (c *Config) PipelineOptions() pipeline.Options {
	p := c.Pipeline
	policy, _ := csvfix.ParsePolicy(p.CommentPolicy)
	return pipeline.Options{
		CommentPolicy:         policy,
		SessionLimit:          p.SessionLimit,
		OutlierGap:            p.OutlierGap,
		SmoothGaps:            p.SmoothGaps,
		SmoothMin:             p.SmoothGapMin,
		SmoothMax:             p.SmoothGapMax,
		SmoothTarget:          p.SmoothGapTarget,
		GymBookEncoding:       p.GymBookEncoding,
		BodyweightDefaultTime: p.BodyweightDefaultTime,
		TempDir:               p.TempDir,
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides. Env vars use the prefix LIFTLOG_:
//
//	LIFTLOG_INPUT_PROGRESSION, LIFTLOG_INPUT_GYMBOOK,
//	LIFTLOG_INPUT_BODYWEIGHT_DAILY, LIFTLOG_INPUT_BODYWEIGHT_SCALE,
//	LIFTLOG_COMMENT_POLICY, LIFTLOG_GYMBOOK_ENCODING, LIFTLOG_TEMP_DIR,
//	LIFTLOG_SERVER_HOST, LIFTLOG_SERVER_PORT,
//	LIFTLOG_TAILSCALE_ENABLED, LIFTLOG_TAILSCALE_HOSTNAME,
//	LIFTLOG_TAILSCALE_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.resolveInputs(filepath.Dir(path))
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) resolveInputs(dir string) {
	for _, p := range []*string{
		&c.Inputs.Progression,
		&c.Inputs.GymBook,
		&c.Inputs.BodyweightDaily,
		&c.Inputs.BodyweightScale,
	} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_INPUT_PROGRESSION"); v != "" {
		cfg.Inputs.Progression = v
	}
	if v := os.Getenv("LIFTLOG_INPUT_GYMBOOK"); v != "" {
		cfg.Inputs.GymBook = v
	}
	if v := os.Getenv("LIFTLOG_INPUT_BODYWEIGHT_DAILY"); v != "" {
		cfg.Inputs.BodyweightDaily = v
	}
	if v := os.Getenv("LIFTLOG_INPUT_BODYWEIGHT_SCALE"); v != "" {
		cfg.Inputs.BodyweightScale = v
	}
	if v := os.Getenv("LIFTLOG_COMMENT_POLICY"); v != "" {
		cfg.Pipeline.CommentPolicy = v
	}
	if v := os.Getenv("LIFTLOG_GYMBOOK_ENCODING"); v != "" {
		cfg.Pipeline.GymBookEncoding = v
	}
	if v := os.Getenv("LIFTLOG_TEMP_DIR"); v != "" {
		cfg.Pipeline.TempDir = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func (c *Config) validate() error {
	if c.Inputs.Progression == "" {
		return fmt.Errorf("inputs.progression is required")
	}
	if c.Inputs.GymBook == "" {
		return fmt.Errorf("inputs.gymbook is required")
	}
	if c.Inputs.BodyweightDaily == "" {
		return fmt.Errorf("inputs.bodyweight_daily is required")
	}
	if c.Inputs.BodyweightScale == "" {
		return fmt.Errorf("inputs.bodyweight_scale is required")
	}

	p := c.Pipeline
	if _, err := csvfix.ParsePolicy(p.CommentPolicy); err != nil {
		return fmt.Errorf("pipeline.comment_policy: %w", err)
	}
	if !gymbook.ValidEncoding(p.GymBookEncoding) {
		return fmt.Errorf("pipeline.gymbook_encoding: unsupported encoding %q", p.GymBookEncoding)
	}
	if !bodyweight.ValidClock(p.BodyweightDefaultTime) {
		return fmt.Errorf("pipeline.bodyweight_default_time: want HH:MM:SS, got %q", p.BodyweightDefaultTime)
	}
	if p.SessionLimit <= 0 || p.OutlierGap <= 0 {
		return fmt.Errorf("pipeline.session_limit and pipeline.outlier_gap must be positive")
	}
	if p.SmoothGaps {
		if p.SmoothGapTarget <= 0 {
			return fmt.Errorf("pipeline.smooth_gap_target must be positive")
		}
		if p.SmoothGapMin >= p.SmoothGapMax {
			return fmt.Errorf("pipeline.smooth_gap_min must be below pipeline.smooth_gap_max")
		}
		if p.SmoothGapTarget > p.SmoothGapMin {
			return fmt.Errorf("pipeline.smooth_gap_target must not exceed pipeline.smooth_gap_min")
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	return nil
}
