package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/exercise"
	"github.com/claude/liftlog/internal/pipeline"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "liftlog",
		Short:         "Harmonize strength training logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseLogLevel(logLevelFlag); err != nil {
				return err
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.yaml", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newProcessCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newMCPCommand(ctx))
	rootCmd.AddCommand(newExercisesCommand())

	return rootCmd
}

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(*c.configFlag)
		if path == "" {
			c.configErr = fmt.Errorf("no config file given")
			return
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

// logger writes to the command's stderr; stdout carries command output.
func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	level, _ := parseLogLevel(*c.logLevelFlag)
	return newLogger(cmd.ErrOrStderr(), level)
}

// runPipeline processes the configured exports with the embedded exercise catalog.
func (c *commandContext) runPipeline(cmd *cobra.Command, log *slog.Logger) (*pipeline.Result, *exercise.Library, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	lib, err := exercise.LoadCatalog(log)
	if err != nil {
		return nil, nil, err
	}
	res, err := pipeline.New(lib, cfg.PipelineOptions(), log).Run(cmd.Context(), cfg.PipelineInputs())
	if err != nil {
		return nil, nil, err
	}
	return res, lib, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
