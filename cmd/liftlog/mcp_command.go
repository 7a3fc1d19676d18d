package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/claude/liftlog/internal/exercise"
	liftmcp "github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/storage"
)

func newMCPCommand(ctx *commandContext) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the processed run as an MCP server over stdio",
		Long: "Serve the processed run as an MCP server over stdio. With --remote the\n" +
			"data comes from a running `liftlog serve` instead of a local run.",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := ctx.logger(cmd)

			var ds liftmcp.DataSource
			var lib *exercise.Library
			if remote != "" {
				ds = liftmcp.NewHTTPClient(remote)
				lib = exercise.Default()
				log.Info("mcp remote mode", "url", remote)
			} else {
				res, l, err := ctx.runPipeline(cmd, log)
				if err != nil {
					return err
				}
				ds = storage.New(res, l)
				lib = l
			}

			return server.ServeStdio(liftmcp.New(ds, lib, Version, log))
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Base URL of a liftlog HTTP server to query instead of processing locally")

	return cmd
}
