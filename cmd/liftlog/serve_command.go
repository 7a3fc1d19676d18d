package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"tailscale.com/tsnet"

	"github.com/claude/liftlog/internal/server"
	"github.com/claude/liftlog/internal/storage"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Process the exports once and serve the result over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger(cmd)
			log.Info("liftlog starting", "version", Version)

			res, lib, err := ctx.runPipeline(cmd, log)
			if err != nil {
				return err
			}
			store := storage.New(res, lib)
			log.Info("run loaded", "run", store.RunID(), "sets", len(res.Sets), "bodyweight", len(res.Bodyweight))

			srv := server.New(store, log)

			// Start server: tsnet or plain HTTP
			var listener net.Listener
			if cfg.Tailscale.Enabled {
				tsServer := &tsnet.Server{
					Hostname: cfg.Tailscale.Hostname,
					Dir:      cfg.Tailscale.StateDir,
				}
				if err := tsServer.Start(); err != nil {
					return fmt.Errorf("tsnet start: %w", err)
				}
				defer tsServer.Close()

				lc, err := tsServer.LocalClient()
				if err != nil {
					return fmt.Errorf("tsnet local client: %w", err)
				}
				srv.SetTailscale(lc)

				listener, err = tsServer.Listen("tcp", ":80")
				if err != nil {
					return fmt.Errorf("tsnet listen: %w", err)
				}
				log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
			} else {
				addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
				listener, err = net.Listen("tcp", addr)
				if err != nil {
					return fmt.Errorf("listen on %s: %w", addr, err)
				}
				log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
			}

			httpSrv := &http.Server{Handler: srv}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			// Graceful shutdown
			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server: %w", err)
				}
				return nil
			case <-sigCtx.Done():
			}
			log.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown error", "error", err)
			}
			log.Info("server stopped")
			return nil
		},
	}
}
