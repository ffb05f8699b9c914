package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/internal/kernel"
	"github.com/shashiranjanraj/orderdesk/internal/server"
	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"github.com/shashiranjanraj/orderdesk/pkg/database"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
)

// orderdesk serve: start the HTTP server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Start the HTTP server (alias: run)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := bootDB()
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck

		c, err := cache.NewFromConfig(ctx)
		if err != nil {
			return err
		}
		var opts []kernel.Option
		if c != nil {
			defer c.Close() //nolint:errcheck
			opts = append(opts, kernel.WithCache(c, config.CacheTTL()))
			logger.Info("cache enabled", "driver", config.CacheDriver(), "ttl", config.CacheTTL())
		}

		k, err := kernel.NewHTTPKernel(db, opts...)
		if err != nil {
			return err
		}

		return server.Start(ctx, server.Config{
			Addr:            ":" + config.AppPort(),
			ShutdownTimeout: config.ShutdownTimeout(),
		}, k.Handler())
	},
}

// orderdesk route:list prints all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Routes do not depend on data; a throwaway database is enough.
		db, err := database.Connect("sqlite", ":memory:")
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck

		k, err := kernel.NewHTTPKernel(db)
		if err != nil {
			return err
		}
		return printRoutes(cmd.OutOrStdout(), k.Routes())
	},
}

func printRoutes(out io.Writer, infos []router.RouteInfo) error {
	if len(infos) == 0 {
		fmt.Fprintln(out, "No named routes registered.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tNAME")
	fmt.Fprintln(w, "------\t----\t----")
	for _, ri := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
	}
	return w.Flush()
}
