package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.hacdias.com/signpost/core"
	"go.hacdias.com/signpost/log"
	"go.hacdias.com/signpost/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use: "serve",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		defer func() {
			_ = log.L().Sync()
		}()

		server, err := server.NewServer(c)
		if err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)

		go func() {
			log := log.S()
			log.Info("starting server")
			err := server.Start()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("failed to start server: %s", err)
			}
			quit <- os.Interrupt
		}()

		signal.Notify(quit, os.Interrupt)
		<-quit

		log.S().Info("stopping server")
		return server.Stop()
	},
}
