package main

import (
	"github.com/spf13/cobra"
	"go.hacdias.com/signpost/core"
	"go.hacdias.com/signpost/log"
)

func init() {
	rootCmd.Flags().StringP("out-dir", "o", core.DefaultOutDirectory, "Directory to write static site to")
}

var rootCmd = &cobra.Command{
	Use: "signpost",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("out-dir") {
			c.OutDirectory, err = cmd.Flags().GetString("out-dir")
			if err != nil {
				return err
			}
		}

		defer func() {
			_ = log.L().Sync()
		}()

		co := core.NewCore(c)
		return co.Build()
	},
}
