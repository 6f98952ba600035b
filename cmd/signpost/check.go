package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.hacdias.com/signpost/core"
	"go.hacdias.com/signpost/log"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use: "check",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		defer func() {
			_ = log.L().Sync()
		}()

		co := core.NewCore(c)
		return co.Check(os.Stdout)
	},
}
