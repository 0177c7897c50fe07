package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/youruser/colorpages/config"
)

var cfg *config.Config

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "colorpages",
		Short:         "Normalize coloring-page artwork and compose category headers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			v, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg, err = config.ParseConfig(v)
			return err
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		headersCmd(),
		auditCmd(),
		normalizeCmd(),
		debugCmd(),
		fetchCmd(),
		urlsCmd(),
		workerCmd(),
	)

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
