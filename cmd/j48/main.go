package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
	ctx context.Context
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "j48",
		Short: "j48 is a tool to grow C4.5 decision trees",
		Long:  `A tool to grow C4.5 decision trees from your data, test them, and use them to classify samples`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&config.logger), "verbose", "v", false, "print progress information on STDERR")
	rootCmd.AddCommand(versionCmd(), treeCmd(config), setCmd(config))
	return rootCmd
}

func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx = context.Background()
	}
	return rcc.ctx
}
