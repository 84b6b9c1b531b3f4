package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in j48's version
	VersionMajor = 0
	// VersionMinor is the minor number in j48's version
	VersionMinor = 1
	// VersionPatch is the patch number in j48's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of j48",
		Long:  `All software has versions. This is j48's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("j48 v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
