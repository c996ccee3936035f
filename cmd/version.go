package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of testctl",
		Long:  `All software has versions. This is testctl's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("testctl version %s\n", rootCmd.Version)
		},
	}
}
