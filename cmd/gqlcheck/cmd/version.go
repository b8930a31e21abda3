package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the gqlcheck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}
