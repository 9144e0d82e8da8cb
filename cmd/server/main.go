// Package main is the entry point for the hexpath server and client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hexpath/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "hexpath",
	Short: "Hex grid shortest path server",
	Long:  `hexpath finds shortest paths across hexagonal grids with obstacles, served over gRPC and HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
