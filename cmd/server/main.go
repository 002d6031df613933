// Package main is the entry point for the saga server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-saga/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-saga",
	Short: "RPG Saga server",
	Long:  `RPG Saga runs a branching light/dark journey: an HTTP API for play and a gRPC health endpoint for operations.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
