// Package main provides the entry point for the TitanHire HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "titanhire",
	Short: "TitanHire Hiring Workflow API Server",
	Long:  "TitanHire guides a hiring manager through the plan, attract, assess and hire stages of a job opening, generating the working documents for each stage via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
