package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to the widget API",
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", client.BaseURL())

	if err := client.Ping(cmd.Context()); err != nil {
		printError("connection failed: %v", err)
		return err
	}
	printSuccess("Connection successful!")

	if cfg.Cache.Enabled && !noCache {
		dir, err := cfg.CacheDir()
		if err == nil {
			printDetail("response cache: %s (ttl %s)", dir, cfg.Cache.TTL)
		}
	} else {
		printDetail("response cache: disabled")
	}
	return nil
}
