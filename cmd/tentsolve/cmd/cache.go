package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashrey-kulkarni/tentsolve/tentcache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the solved-puzzle cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the cache's on-disk size",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := tentcache.Open(cacheDir)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer c.Close()

		fmt.Printf("cache dir:  %s\n", cacheDir)
		fmt.Printf("disk usage: %s\n", c.DiskSize())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the cache directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.RemoveAll(cacheDir); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Printf("removed %s\n", cacheDir)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
