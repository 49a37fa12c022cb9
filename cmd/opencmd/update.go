package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iyulab/opencmd/internal/updater"
	"github.com/spf13/cobra"
)

func newUpdateCmd(currentVersion string) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update to the latest release",
		Long:  "Checks GitHub Releases for the latest version and replaces the running binary.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(currentVersion, checkOnly)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer version, do not download")
	return cmd
}

func runUpdate(currentVersion string, checkOnly bool) error {
	fmt.Println("Checking for updates...")

	client := &updater.Client{}
	info, err := client.Check(currentVersion)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	if !info.HasUpdate {
		fmt.Printf("Already up to date (%s)\n", info.CurrentVersion)
		return nil
	}

	fmt.Printf("New version available: %s -> %s\n", info.CurrentVersion, info.LatestVersion)

	if checkOnly {
		fmt.Println("Run 'opencmd update' to install it.")
		return nil
	}

	if info.DownloadURL == "" {
		return fmt.Errorf("update: no binary published for this platform")
	}

	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("update: locate current executable: %w", err)
	}

	tmpPath := exePath + ".new"
	fmt.Printf("Downloading %s\n", info.DownloadURL)

	if err := client.Download(info.DownloadURL, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("update: download failed: %w", err)
	}

	fmt.Printf("Replacing %s\n", filepath.Base(exePath))
	if err := updater.SelfReplace(exePath, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("update: replace failed (check permissions): %w", err)
	}

	fmt.Printf("Updated %s -> %s\n", info.CurrentVersion, info.LatestVersion)
	return nil
}
