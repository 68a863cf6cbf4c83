package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/vocabankify/pkg/updater"
	"github.com/kpauljoseph/vocabankify/pkg/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of vocabankify",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.cfg.Log.Verbose {
				fmt.Fprint(out, version.GetDetailedVersionInfo())
			} else {
				fmt.Fprintln(out, version.GetVersionInfo())
			}

			if !check {
				return nil
			}

			log, closeLog, err := a.newLogger(out, false)
			if err != nil {
				return err
			}
			defer closeLog()

			checker := updater.NewChecker(log,
				updater.WithEndpoints(a.cfg.Update.ManifestURL, a.cfg.Update.GitHubURL))
			info, err := checker.CheckForUpdates(cmd.Context())
			if err != nil {
				return fmt.Errorf("update check failed: %w", err)
			}
			if info.IsAvailable {
				fmt.Fprintf(out, "A new version is available: %s (you have %s)\n%s\n",
					info.LatestVersion, info.CurrentVersion, info.DownloadURL)
				if info.UpdateMessage != "" {
					fmt.Fprintln(out, info.UpdateMessage)
				}
			} else {
				fmt.Fprintln(out, "You are running the latest version.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check for a newer release")
	return cmd
}
