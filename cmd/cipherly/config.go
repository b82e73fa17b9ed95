// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"cipherly/internal/config"

	"github.com/spf13/cobra"
)

var (
	// configCmd groups the configuration subcommands.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage cipherly configuration",
	}

	// configShowCmd prints the effective configuration.
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(appConfig))
			return nil
		},
	}

	// configInitCmd writes a default config file if none exists.
	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Config file at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}

	// configPathCmd prints the config file path.
	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
