package cmd

import (
	"fmt"
	"strings"

	"travel-admin/core/config"
	"travel-admin/core/slug"

	"github.com/spf13/cobra"
)

// slugCmd prints the identifier a title would get.
var slugCmd = &cobra.Command{
	Use:   "slug [title]",
	Short: "Print the blog id derived from a title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		policy, _ := cmd.Flags().GetString("policy")
		if policy != "" {
			cfg.Slug.Policy = policy
		}

		g, err := slug.New(cfg.Slug)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), g.Slug(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(slugCmd)
	slugCmd.Flags().String("policy", "", "Override the configured slug policy (alphanumeric, alphabetic)")
}
