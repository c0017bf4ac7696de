package cmd

import (
	"encoding/json"
	"fmt"

	"travel-admin/core/config"
	"travel-admin/core/database"
	"travel-admin/core/logger"
	"travel-admin/core/slug"
	"travel-admin/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// catalogCmd groups offline catalog maintenance.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or delete catalog entities without the HTTP server",
}

var catalogGetCmd = &cobra.Command{
	Use:   "get [kind] [id]",
	Short: "Print one entity with everything it owns as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newCatalogService()
		if err != nil {
			return err
		}
		item, err := svc.Get(commandContext(cmd.Context()), args[0], args[1])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		if output, _ := cmd.Flags().GetString("output"); output == "yaml" {
			// round trip through JSON so YAML keys match the API field names
			var doc any
			if err := json.Unmarshal(data, &doc); err != nil {
				return err
			}
			if data, err = yaml.Marshal(doc); err != nil {
				return fmt.Errorf("failed to marshal YAML: %w", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete [kind] [id]",
	Short: "Delete one entity and everything it owns",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newCatalogService()
		if err != nil {
			return err
		}
		if err := svc.Delete(commandContext(cmd.Context()), args[0], args[1]); err != nil {
			return err
		}
		logg.Info("Deleted", zap.String("kind", args[0]), zap.String("id", args[1]))
		return nil
	},
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the number of entities per kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newCatalogService()
		if err != nil {
			return err
		}
		counts, err := svc.Counts(commandContext(cmd.Context()))
		if err != nil {
			return err
		}
		for _, kind := range []string{"package", "destination", "blog", "testimonial"} {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d\n", kind, counts[kind])
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogGetCmd, catalogDeleteCmd, catalogStatsCmd)
	catalogGetCmd.Flags().StringP("output", "o", "json", "Output format: json or yaml")
}

func newCatalogService() (*catalog.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	slugger, err := slug.New(cfg.Slug)
	if err != nil {
		return nil, nil, err
	}

	return catalog.NewService(db, slugger, logg), logg, nil
}
