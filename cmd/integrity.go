package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"travel-admin/core/config"
	"travel-admin/core/database"
	"travel-admin/core/logger"
	"travel-admin/core/storage"
	"travel-admin/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage and database",
	Long:  `Checks the bucket layout, the catalog schema and orphaned child rows. Media drift has its own subcommand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix bucket and upload folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the catalog database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// orphansCmd represents the integrity orphans command
var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Check and purge orphaned child rows",
	Long:  `Counts child and membership rows whose owner is gone. With --fix they are deleted; with --json the report is saved to a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if !jsonOutput {
			return runIntegrityChecks(cmd.Context(), false, false, true)
		}

		svc, logg, err := newIntegrityService(false)
		if err != nil {
			return err
		}
		report, err := svc.CheckOrphans(commandContext(cmd.Context()), fixFlag)
		if err != nil {
			return fmt.Errorf("orphan check failed: %w", err)
		}

		filename := fmt.Sprintf("integrity_orphans_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		logg.Info("Orphan report saved", zap.String("file", filename), zap.Bool("clean", report.Clean))
		return nil
	},
}

// mediaCmd represents the integrity media command
var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Reconcile image URLs with uploaded objects",
	Long:  `Reports referenced images missing from storage and uploads nothing references. With --purge the unreferenced uploads are deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		purge, _ := cmd.Flags().GetBool("purge")
		svc, logg, err := newIntegrityService(false)
		if err != nil {
			return err
		}

		plan, executed, err := svc.CheckMedia(commandContext(cmd.Context()), purge)
		if err != nil {
			return fmt.Errorf("media check failed: %w", err)
		}

		for _, r := range plan.Results {
			switch {
			case r.Referenced && !r.Stored:
				logg.Warn("Missing in storage", zap.String("key", r.Key), zap.Strings("owners", r.Owners))
			case r.Stored && !r.Referenced:
				logg.Warn("Unreferenced upload", zap.String("key", r.Key))
			}
		}
		logg.Info("Media reconciled",
			zap.Int("total", plan.Summary.TotalItems),
			zap.Int("missing_storage", plan.Summary.MissingStorage),
			zap.Int("unreferenced", plan.Summary.Unreferenced),
			zap.Int("purged", executed),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd, orphansCmd, mediaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing bucket and folders")
	orphansCmd.Flags().BoolVar(&fixFlag, "fix", false, "Delete orphaned rows")
	orphansCmd.Flags().Bool("json", false, "Save the report as JSON")
	mediaCmd.Flags().Bool("purge", false, "Delete uploads nothing references")
}

// newIntegrityService wires storage and, unless storageOnly, the database.
func newIntegrityService(storageOnly bool) (*integrity.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if !storageOnly {
		if db, err = database.Connect(cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("database connection required: %w", err)
		}
	}

	return integrity.NewService(store, cfg.Storage, db, logg), logg, nil
}

func commandContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema, runOrphans bool) error {
	ctx = commandContext(ctx)
	svc, logg, err := newIntegrityService(!runSchema && !runOrphans)
	if err != nil {
		return err
	}
	onlyOne := !(runStructure && runSchema && runOrphans)

	if runStructure {
		logg.Info("Checking bucket structure...")
		report, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if report.OK() {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing structure detected", zap.Bool("bucket_missing", report.BucketMissing), zap.Strings("missing", report.Missing))

			if onlyOne && fixFlag {
				logg.Info("Fixing structure...")
				if err := svc.FixStructure(ctx, report); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else if onlyOne {
				logg.Info("Run with --fix to create the missing bucket and folders.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking catalog schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if report.Matched {
			logg.Info("Schema matches the catalog models.")
		} else {
			logg.Warn("Schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if tbl.Missing {
					logg.Warn("Missing Table", zap.String("table", table))
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runOrphans {
		fix := onlyOne && fixFlag
		logg.Info("Checking orphaned rows...", zap.Bool("fix", fix))
		report, err := svc.CheckOrphans(ctx, fix)
		if err != nil {
			return fmt.Errorf("orphan check failed: %w", err)
		}
		if report.Clean {
			logg.Info("No orphaned rows.")
		} else {
			for label, n := range report.Counts {
				if n > 0 {
					logg.Warn("Orphaned rows", zap.String("column", label), zap.Int64("count", n), zap.Bool("deleted", report.Fixed))
				}
			}
		}
	}

	return nil
}
