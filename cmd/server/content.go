package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-saga/internal/config"
	contentrepo "github.com/KirkDiggler/rpg-saga/internal/repositories/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and load saga content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a content file, or the embedded saga when no path is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runContentValidate,
}

var contentSeedCmd = &cobra.Command{
	Use:   "seed [path]",
	Short: "Replace the SQLite content with a content file or the embedded saga",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runContentSeed,
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentSeedCmd)
}

func runContentValidate(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(pathArg(args))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "content is valid: %d events, %d decisions\n",
		len(catalog.Events), len(catalog.AllDecisions()))
	return nil
}

func runContentSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	catalog, err := loadCatalog(pathArg(args))
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := contentrepo.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out, err := store.Seed(ctx, contentrepo.SeedInput{Catalog: catalog})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d events, %d decisions\n", cfg.SQLitePath, out.Events, out.Decisions)
	return nil
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
