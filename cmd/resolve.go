package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"profile-sync/core/inventory"
	"profile-sync/core/orchestrator"
	"profile-sync/core/profile"

	"github.com/spf13/cobra"
)

var (
	resolveOpts     syncFlags
	resolveProfiles bool
)

// resolveCmd prints resolved host configurations without touching the store.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved configuration of every host",
	Long: `Load the inventories and print, as JSON, the configuration of every host
after defaults, groups and host overrides are applied. With --profiles the
rendered profile records are printed instead (without identifiers).`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringSliceVarP(&resolveOpts.inventories, "inventory", "i", nil, "Inventory source (path or s3://bucket/key); repeatable")
	resolveCmd.Flags().BoolVar(&resolveProfiles, "profiles", false, "Print rendered profile records")

	RootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, l, err := loadConfig(resolveOpts)
	if err != nil {
		return err
	}
	defer l.Sync()

	client, err := newStorageClient(cfg)
	if err != nil {
		return err
	}

	docs, err := inventory.Load(ctx, cfg.Sync.Inventories, client)
	if err != nil {
		return err
	}
	if err := orchestrator.CheckDocuments(docs); err != nil {
		return err
	}
	resolved, err := orchestrator.ResolveAll(docs)
	if err != nil {
		return err
	}

	var out any = resolved
	if resolveProfiles {
		records := make([]profile.Record, 0, len(resolved))
		for _, c := range profile.BuildAll(resolved) {
			records = append(records, c.Record)
		}
		out = records
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
