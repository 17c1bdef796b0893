package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"profile-sync/core/orchestrator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncOpts   syncFlags
	dryRunSync bool
	yesConfirm bool
)

// syncCmd resolves the inventories and writes the profile store.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync inventories into the profile store",
	Long: `Resolve every host of every inventory, keep the identifier of profiles
that already exist and write the complete profile list.

Profiles whose hostname left the inventory are dropped. When that happens the
command asks for confirmation unless --yes is given.

Examples:
  # Sync the configured inventories
  sync

  # Preview without writing
  sync --dry-run

  # Explicit sources and destination, non-interactive
  sync --inventory ~/devices.yaml --inventory s3://inventories/lab.yaml \
       --profiles ~/profiles.json --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringSliceVarP(&syncOpts.inventories, "inventory", "i", nil, "Inventory source (path or s3://bucket/key); repeatable")
	syncCmd.Flags().StringVarP(&syncOpts.profiles, "profiles", "o", "", "Profile document path for the file store")
	syncCmd.Flags().StringVar(&syncOpts.store, "store", "", "Profile store backend (file, s3, database)")
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Show the plan without writing")
	syncCmd.Flags().BoolVarP(&yesConfirm, "yes", "y", false, "Auto-confirm dropping profiles (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, l, err := loadConfig(syncOpts)
	if err != nil {
		return err
	}
	defer l.Sync()

	runner, err := newRunner(ctx, cfg, l)
	if err != nil {
		return err
	}

	res, err := runner.Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan sync: %w", err)
	}

	printSyncReport(l, res)

	if dryRunSync {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if res.Plan.Summary.Dropped > 0 && !confirmDrop(cmd.InOrStdin(), cmd.OutOrStdout()) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	return runner.Apply(ctx, res.Plan)
}

// printSyncReport logs the plan summary and every drop.
func printSyncReport(l *zap.Logger, res *orchestrator.Result) {
	s := res.Plan.Summary

	l.Info("Sync report",
		zap.Int("total", s.Total),
		zap.Int("kept", s.Kept),
		zap.Int("created", s.Created),
		zap.Int("dropped", s.Dropped),
	)

	for _, action := range res.Plan.Dropped() {
		l.Warn("Profile will be dropped",
			zap.String("name", action.Name),
			zap.String("guid", action.ID),
		)
	}
}

// confirmDrop prompts the user for confirmation or uses the --yes flag.
func confirmDrop(in io.Reader, out io.Writer) bool {
	if yesConfirm {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\n⚠️  Type 'yes' to drop the profiles listed above: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
