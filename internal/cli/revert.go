package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avigne/trove/internal/cleanup"
	"github.com/avigne/trove/internal/ui"
)

var (
	revertBatch  string
	revertDryRun bool
	revertYes    bool
)

var revertCmd = &cobra.Command{
	Use:   "revert",
	Short: "Delete imported objects that were never synced",
	Long: `Delete imported objects and the types imports left behind.

Objects that have been pushed to external storage are never touched.
Without --batch, every unsynced object is deleted; with --batch, only
objects stamped with that import batch id. Types that no remaining
object uses are removed too, except the protected ones from config.

Examples:
  trove revert --dry-run
  trove revert --batch 4f7c9a1e-...
  trove revert --yes`,
	Args: cobra.NoArgs,
	RunE: runRevert,
}

func init() {
	revertCmd.Flags().StringVar(&revertBatch, "batch", "", "Only revert objects from this import batch")
	revertCmd.Flags().BoolVar(&revertDryRun, "dry-run", false, "Report what would be deleted without deleting")
	revertCmd.Flags().BoolVarP(&revertYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(revertCmd)
}

func runRevert(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}
	defer db.Close()

	if !revertDryRun && !revertYes {
		if !promptForConfirm("Delete imported objects?") {
			fmt.Fprintln(os.Stderr, "aborted (use --yes to skip the prompt)")
			return nil
		}
	}

	opts := cleanup.Options{
		Batch:     revertBatch,
		Protected: getConfig().ProtectedTypes,
		DryRun:    revertDryRun,
	}
	var printer *ui.ProgressPrinter
	if !isJSONOutput() {
		printer = ui.NewProgressPrinter()
		opts.Progress = printer.Func()
	}

	outcome := cleanup.New(db).Revert(cmd.Context(), opts)

	if isJSONOutput() {
		outputSuccess(outcome, &Meta{Count: outcome.DeletedObjects})
		return nil
	}
	printRevertOutcome(outcome, revertDryRun)
	if len(outcome.Errors) > 0 {
		return fmt.Errorf("revert finished with errors")
	}
	return nil
}
