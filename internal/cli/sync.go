package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avigne/trove/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push unsynced objects to the sync directory",
	Long: `Push every object without an external reference to the configured
sync directory as a markdown rendition, and stamp the reference back on
the object. Synced objects are permanent: revert will not delete them.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	syncer, err := openSyncer()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrSyncNotConfigured, err.Error(), "")
			return nil
		}
		return err
	}
	if syncer == nil {
		msg := "no sync_dir configured"
		if isJSONOutput() {
			outputError(ErrSyncNotConfigured, msg, "set sync_dir in config.toml")
			return nil
		}
		return fmt.Errorf("%s (set sync_dir in config.toml)", msg)
	}

	db, err := openStore()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	objects, err := db.ListObjects(ctx)
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}

	pushed := 0
	var failures []string
	for _, o := range objects {
		if o.Synced() {
			continue
		}
		typ, err := db.GetType(ctx, o.Type)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", o.Title, err))
			continue
		}
		ref, err := syncer.UploadObject(ctx, o, typ)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", o.Title, err))
			continue
		}
		o.ExternalRef = ref
		o.UpdatedAt = time.Now().UTC()
		if err := db.UpdateObject(ctx, o); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", o.Title, err))
			continue
		}
		pushed++
	}

	if isJSONOutput() {
		outputSuccessWithWarnings(map[string]int{"pushed": pushed}, failures, &Meta{Count: pushed})
		return nil
	}
	fmt.Println(ui.Successf("pushed %d object(s)", pushed))
	for _, f := range failures {
		fmt.Println(ui.Warning(f))
	}
	if len(failures) > 0 {
		return fmt.Errorf("sync finished with errors")
	}
	return nil
}
