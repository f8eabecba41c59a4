package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avigne/trove/internal/history"
	"github.com/avigne/trove/internal/importer"
	"github.com/avigne/trove/internal/ui"
)

var (
	importConflicts = newEnumValue("skip", "merge", "overwrite", "duplicate")
	importHashtags  = newEnumValue("plain", "tags", "mentions")
	importMedia     bool
	importWaitMedia bool
)

var importCmd = &cobra.Command{
	Use:   "import <archive.zip>",
	Short: "Import a zip export into the knowledge base",
	Long: `Import a zip export produced by another notes app.

Markdown documents become typed objects: the folder path and declared
metadata pick the object type, frontmatter keys become properties, and
wikilinks, markdown links and (optionally) hashtags are resolved into
object references after every document has been imported.

When a document collides with an existing object of the same type and
title, the conflict policy decides what happens:

  skip       keep the existing object (default)
  merge      merge properties and tags, replace the body
  overwrite  replace the object wholesale
  duplicate  create a second object with a suffixed title

Hashtag handling:

  plain      leave hashtags as text (default)
  tags       collect hashtags into the object's tag list
  mentions   promote hashtags to tag objects and link every mention

Examples:
  trove import export.zip
  trove import export.zip --conflicts merge
  trove import export.zip --hashtags mentions --media`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().Var(importConflicts, "conflicts", "Conflict policy: skip, merge, overwrite, duplicate")
	importCmd.Flags().Var(importHashtags, "hashtags", "Hashtag handling: plain, tags, mentions")
	importCmd.Flags().BoolVar(&importMedia, "media", false, "Upload media files to the sync directory")
	importCmd.Flags().BoolVar(&importWaitMedia, "wait-media", false, "Wait for media uploads before exiting")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	opts, err := buildImportOptions()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrInvalidInput, err.Error(), "")
			return nil
		}
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if isJSONOutput() {
			outputError(ErrFileNotFound, err.Error(), "")
			return nil
		}
		return fmt.Errorf("failed to read archive: %w", err)
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

	syncer, err := openSyncer()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrSyncNotConfigured, err.Error(), "")
			return nil
		}
		return err
	}

	var printer *ui.ProgressPrinter
	if !isJSONOutput() {
		printer = ui.NewProgressPrinter()
		opts.Progress = printer.Func()
	}

	imp := importer.New(db, syncer)
	outcome := imp.Run(cmd.Context(), data, opts)
	if importWaitMedia {
		imp.WaitMedia()
	}

	if _, err := history.Record(getConfig().HistoryDir(), outcome); err != nil && !isJSONOutput() {
		fmt.Fprintln(os.Stderr, ui.Warningf("could not record import history: %v", err))
	}

	if isJSONOutput() {
		if len(outcome.Errors) > 0 {
			outputJSON(Response{
				OK:   false,
				Data: outcome,
				Error: &ErrorInfo{
					Code:    ErrImportFailed,
					Message: strings.Join(outcome.Errors, "; "),
				},
			})
			return nil
		}
		outputSuccessWithWarnings(outcome, outcome.Warnings, &Meta{Count: outcome.Created + outcome.Updated})
		return nil
	}

	printImportOutcome(outcome)
	if len(outcome.Errors) > 0 {
		return fmt.Errorf("import failed")
	}
	return nil
}

func buildImportOptions() (importer.Options, error) {
	conf := getConfig()

	conflictsValue := importConflicts.String()
	if conflictsValue == "" {
		conflictsValue = conf.Conflicts
	}
	conflicts, err := importer.ParseConflictPolicy(conflictsValue)
	if err != nil {
		return importer.Options{}, err
	}

	hashtagsValue := importHashtags.String()
	if hashtagsValue == "" {
		hashtagsValue = conf.Hashtags
	}
	hashtags, err := importer.ParseHashtagMode(hashtagsValue)
	if err != nil {
		return importer.Options{}, err
	}

	return importer.Options{
		Conflicts:    conflicts,
		Hashtags:     hashtags,
		ImportMedia:  importMedia,
		ExtraAliases: conf.Aliases,
	}, nil
}
