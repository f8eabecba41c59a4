package cli

import (
	"fmt"
	"os"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/ui"
)

// printImportOutcome renders an import summary for terminal output.
func printImportOutcome(outcome *model.ImportOutcome) {
	fmt.Println(ui.Successf("imported %d object(s), updated %d, skipped %d",
		outcome.Created, outcome.Updated, outcome.Skipped))
	fmt.Println(ui.Hint(fmt.Sprintf("batch %s", outcome.BatchID)))

	if len(outcome.NewTypes) > 0 {
		fmt.Println()
		fmt.Println(ui.Bold.Render("New types"))
		table := ui.NewTable(2)
		for _, t := range outcome.NewTypes {
			table.AddRow(ui.Accent.Render(t.ID), t.Name)
		}
		fmt.Print(table.Render())
	}

	if len(outcome.SkippedItems) > 0 {
		fmt.Println()
		fmt.Println(ui.Bold.Render("Skipped"))
		table := ui.NewTable(2)
		for _, s := range outcome.SkippedItems {
			table.AddRow(s.Title, ui.Muted.Render(s.Reason))
		}
		fmt.Print(table.Render())
	}

	for _, w := range outcome.Warnings {
		fmt.Fprintln(os.Stderr, ui.Warning(w))
	}
	for _, e := range outcome.Errors {
		fmt.Fprintln(os.Stderr, ui.Error(e))
	}
}

// printRevertOutcome renders a revert summary for terminal output.
func printRevertOutcome(outcome *model.RevertOutcome, dryRun bool) {
	verb := "deleted"
	if dryRun {
		verb = "would delete"
	}
	fmt.Println(ui.Successf("%s %d object(s) and %d type(s)",
		verb, outcome.DeletedObjects, outcome.DeletedTypes))
	for _, e := range outcome.Errors {
		fmt.Fprintln(os.Stderr, ui.Error(e))
	}
}
