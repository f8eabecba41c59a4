package cli

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/schema"
	"github.com/avigne/trove/internal/store"
	"github.com/avigne/trove/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id-or-title>",
	Short: "Show one object",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}
	defer db.Close()

	o, err := findObject(cmd.Context(), db, args[0])
	if err != nil {
		if isJSONOutput() {
			outputError(ErrObjectNotFound, err.Error(), "")
			return nil
		}
		return err
	}

	if isJSONOutput() {
		outputSuccess(o, nil)
		return nil
	}

	typ, _ := db.GetType(cmd.Context(), o.Type)
	printObject(o, typ)
	return nil
}

// findObject looks an object up by id first, then by case-insensitive title.
func findObject(ctx context.Context, db *store.DB, ref string) (*model.Object, error) {
	if o, err := db.GetObject(ctx, ref); err == nil {
		return o, nil
	}
	objects, err := db.ListObjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range objects {
		if strings.EqualFold(o.Title, ref) {
			return o, nil
		}
	}
	return nil, fmt.Errorf("object %q not found", ref)
}

func printObject(o *model.Object, typ *schema.ObjectType) {
	header := o.Title
	if typ != nil && typ.Icon != "" {
		header = typ.Icon + " " + header
	}
	fmt.Println(ui.AccentBold.Render(header))

	table := ui.NewTable(2)
	table.AddRow(ui.Muted.Render("id"), o.ID)
	table.AddRow(ui.Muted.Render("type"), o.Type)
	if len(o.Tags) > 0 {
		table.AddRow(ui.Muted.Render("tags"), strings.Join(o.Tags, ", "))
	}
	if o.ExternalRef != "" {
		table.AddRow(ui.Muted.Render("synced"), o.ExternalRef)
	}
	for key, value := range o.Properties {
		table.AddRow(ui.Muted.Render(key), value.Display())
	}
	fmt.Print(table.Render())

	if body := strings.TrimSpace(bodyToText(o.Body)); body != "" {
		fmt.Println()
		dc := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(body, dc.TermWidth)
		if err != nil {
			fmt.Println(body)
			return
		}
		fmt.Print(rendered)
	}
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// bodyToText flattens the stored rich-text body for terminal display.
func bodyToText(body string) string {
	text := strings.ReplaceAll(body, "</p>", "\n\n")
	text = tagRe.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}
