package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avigne/trove/internal/ui"
)

var listType string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List objects",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List object types with member counts",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Only list objects of this type")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(typesCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}
	defer db.Close()

	objects, err := db.ListObjects(cmd.Context())
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}

	if listType != "" {
		filtered := objects[:0]
		for _, o := range objects {
			if o.Type == listType {
				filtered = append(filtered, o)
			}
		}
		objects = filtered
	}
	sort.Slice(objects, func(i, j int) bool {
		if objects[i].Type != objects[j].Type {
			return objects[i].Type < objects[j].Type
		}
		return strings.ToLower(objects[i].Title) < strings.ToLower(objects[j].Title)
	})

	if isJSONOutput() {
		outputSuccess(objects, &Meta{Count: len(objects)})
		return nil
	}

	if len(objects) == 0 {
		fmt.Println(ui.Hint("no objects"))
		return nil
	}
	table := ui.NewTable(3)
	for _, o := range objects {
		table.AddRow(ui.Accent.Render(o.ID), o.Type, o.Title)
	}
	fmt.Print(table.Render())
	return nil
}

func runTypes(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}
	defer db.Close()

	types, err := db.ListTypes(cmd.Context())
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}
	counts, err := db.CountByType(cmd.Context())
	if err != nil {
		if isJSONOutput() {
			outputError(ErrStoreError, err.Error(), "")
			return nil
		}
		return err
	}

	if isJSONOutput() {
		data := make([]map[string]interface{}, 0, len(types))
		for _, t := range types {
			data = append(data, map[string]interface{}{
				"id":    t.ID,
				"name":  t.Name,
				"count": counts[t.ID],
			})
		}
		outputSuccess(data, &Meta{Count: len(types)})
		return nil
	}

	table := ui.NewTable(3)
	for _, t := range types {
		name := t.Name
		if t.Icon != "" {
			name = t.Icon + " " + name
		}
		table.AddRow(ui.Accent.Render(t.ID), name, ui.Muted.Render(strconv.Itoa(counts[t.ID])))
	}
	fmt.Print(table.Render())
	return nil
}
