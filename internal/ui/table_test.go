package ui

import "testing"

func TestTableRender(t *testing.T) {
	table := NewTable(2)
	table.AddRow("book", "12")
	table.AddRow("recipe", "3")

	got := table.Render()
	want := "book    12\nrecipe  3\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableDropsExtraCells(t *testing.T) {
	table := NewTable(1)
	table.AddRow("only", "extra")
	if got := table.Render(); got != "only\n" {
		t.Errorf("Render() = %q", got)
	}
}
