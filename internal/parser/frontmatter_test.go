package parser

import (
	"strings"
	"testing"
)

func TestSplitFrontmatter(t *testing.T) {
	content := `---
type: book
author: Frank Herbert
year: 1965
read: true
genres:
  - sci-fi
  - classic
---
# Dune

Body text.`

	meta, body, err := SplitFrontmatter(content)
	if err != nil {
		t.Fatalf("SplitFrontmatter: %v", err)
	}
	if meta["type"] != "book" || meta["author"] != "Frank Herbert" {
		t.Errorf("meta = %v", meta)
	}
	if meta["year"] != 1965 {
		t.Errorf("year = %v (%T), want 1965", meta["year"], meta["year"])
	}
	if meta["read"] != true {
		t.Errorf("read = %v, want true", meta["read"])
	}
	genres, ok := meta["genres"].([]interface{})
	if !ok || len(genres) != 2 {
		t.Errorf("genres = %v", meta["genres"])
	}
	if !strings.HasPrefix(strings.TrimSpace(body), "# Dune") {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatterAbsent(t *testing.T) {
	meta, body, err := SplitFrontmatter("# Just a body\n")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if body != "# Just a body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatterUnclosed(t *testing.T) {
	content := "---\ntype: book\nno closing marker"
	meta, body, err := SplitFrontmatter(content)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if meta != nil {
		t.Errorf("meta = %v, want nil", meta)
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestSplitFrontmatterMalformed(t *testing.T) {
	content := "---\n\t{not yaml::\n---\nbody survives"
	meta, body, err := SplitFrontmatter(content)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
	if !strings.Contains(body, "body survives") {
		t.Errorf("body = %q", body)
	}
}

func TestSplitFrontmatterDates(t *testing.T) {
	content := "---\npublished: 2021-03-04\n---\nx"
	meta, _, err := SplitFrontmatter(content)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if meta["published"] != "2021-03-04" {
		t.Errorf("published = %v (%T), want string date", meta["published"], meta["published"])
	}
}
