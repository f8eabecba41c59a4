package extsync

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/schema"
)

func TestDirUploadObject(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)

	typ := &schema.ObjectType{
		ID: "book", Name: "Book",
		Properties: []*schema.PropertyDefinition{
			{ID: "author", Name: "Author", Kind: schema.KindText},
		},
	}
	obj := &model.Object{
		ID:         "0a1b2c3d-4444-5555-6666-777788889999",
		Type:       "book",
		Title:      "Dune",
		Body:       "<h1>Dune</h1>\n",
		Tags:       []string{"classic"},
		Properties: map[string]schema.Value{"author": schema.Text("Frank Herbert")},
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	ref, err := d.UploadObject(context.Background(), obj, typ)
	if err != nil {
		t.Fatalf("UploadObject: %v", err)
	}
	if ref != filepath.Join("book", "dune-0a1b2c3d.md") {
		t.Errorf("ref = %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(root, ref))
	if err != nil {
		t.Fatalf("read synced file: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		t.Errorf("missing frontmatter: %q", content)
	}
	for _, want := range []string{"title: Dune", "Author: Frank Herbert", "<h1>Dune</h1>"} {
		if !strings.Contains(content, want) {
			t.Errorf("content missing %q:\n%s", want, content)
		}
	}
}

func TestDirUploadMedia(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)

	ref, err := d.UploadMedia(context.Background(), "Export/assets/cover.png", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}
	if ref != filepath.Join("media", "cover.png") {
		t.Errorf("ref = %q", ref)
	}
	if _, err := os.Stat(filepath.Join(root, ref)); err != nil {
		t.Fatalf("stat synced media: %v", err)
	}
}
