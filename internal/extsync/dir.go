package extsync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avigne/trove/internal/atomicfile"
	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/schema"
	"github.com/avigne/trove/internal/slugs"
)

// Dir is a Syncer that writes markdown renditions into a local directory
// tree, one folder per type. It stands in for a cloud backend; the refs it
// returns are the written paths relative to the root.
type Dir struct {
	root string
}

// NewDir creates a directory syncer rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// UploadObject writes the object as a markdown file with YAML frontmatter.
func (d *Dir) UploadObject(ctx context.Context, o *model.Object, t *schema.ObjectType) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := filepath.Join(o.Type, slugs.Slug(o.Title)+"-"+shortID(o.ID)+".md")
	abs := filepath.Join(d.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("failed to create sync directory: %w", err)
	}

	content, err := render(o, t)
	if err != nil {
		return "", err
	}
	if err := atomicfile.WriteFile(abs, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return rel, nil
}

// UploadMedia writes a media asset under media/.
func (d *Dir) UploadMedia(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := filepath.Join("media", filepath.Base(name))
	abs := filepath.Join(d.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := atomicfile.WriteFile(abs, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return rel, nil
}

func render(o *model.Object, t *schema.ObjectType) ([]byte, error) {
	front := map[string]interface{}{
		"id":    o.ID,
		"type":  o.Type,
		"title": o.Title,
	}
	if len(o.Tags) > 0 {
		front["tags"] = o.Tags
	}
	for id, v := range o.Properties {
		name := id
		if t != nil {
			if def := t.Property(id); def != nil {
				name = def.Name
			}
		}
		front[name] = v.Raw()
	}

	frontYAML, err := yaml.Marshal(front)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(frontYAML)
	b.WriteString("---\n\n")
	b.WriteString(o.Body)
	if !strings.HasSuffix(o.Body, "\n") {
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
