// Package parser turns raw export documents into parsed documents: a
// metadata map, a rich-text body, and the raw cross-document references.
package parser

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SplitFrontmatter splits content into the YAML frontmatter block and the
// body. Frontmatter is only detected when the first line is exactly "---";
// if the convention is absent (or the block is unclosed) the entire content
// is body with empty metadata.
func SplitFrontmatter(content string) (meta map[string]interface{}, body string, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil, content, nil
	}

	endLine := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			endLine = i
			break
		}
	}
	if endLine == -1 {
		return nil, content, nil
	}

	body = strings.Join(lines[endLine+1:], "\n")

	raw := strings.Join(lines[1:endLine], "\n")
	var yamlData map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &yamlData); err != nil {
		// Malformed metadata degrades to an empty map; the caller records
		// a warning and the document still imports.
		return nil, body, fmt.Errorf("failed to parse frontmatter as YAML: %w", err)
	}

	meta = make(map[string]interface{}, len(yamlData))
	for key, value := range yamlData {
		meta[key] = normalizeYAML(value)
	}
	return meta, body, nil
}

// normalizeYAML flattens YAML decoding artifacts into the scalar-or-list
// shapes the property extractor understands.
func normalizeYAML(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case []interface{}:
		items := make([]interface{}, 0, len(v))
		for _, item := range v {
			items = append(items, normalizeYAML(item))
		}
		return items
	case map[string]interface{}:
		// Nested mappings have no property representation; keep them as an
		// opaque string so the key is not silently dropped.
		return fmt.Sprintf("%v", v)
	default:
		return v
	}
}
