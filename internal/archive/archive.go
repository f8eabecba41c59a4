// Package archive unpacks an export archive and classifies its entries.
//
// Entries are classified as documents (markdown files), media (recognized
// binary assets), or ignored (directories, vendor metadata directories,
// dotfiles at any path segment). A corrupt entry never fails the whole
// extraction; it is reported as a warning and skipped.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// Document is a raw document entry extracted from the archive.
type Document struct {
	// Path is the entry path inside the archive, with forward slashes.
	Path string

	// Data is the raw file content.
	Data []byte
}

// Extraction is the classified content of one archive.
type Extraction struct {
	Documents []Document
	Media     map[string][]byte

	// Warnings lists entries that could not be read.
	Warnings []string
}

// docExts are the extensions recognized as markup documents.
var docExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// mediaExts are the extensions recognized as binary assets.
var mediaExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
	".mp3":  true,
	".mp4":  true,
}

// vendorDirs are metadata directories emitted by archiving tools; everything
// under them is ignored.
var vendorDirs = map[string]bool{
	"__MACOSX": true,
}

// Extract opens the archive bytes and classifies every entry.
func Extract(data []byte) (*Extraction, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	ex := &Extraction{Media: make(map[string][]byte)}

	for _, f := range r.File {
		name := path.Clean(strings.ReplaceAll(f.Name, `\`, "/"))
		if f.FileInfo().IsDir() || ignored(name) {
			continue
		}

		ext := strings.ToLower(path.Ext(name))
		isDoc := docExts[ext]
		isMedia := mediaExts[ext]
		if !isDoc && !isMedia {
			continue
		}

		content, err := readEntry(f)
		if err != nil {
			ex.Warnings = append(ex.Warnings, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		if isDoc {
			ex.Documents = append(ex.Documents, Document{Path: name, Data: content})
		} else {
			ex.Media[name] = content
		}
	}

	return ex, nil
}

// IsDocumentPath reports whether p has a recognized markup extension.
func IsDocumentPath(p string) bool {
	return docExts[strings.ToLower(path.Ext(p))]
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open entry: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("cannot read entry: %w", err)
	}
	return content, nil
}

// ignored reports whether the path should be skipped entirely: any dotfile
// segment, or any segment inside a vendor metadata directory.
func ignored(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") || vendorDirs[seg] {
			return true
		}
	}
	return false
}
