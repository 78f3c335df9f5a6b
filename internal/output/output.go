// Package output maps a finished page document onto the requested artifact
// kind: a file on disk, an in-memory named file, or raw PDF bytes.
package output

import (
	"fmt"
	"time"

	"github.com/lixiaohui100200/html2pdf/internal/canvas"
)

// Output kinds. Any kind other than "save" and "file" is passed through to
// the canvas's native serialization, raw PDF bytes.
const (
	KindSave = "save"
	KindFile = "file"
)

// File is an in-memory file-like artifact.
type File struct {
	Name      string
	MediaType string
	ModTime   time.Time
	Data      []byte
}

// Result is the artifact of one generation. Exactly one of Path, File, or
// Data is populated, matching Kind.
type Result struct {
	Kind string
	// Path is set for KindSave.
	Path string
	// File is set for KindFile.
	File *File
	// Data is set for passthrough kinds.
	Data []byte
}

// Write serializes doc according to kind and filename.
func Write(doc *canvas.Document, kind, filename string) (*Result, error) {
	switch kind {
	case KindSave:
		if err := doc.SaveFile(filename); err != nil {
			return nil, fmt.Errorf("failed to save PDF: %w", err)
		}
		return &Result{Kind: KindSave, Path: filename}, nil

	case KindFile:
		data, err := doc.Bytes()
		if err != nil {
			return nil, err
		}
		return &Result{
			Kind: KindFile,
			File: &File{
				Name:      filename,
				MediaType: "application/pdf",
				ModTime:   time.Now(),
				Data:      data,
			},
		}, nil

	default:
		data, err := doc.Bytes()
		if err != nil {
			return nil, err
		}
		return &Result{Kind: kind, Data: data}, nil
	}
}
