package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixiaohui100200/html2pdf/internal/canvas"
)

func TestWriteSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")

	res, err := Write(canvas.New(), KindSave, path)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if res.Kind != KindSave || res.Path != path {
		t.Errorf("result = %+v, want save kind with path %q", res, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	before := time.Now()
	res, err := Write(canvas.New(), KindFile, "doc.pdf")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f := res.File
	if f == nil {
		t.Fatal("result.File is nil")
	}
	if f.Name != "doc.pdf" {
		t.Errorf("File.Name = %q, want %q", f.Name, "doc.pdf")
	}
	if f.MediaType != "application/pdf" {
		t.Errorf("File.MediaType = %q, want %q", f.MediaType, "application/pdf")
	}
	if f.ModTime.Before(before) {
		t.Errorf("File.ModTime = %v, want >= %v", f.ModTime, before)
	}
	if !bytes.HasPrefix(f.Data, []byte("%PDF")) {
		t.Errorf("File.Data does not start with %%PDF header")
	}
}

func TestWritePassthrough(t *testing.T) {
	res, err := Write(canvas.New(), "arraybuffer", "ignored.pdf")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if res.Kind != "arraybuffer" {
		t.Errorf("result.Kind = %q, want %q", res.Kind, "arraybuffer")
	}
	if !bytes.HasPrefix(res.Data, []byte("%PDF")) {
		t.Errorf("result.Data does not start with %%PDF header")
	}
}
