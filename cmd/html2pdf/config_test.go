package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Selector != "body" {
		t.Errorf("Selector = %q, want %q", cfg.Selector, "body")
	}
	if cfg.Page.ContentWidth != 0 || cfg.Page.ContentHeight != 0 {
		t.Error("page geometry must default to zero (library defaults apply)")
	}
	if cfg.Header.Selector != "" || cfg.Footer.Selector != "" {
		t.Error("bands must default to disabled")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file path loads config", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "test.yaml")
		content := `selector: "#report"
page:
  contentWidth: 500
  contentHeight: 760
pagination:
  mode: "fixed"
header:
  selector: ".page-header"
  everyPage: true
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Selector != "#report" {
			t.Errorf("Selector = %q, want %q", cfg.Selector, "#report")
		}
		if cfg.Page.ContentWidth != 500 || cfg.Page.ContentHeight != 760 {
			t.Errorf("page = %+v, want 500x760", cfg.Page)
		}
		if cfg.Pagination.Mode != "fixed" {
			t.Errorf("Mode = %q, want fixed", cfg.Pagination.Mode)
		}
		if cfg.Header.Selector != ".page-header" || !cfg.Header.EveryPage {
			t.Errorf("Header = %+v, want .page-header on every page", cfg.Header)
		}
	})

	t.Run("nonexistent file returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(configPath, []byte("bogus: true\n"), 0600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

func TestApplyFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pagination.Mode = "fixed"

	flags, _, err := parseFlags([]string{
		"--selector", "#content",
		"--content-width", "500",
		"--x", "0",
		"--header", ".hd",
		"--header-every-page",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	applyFlags(cfg, flags)

	if cfg.Selector != "#content" {
		t.Errorf("Selector = %q, want %q", cfg.Selector, "#content")
	}
	if cfg.Page.ContentWidth != 500 {
		t.Errorf("ContentWidth = %v, want 500", cfg.Page.ContentWidth)
	}
	// Explicit zero origin is distinguishable from "not set".
	if cfg.Page.X == nil || *cfg.Page.X != 0 {
		t.Error("X = nil, want explicit 0")
	}
	if cfg.Page.Y != nil {
		t.Error("Y must stay nil when the flag is omitted")
	}
	if cfg.Header.Selector != ".hd" || !cfg.Header.EveryPage {
		t.Errorf("Header = %+v, want .hd on every page", cfg.Header)
	}
	// Flags not given leave config values alone.
	if cfg.Pagination.Mode != "fixed" {
		t.Errorf("Mode = %q, want fixed preserved from config", cfg.Pagination.Mode)
	}
}

func TestDefaultOutputName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"report.html", "report.pdf"},
		{"/tmp/notes.md", "notes.pdf"},
		{"https://example.com/page.html?x=1", "page.pdf"},
		{"https://example.com/reports/q3", "q3.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := defaultOutputName(tt.input); got != tt.want {
				t.Errorf("defaultOutputName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	html, err := markdownToHTML([]byte("# Title\n\nSome *text*.\n"))
	if err != nil {
		t.Fatalf("markdownToHTML() error = %v", err)
	}

	got := string(html)
	for _, want := range []string{"<!DOCTYPE html>", "<h1", "Title", "<em>text</em>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
