package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/matzehuels/erdgraph/pkg/errors"
	"github.com/matzehuels/erdgraph/pkg/layout"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeFile(t, "erdgraph.toml", `
skip_junctions = true

[layout]
row_height = 30
record_width = 260
`)

	opts, err := loadOptions(path)
	if err != nil {
		t.Fatalf("loadOptions() error: %v", err)
	}
	if !opts.SkipJunctions {
		t.Error("skip_junctions should be true")
	}
	if opts.Layout.RowHeight != 30 || opts.Layout.RecordWidth != 260 {
		t.Errorf("layout = %+v", opts.Layout)
	}
	if opts.Layout.RecordSpace != 0 {
		t.Errorf("unset values should stay zero, got record_space %g", opts.Layout.RecordSpace)
	}
}

func TestLoadOptionsEmptyPath(t *testing.T) {
	opts, err := loadOptions("")
	if err != nil {
		t.Fatalf("loadOptions(\"\") error: %v", err)
	}
	if opts.Layout != (layout.Config{}) {
		t.Errorf("expected zero layout, got %+v", opts.Layout)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[layout\nrow_height = 1"},
		{"unknown key", "[layout]\nrow_hieght = 30"},
		{"wrong type", "[layout]\nrow_height = \"tall\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadOptions(writeFile(t, "bad.toml", tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("loadOptions() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestResolveOptionsRejectsNonFinite(t *testing.T) {
	for _, content := range []string{"[layout]\nrow_height = nan\n", "[layout]\nrecord_space = inf\n"} {
		var flags layoutFlags
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.register(fs)

		c := New(os.Stderr, LogInfo)
		c.configPath = writeFile(t, "erdgraph.toml", content)
		if _, err := c.resolveOptions(fs, &flags); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("resolveOptions(%q) error = %v, want INVALID_INPUT", content, err)
		}
	}
}

func TestLayoutFlagsOverrideOnlyChanged(t *testing.T) {
	var flags layoutFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.register(fs)
	if err := fs.Parse([]string{"--row-height", "40", "--no-junctions"}); err != nil {
		t.Fatal(err)
	}

	path := writeFile(t, "erdgraph.toml", "[layout]\nrow_height = 30\nrecord_width = 260\n")
	c := New(os.Stderr, LogInfo)
	c.configPath = path

	opts, err := c.resolveOptions(fs, &flags)
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.Layout.RowHeight != 40 {
		t.Errorf("row height = %g, want flag value 40", opts.Layout.RowHeight)
	}
	if opts.Layout.RecordWidth != 260 {
		t.Errorf("record width = %g, want file value 260", opts.Layout.RecordWidth)
	}
	if opts.Layout.OriginX != layout.DefaultOriginX {
		t.Errorf("origin x = %g, want default", opts.Layout.OriginX)
	}
	if !opts.SkipJunctions {
		t.Error("--no-junctions should set SkipJunctions")
	}
}

func TestResolveOptionsRejectsInvalid(t *testing.T) {
	var flags layoutFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.register(fs)
	if err := fs.Parse([]string{"--record-width=-5"}); err != nil {
		t.Fatal(err)
	}

	c := New(os.Stderr, LogInfo)
	if _, err := c.resolveOptions(fs, &flags); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("resolveOptions() error = %v, want INVALID_INPUT", err)
	}
}
