package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/sixdegrees/pkg/errors"
)

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-config", AppName); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestDirDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
center = "Alice"
workers = 8
actors = "a.txt"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Center != "Alice" || cfg.Workers != 8 || cfg.Actors != "a.txt" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Movies != DefaultMovies || cfg.Credits != DefaultCredits {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `center = `},
		{"unknown key", `centre = "Alice"`},
		{"wrong type", `workers = "many"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("Parse(%q) error = %v, want INVALID_FORMAT", tt.data, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	data := "actors = \"data/actors.txt\"\ngraph = \"/abs/graph.json\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
	if want := filepath.Join(dir, "data", "actors.txt"); cfg.Actors != want {
		t.Errorf("Actors = %q, want %q", cfg.Actors, want)
	}
	if want := filepath.Join(dir, DefaultMovies); cfg.Movies != want {
		t.Errorf("Movies = %q, want %q", cfg.Movies, want)
	}
	if cfg.Graph != "/abs/graph.json" {
		t.Errorf("Graph = %q, absolute paths must be kept", cfg.Graph)
	}
}

func TestLoadLookup(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without config file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}

	dir, _ := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`center = "Bob"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Center != "Bob" {
		t.Errorf("Center = %q, want %q", cfg.Center, "Bob")
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.Code
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty actors", func(c *Config) { c.Actors = "" }, errors.ErrCodeInvalidPath},
		{"graph replaces tables", func(c *Config) { c.Actors, c.Graph = "", "graph.json" }, ""},
		{"empty center", func(c *Config) { c.Center = " " }, errors.ErrCodeInvalidInput},
		{"negative workers", func(c *Config) { c.Workers = -1 }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}
