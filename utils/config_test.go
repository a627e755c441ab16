package utils

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "2witter.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
listen_addr = "127.0.0.1:9000"
log_level = "debug"
log_file = "/tmp/2witter.log"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.ListenAddr = "127.0.0.1:9000"
	want.LogLevel = "debug"
	want.LogFile = "/tmp/2witter.log"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("level=%v err=%v", level, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, content := range []string{
		`listen_addr = `,
		`listen_port = 80`,
		`log_level = "loud"`,
		`gin_mode = "turbo"`,
	} {
		if _, err := LoadConfig(writeConfig(t, content)); err == nil {
			t.Fatalf("no error for %q", content)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("no error for missing file")
	}
}
