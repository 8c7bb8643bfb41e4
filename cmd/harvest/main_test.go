package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
)

type cliTestEnv struct {
	incoming   string
	library    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		incoming:   filepath.Join(base, "incoming"),
		library:    filepath.Join(base, "library"),
		configPath: filepath.Join(base, "config.toml"),
	}
	for _, dir := range []string{env.incoming, env.library} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	contents := fmt.Sprintf(`[paths]
incoming_dir = %q
library_dir = %q
log_dir = %q

[logging]
format = "json"
level = "info"
`, env.incoming, env.library, filepath.Join(base, "logs"))
	if err := os.WriteFile(env.configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeIncoming(t *testing.T, env *cliTestEnv, name string) string {
	t.Helper()
	path := filepath.Join(env.incoming, name)
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestSyncCommandLinksLibrary(t *testing.T) {
	env := setupCLITestEnv(t)
	source := writeIncoming(t, env, "Some Movie 1999.mkv")

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	requireContains(t, out, "1 linked")

	target := filepath.Join(env.library, "movies", "some movie (1999)", "movie.mkv")
	srcInfo, err := os.Stat(source)
	if err != nil {
		t.Fatalf("stat source: %v", err)
	}
	dstInfo, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat target: %v", err)
	}
	if !os.SameFile(srcInfo, dstInfo) {
		t.Fatalf("%s is not a hardlink of %s", target, source)
	}
}

func TestSyncCommandPositionalRoots(t *testing.T) {
	env := setupCLITestEnv(t)
	writeIncoming(t, env, "Show Name S01E01 720p.mkv")

	// Positional arguments override the configured paths.
	otherLib := t.TempDir()
	_, _, err := runCLI(t, []string{env.incoming, otherLib}, env.configPath)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	target := filepath.Join(otherLib, "shows", "show name", "Season 1", "episode 1.mkv")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected link at %s: %v", target, err)
	}
}

func TestSyncCommandDryRun(t *testing.T) {
	env := setupCLITestEnv(t)
	writeIncoming(t, env, "Some Movie 1999.mkv")

	out, _, err := runCLI(t, []string{"--dry"}, env.configPath)
	if err != nil {
		t.Fatalf("dry sync: %v", err)
	}
	requireContains(t, out, "Dry run")
	requireContains(t, out, "1 linked")

	target := filepath.Join(env.library, "movies", "some movie (1999)", "movie.mkv")
	if _, err := os.Lstat(target); !os.IsNotExist(err) {
		t.Fatalf("dry run created %s", target)
	}
}

func TestSyncCommandMissingDirectory(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{filepath.Join(env.incoming, "absent"), env.library}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing incoming directory")
	}
}

func TestSyncCommandNothingToDo(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	requireContains(t, out, "nothing to do")
}

func TestSyncCommandRefusesHeldLock(t *testing.T) {
	env := setupCLITestEnv(t)
	writeIncoming(t, env, "Some Movie 1999.mkv")

	logDir := filepath.Join(filepath.Dir(env.configPath), "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("mkdir logs: %v", err)
	}
	lock := flock.New(filepath.Join(logDir, "harvest.lock"))
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("hold lock: ok=%v err=%v", ok, err)
	}
	defer lock.Unlock()

	_, _, err = runCLI(t, nil, env.configPath)
	if err == nil {
		t.Fatal("expected error while run lock is held")
	}
	requireContains(t, err.Error(), "already in progress")

	target := filepath.Join(env.library, "movies", "some movie (1999)", "movie.mkv")
	if _, statErr := os.Lstat(target); !os.IsNotExist(statErr) {
		t.Fatalf("locked run still linked %s", target)
	}
}

func TestClassifyCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"classify", "Show Name S02E05 1080p.mkv", "thumb.jpg", "notes.weird"}, env.configPath)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	requireContains(t, out, "Show Name")
	requireContains(t, out, "Season 2, Episode 5")
	requireContains(t, out, "garbage")
	requireContains(t, out, "unrecognized")
}

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, env.configPath); err == nil {
		t.Fatal("expected error when config file already exists")
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.incoming)
	requireContains(t, out, "movies")
}
