package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExtension_NotFound(t *testing.T) {
	ran, code := RunExtension("no-such-extension", nil)
	if ran || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", ran, code)
	}
}

func TestRunExtension(t *testing.T) {
	// Put a fake halfhalf-hello extension on the PATH. A shell script is
	// enough, RunExtension only cares about lookup and the exit code.
	dir := t.TempDir()
	script := "#!/bin/sh\ntest -n \"$" + EnvBookFile + "\" || exit 1\nexit 7\n"
	path := filepath.Join(dir, "halfhalf-hello")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	ran, code := RunExtension("hello", nil)
	if !ran {
		t.Fatal("RunExtension() did not find halfhalf-hello")
	}
	// 7 proves the extension really ran, and that the book file env var
	// was set: the script exits 1 when it is missing.
	if code != 7 {
		t.Errorf("RunExtension() exit code = %d, want 7", code)
	}
}
