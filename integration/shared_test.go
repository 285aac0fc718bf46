//go:build basic || database

// Package integration runs the readiness binary end to end.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a readiness binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getBinary returns the path to the readiness binary, building it once if needed.
func getBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "readiness-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binPath := filepath.Join(tempDir, "readiness")
		buildCmd := exec.Command("go", "build", "-o", binPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if err := buildCmd.Run(); err != nil {
			panic(fmt.Sprintf("failed to build readiness: %v", err))
		}

		sharedBinaryPath = binPath
	})

	return sharedBinaryPath
}

// runReadiness runs the binary with the given env overrides and returns stdout.
func runReadiness(t *testing.T, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = append(os.Environ(), env...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Logf("Command failed: %s\nStdout: %s\nStderr: %s", cmd.String(), stdout.String(), stderr.String())
		return stdout.String(), err
	}
	return stdout.String(), nil
}

// writeDrainageFile writes a check-in with every metric at value.
func writeDrainageFile(t *testing.T, value int) string {
	t.Helper()
	keys := []string{
		"bowel_movements", "hydration", "urine_color", "energy", "sleep",
		"skin_clarity", "lymph_movement", "liver_support", "mental_clarity", "sweating",
	}
	var b strings.Builder
	b.WriteString("metrics:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %d\n", k, value)
	}
	path := filepath.Join(t.TempDir(), "checkin.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// recordWeek stores seven daily drainage check-ins ending today and checks the gate.
func recordWeek(t *testing.T, env []string) string {
	t.Helper()
	input := writeDrainageFile(t, 9)
	for days := 6; days >= 0; days-- {
		_, err := runReadiness(t, env, "drainage", "--input", input, "--date", fmt.Sprintf("%d days ago", days), "--output", "json")
		if err != nil {
			t.Fatalf("drainage check-in %d days ago failed: %v", days, err)
		}
	}
	out, err := runReadiness(t, env, "gate", "--output", "json")
	if err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	return out
}
