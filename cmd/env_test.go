// The cmd package tests run the real binary against a throwaway project:
// a built site fixture, an isolated HOME for the global config and audit
// log, and no SITEKIT_* variables from the caller's environment.

package cmd

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the sitekit binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "sitekit-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "sitekit"
		if os.PathSeparator == '\\' {
			binaryName = "sitekit.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	extra  []string // additional environment variables
}

// Fixture pages. Every localised page links within its locale and every
// locale home carries its marker.
var cleanSite = map[string]string{
	"dist/index.html":      `<html><body><a href="/en/">English</a><a href="/de/">Deutsch</a></body></html>`,
	"dist/en/index.html":   `<html><body data-locale="en"><a href="/en/pricing/">Pricing</a><a href="https://github.com/openticketai">GitHub</a><a href="#top">Top</a></body></html>`,
	"dist/en/pricing.html": `<html><body data-locale="en"><a href="/en/">Home</a><a href="/assets/logo.svg">Logo</a></body></html>`,
	"dist/de/index.html":   `<html><body data-locale="de"><a href="/de/pricing/">Preise</a><a href="mailto:hello@openticket.ai">Mail</a></body></html>`,
	"dist/de/pricing.html": `<html><body data-locale="de"><a href="../">Start</a></body></html>`,
	"dist/assets/logo.svg": `<svg/>`,
	"broken-links.log":     "",
}

// Content collection fixture: launch is translated, roadmap is not.
var contentFixture = map[string]string{
	"src/content/blog/en/launch.md":  "---\ntitle: Launch\ndate: 2026-03-01\n---\nWe launched.\n",
	"src/content/blog/en/roadmap.md": "---\ntitle: Roadmap\ndate: 2026-05-01\n---\nWhat comes next.\n",
	"src/content/blog/de/launch.md":  "---\ntitle: Start\ndate: 2026-03-01\n---\nWir sind gestartet.\n",
}

// newTestEnv creates a project directory containing the clean site fixture.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{t: t, dir: t.TempDir(), home: t.TempDir(), binary: buildBinary(t)}
	env.write(cleanSite)
	env.write(contentFixture)
	return env
}

// write creates files relative to the project directory.
func (e *testEnv) write(files map[string]string) {
	e.t.Helper()
	for name, body := range files {
		p := filepath.Join(e.dir, filepath.FromSlash(name))
		require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(e.t, os.WriteFile(p, []byte(body), 0o644))
	}
}

// remove deletes a file relative to the project directory.
func (e *testEnv) remove(name string) {
	e.t.Helper()
	require.NoError(e.t, os.Remove(filepath.Join(e.dir, filepath.FromSlash(name))))
}

// setenv adds an environment variable for subsequent runs.
func (e *testEnv) setenv(key, value string) {
	e.extra = append(e.extra, key+"="+value)
}

// environ returns the caller's environment without SITEKIT_* and HOME,
// plus the isolated HOME and any extra variables.
func (e *testEnv) environ() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "SITEKIT_") || strings.HasPrefix(kv, "HOME=") || strings.HasPrefix(kv, "USERPROFILE=") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "HOME="+e.home, "USERPROFILE="+e.home, "NO_COLOR=1")
	return append(env, e.extra...)
}

func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.environ()
	return cmd
}

// run executes sitekit with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("sitekit %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes sitekit and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// exitCode executes sitekit and returns its exit status and combined output.
func (e *testEnv) exitCode(args ...string) (int, string) {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err == nil {
		return 0, out
	}
	var exit *exec.ExitError
	require.ErrorAs(e.t, err, &exit, "output: %s", out)
	return exit.ExitCode(), out
}

// runJSON executes sitekit with -o json and decodes stdout into v.
// It returns the exit status.
func (e *testEnv) runJSON(v any, args ...string) int {
	e.t.Helper()
	cmd := e.command(append(args, "-o", "json")...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()

	code := 0
	if err != nil {
		var exit *exec.ExitError
		require.ErrorAs(e.t, err, &exit, "stderr: %s", stderr.String())
		code = exit.ExitCode()
	}
	require.NoError(e.t, json.Unmarshal(out, v), "stdout: %s\nstderr: %s", out, stderr.String())
	return code
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
