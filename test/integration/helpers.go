//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey   string
	Customer string
	RtrPath  string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:   os.Getenv("RTR_OTE_API_KEY"),
		Customer: os.Getenv("RTR_OTE_CUSTOMER"),
		RtrPath:  getRtrPath(),
		Verbose:  os.Getenv("RTR_VERBOSE") == "true",
	}
}

// getRtrPath determines the path to the rtr binary
func getRtrPath() string {
	if path := os.Getenv("RTR_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../rtr", "./rtr", "../rtr"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "rtr"
}

// SkipIfMissingConfig skips test if credentials are missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" || config.Customer == "" {
		t.Skip("RTR_OTE_API_KEY or RTR_OTE_CUSTOMER not set, skipping integration test")
	}
}

// CommandRunner runs the rtr binary against the test environment
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	if _, err := exec.LookPath(config.RtrPath); err != nil {
		t.Skipf("rtr binary not found at %s, skipping CLI test", config.RtrPath)
	}

	return &CommandRunner{config: config, t: t}
}

// Run executes an rtr command with OTE credentials in the environment
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.RtrPath, args...) //nolint:gosec // test binary
	cmd.Env = append(os.Environ(),
		"RTR_API_KEY="+runner.config.APIKey,
		"RTR_CUSTOMER="+runner.config.Customer,
		"RTR_OTE=true",
	)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()

	if runner.config.Verbose {
		runner.t.Logf("rtr %s\nstdout: %s\nstderr: %s", strings.Join(args, " "), outBuf.String(), errBuf.String())
	}

	return outBuf.String(), errBuf.String(), err
}
