package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/bootstrap"
	"github.com/MKhiriev/go-newsletter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runMainEnv = "NEWSLETTER_RUN_MAIN"

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("newsletter-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestRun_OutOfRangePortIsBindError(t *testing.T) {
	t.Setenv("CONFIG", "")

	err := run(context.Background(), newFlagSet(), []string{"-a", "127.0.0.1:9999999"}, models.NewAppBuildInfo("", "", ""))

	var bindErr *bootstrap.BindError
	require.True(t, errors.As(err, &bindErr))
	assert.Equal(t, "127.0.0.1:9999999", bindErr.Address)
}

func TestRun_InvalidFlag(t *testing.T) {
	err := run(context.Background(), newFlagSet(), []string{"-unknown"}, models.NewAppBuildInfo("", "", ""))

	require.Error(t, err)
	var bindErr *bootstrap.BindError
	assert.False(t, errors.As(err, &bindErr))
}

func TestRun_GracefulStop(t *testing.T) {
	t.Setenv("CONFIG", "")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := run(ctx, newFlagSet(), []string{"-a", bootstrap.DefaultBindAddress}, models.NewAppBuildInfo("1.0.0", "", ""))

	assert.NoError(t, err)
}

// TestMain_ExitCode runs main in a child process and checks the exit status
// and the error printed to stderr.
func TestMain_ExitCode(t *testing.T) {
	if os.Getenv(runMainEnv) == "1" {
		os.Args = []string{os.Args[0], "-a", "127.0.0.1:9999999"}
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMain_ExitCode$")
	cmd.Env = append(os.Environ(), runMainEnv+"=1", "CONFIG=")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "main must exit with a non-zero status")
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr.String(), `bind "127.0.0.1:9999999"`)
}
