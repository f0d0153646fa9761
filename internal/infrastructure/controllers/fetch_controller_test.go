//go:build unit

package controllers_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/controllers"
	"github.com/rios0rios0/tarfetch/test/domain/commanddoubles"
)

func newFetchCommand(t *testing.T, controller *controllers.FetchController, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "tarfetch", RunE: controller.Execute}
	controller.AddFlags(cmd)
	cmd.SetContext(context.Background())

	output := new(bytes.Buffer)
	cmd.SetOut(output)
	cmd.SetErr(output)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, output
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFetchControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass flag values to the fetch command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubFetchCommand{}
		controller := controllers.NewFetchController(stub)
		destination := t.TempDir()
		cmd, _ := newFetchCommand(t, controller,
			"--config", writeConfig(t, "tarfetch.yaml", ""),
			"-u", "octocat", "-p", "secret",
			"--repo", "acme/widgets/abc123",
			"--destination", destination,
			"--extractor", "tar",
			"--retries", "2",
			"--concurrency", "4",
			"--recursive",
		)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		require.Equal(t, 1, stub.ExecuteCallCount)
		settings := stub.LastSettings
		assert.Equal(t, "octocat", settings.User)
		assert.Equal(t, "secret", settings.Password)
		assert.Equal(t, "acme/widgets/abc123", settings.Repo)
		assert.Equal(t, destination, settings.Destination)
		assert.Equal(t, "tar", settings.Extractor)
		assert.Equal(t, 2, settings.Retries)
		assert.Equal(t, 4, settings.Concurrency)
		assert.True(t, settings.Recursive)
	})

	t.Run("should let flags override config file values", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubFetchCommand{}
		controller := controllers.NewFetchController(stub)
		config := writeConfig(t, "tarfetch.yaml", `user: from-file
password: file-secret
repo: acme/widgets/main
destination: /srv/out
retries: 3
`)
		cmd, _ := newFetchCommand(t, controller, "--config", config, "--user", "from-flag")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		settings := stub.LastSettings
		assert.Equal(t, "from-flag", settings.User)
		assert.Equal(t, "file-secret", settings.Password)
		assert.Equal(t, "acme/widgets/main", settings.Repo)
		assert.Equal(t, filepath.Clean("/srv/out"), settings.Destination)
		assert.Equal(t, 3, settings.Retries)
	})

	t.Run("should make a relative destination absolute", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubFetchCommand{}
		controller := controllers.NewFetchController(stub)
		cmd, _ := newFetchCommand(t, controller,
			"--config", writeConfig(t, "tarfetch.yaml", ""),
			"--destination", "out",
		)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(stub.LastSettings.Destination))
		assert.Equal(t, "out", filepath.Base(stub.LastSettings.Destination))
	})

	t.Run("should print the help on a usage error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubFetchCommand{ExecuteErr: entities.ErrUsage}
		controller := controllers.NewFetchController(stub)
		cmd, output := newFetchCommand(t, controller, "--config", writeConfig(t, "tarfetch.yaml", ""))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrUsage)
		assert.Contains(t, output.String(), "Missing required parameters")
		assert.Contains(t, output.String(), "--destination")
	})

	t.Run("should fail when the config file cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubFetchCommand{}
		controller := controllers.NewFetchController(stub)
		cmd, _ := newFetchCommand(t, controller, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestFetchControllerGetBind(t *testing.T) {
	t.Parallel()

	t.Run("should bind the root command", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewFetchController(&commanddoubles.StubFetchCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "tarfetch", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})
}
