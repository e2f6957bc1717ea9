package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/loader"
)

const trioCSV = "1,Ann,ann,2,3\n2,Bo,bo\n3,Cy,cy\n"

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// resetFlags restores every flag to its default between executions of the
// package-level command tree.
func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range cmds {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		resetFlags(c.Commands()...)
	}
}

// execute runs rootCmd with args, feeding stdin and capturing stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	app = nil

	var out bytes.Buffer
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConnections(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV)

	out, err := execute(t, "", "--data", data, "connections", "bo")
	require.NoError(t, err)
	assert.Equal(t, "Bo (bo)\n"+
		"    |-- Ann (ann)\n"+
		"        |-- Bo (bo)\n"+
		"        |-- Cy (cy)\n", out)

	out, err = execute(t, "", "--data", data, "connections", "ann", "--depth", "1")
	require.NoError(t, err)
	assert.Equal(t, "Ann (ann)\n    |-- Bo (bo)\n    |-- Cy (cy)\n", out)
}

func TestConnections_UnknownHandle(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV)
	out, err := execute(t, "", "-d", data, "tree", "zed")
	require.NoError(t, err)
	assert.Equal(t, "User handle not found.\n", out)
}

func TestSuggest(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV)
	out, err := execute(t, "", "--data", data, "suggest", "bo")
	require.NoError(t, err)
	assert.Equal(t, "Suggested friends for Bo based on mutual connections:\n - Cy (cy), Mutual Friends: 1\n", out)
}

func TestInfluencers_Limit(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV)
	out, err := execute(t, "", "--data", data, "influencers", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "Influential users based on the number of connections:\n - Ann (ann) with 2 connections.\n", out)
}

func TestStats(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV+"4,Dee,dee,9\n")
	out, err := execute(t, "", "--data", data, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "users:        5\n")
	assert.Contains(t, out, "placeholders: 1\n")
	assert.Contains(t, out, "connections:  3\n")
	assert.Contains(t, out, "strict:       false\n")
}

func TestMenuIsDefault(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV)
	out, err := execute(t, "3\nn\n", "--data", data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\nWhat would you like to do today?\n"))
	assert.Contains(t, out, " - Ann (ann) with 2 connections.\n")
	assert.True(t, strings.HasSuffix(out, "\nDo you want to continue? (Y/N): "))
}

func TestConfigFileAndOverrides(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV)
	cfgPath := writeTemp(t, "config.yaml", "data_file: "+data+"\nmax_depth: 0\n")

	out, err := execute(t, "", "--config", cfgPath, "connections", "ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann (ann)\n", out)

	out, err = execute(t, "", "--config", cfgPath, "connections", "ann", "--depth", "1")
	require.NoError(t, err)
	assert.Equal(t, "Ann (ann)\n    |-- Bo (bo)\n    |-- Cy (cy)\n", out)
}

func TestStrictRejectsForwardReferences(t *testing.T) {
	data := writeTemp(t, "users.csv", trioCSV)
	_, err := execute(t, "", "--data", data, "--strict", "stats")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "", "--data", filepath.Join(t.TempDir(), "missing.csv"), "stats")
	assert.ErrorIs(t, err, loader.ErrOpenFailed)

	data := writeTemp(t, "users.csv", trioCSV)
	_, err = execute(t, "", "--data", data, "suggest")
	assert.Error(t, err)

	_, err = execute(t, "", "--data", data, "--log-level", "loud", "stats")
	assert.Error(t, err)
}
