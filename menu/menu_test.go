package menu_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/menu"
)

const (
	menuText = "\nWhat would you like to do today?\n" +
		"1: Find a user's connections\n" +
		"2: Get friend suggestions\n" +
		"3: See influential users in your circle\n" +
		"Enter your choice: "
	searchPrompt   = "Enter the handle to search: "
	suggestPrompt  = "Enter your handle to get friend suggestions: "
	continuePrompt = "\nDo you want to continue? (Y/N): "
)

// newTrio builds Ann(1) connected to Bo(2) and Cy(3).
func newTrio(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddUser(1, "Ann", "ann")
	g.AddUser(2, "Bo", "bo")
	g.AddUser(3, "Cy", "cy")
	require.NoError(t, g.AddConnection(1, 2))
	require.NoError(t, g.AddConnection(1, 3))
	return g
}

func TestDispatch(t *testing.T) {
	g := newTrio(t)
	tests := []struct {
		name string
		cmd  menu.Command
		want string
	}{
		{
			name: "connections",
			cmd:  menu.Command{Choice: "1", Handle: "bo"},
			want: "Bo (bo)\n" +
				"    |-- Ann (ann)\n" +
				"        |-- Bo (bo)\n" +
				"        |-- Cy (cy)\n",
		},
		{
			name: "suggestions",
			cmd:  menu.Command{Choice: "2", Handle: "bo"},
			want: "Suggested friends for Bo based on mutual connections:\n" +
				" - Cy (cy), Mutual Friends: 1\n",
		},
		{
			name: "no suggestions",
			cmd:  menu.Command{Choice: "2", Handle: "ann"},
			want: "Suggested friends for Ann based on mutual connections:\n" +
				"No suggestions available.\n",
		},
		{
			name: "influencers",
			cmd:  menu.Command{Choice: "3"},
			want: "Influential users based on the number of connections:\n" +
				" - Ann (ann) with 2 connections.\n" +
				" - Bo (bo) with 1 connections.\n" +
				" - Cy (cy) with 1 connections.\n",
		},
		{name: "unknown handle tree", cmd: menu.Command{Choice: "1", Handle: "zed"}, want: "User handle not found.\n"},
		{name: "unknown handle suggest", cmd: menu.Command{Choice: "2", Handle: "zed"}, want: "User handle not found.\n"},
		{name: "invalid choice", cmd: menu.Command{Choice: "4"}, want: "Invalid choice. Please try again.\n"},
		{name: "multi-char choice", cmd: menu.Command{Choice: "12"}, want: "Invalid choice. Please try again.\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := menu.Dispatch(context.Background(), &buf, g, tc.cmd, menu.DefaultSettings())
			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestDispatch_Settings(t *testing.T) {
	g := newTrio(t)

	var buf bytes.Buffer
	s := menu.Settings{MaxDepth: 0, InfluenceLimit: 1}
	require.NoError(t, menu.Dispatch(context.Background(), &buf, g, menu.Command{Choice: "1", Handle: "ann"}, s))
	assert.Equal(t, "Ann (ann)\n", buf.String())

	buf.Reset()
	require.NoError(t, menu.Dispatch(context.Background(), &buf, g, menu.Command{Choice: "3"}, s))
	assert.Equal(t, "Influential users based on the number of connections:\n - Ann (ann) with 2 connections.\n", buf.String())
}

func TestDispatch_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := menu.Dispatch(context.Background(), &buf, nil, menu.Command{Choice: "3"}, menu.DefaultSettings())
	assert.ErrorIs(t, err, menu.ErrGraphNil)

	err = menu.Dispatch(context.Background(), &buf, newTrio(t),
		menu.Command{Choice: "1", Handle: "ann"}, menu.Settings{MaxDepth: -1})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = menu.Dispatch(ctx, &buf, newTrio(t), menu.Command{Choice: "2", Handle: "bo"}, menu.DefaultSettings())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Session(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("1 ann\ny\n2\nbo\nN\n")
	require.NoError(t, menu.Run(context.Background(), newTrio(t), in, &out))

	want := menuText + searchPrompt +
		"Ann (ann)\n" +
		"    |-- Bo (bo)\n" +
		"        |-- Ann (ann)\n" +
		"    |-- Cy (cy)\n" +
		"        |-- Ann (ann)\n" +
		continuePrompt +
		menuText + suggestPrompt +
		"Suggested friends for Bo based on mutual connections:\n" +
		" - Cy (cy), Mutual Friends: 1\n" +
		continuePrompt
	assert.Equal(t, want, out.String())
}

func TestRun_InvalidChoiceThenStop(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, menu.Run(context.Background(), newTrio(t), strings.NewReader("9 Y 1 nobody no"), &out))

	want := menuText + "Invalid choice. Please try again.\n" + continuePrompt +
		menuText + searchPrompt + "User handle not found.\n" + continuePrompt
	assert.Equal(t, want, out.String())
}

func TestRun_EndOfInput(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", menuText},
		{"before handle", "2", menuText + suggestPrompt},
		{"before answer", "3", menuText +
			"Influential users based on the number of connections:\n" +
			" - Ann (ann) with 2 connections.\n" +
			" - Bo (bo) with 1 connections.\n" +
			" - Cy (cy) with 1 connections.\n" +
			continuePrompt},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, menu.Run(context.Background(), newTrio(t), strings.NewReader(tc.in), &out))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_Settings(t *testing.T) {
	var out bytes.Buffer
	err := menu.Run(context.Background(), newTrio(t), strings.NewReader("1 cy n"), &out,
		menu.WithSettings(menu.Settings{MaxDepth: 1}))
	require.NoError(t, err)
	assert.Equal(t, menuText+searchPrompt+"Cy (cy)\n    |-- Ann (ann)\n"+continuePrompt, out.String())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := menu.Run(ctx, newTrio(t), strings.NewReader("3 y"), &bytes.Buffer{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_Logs(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	err := menu.Run(context.Background(), newTrio(t), strings.NewReader("3 y 3 n"), &bytes.Buffer{},
		menu.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("dispatch").Len())
	assert.Equal(t, 1, logs.FilterMessage("menu closed").Len())
}

func TestRun_NilGraph(t *testing.T) {
	err := menu.Run(context.Background(), nil, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, menu.ErrGraphNil)
	assert.Panics(t, func() { menu.WithLogger(nil) })
}
