package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/influence"
	"github.com/katalvlaran/socialnet/suggest"
	"github.com/katalvlaran/socialnet/tree"
)

// Menu choices.
const (
	ChoiceConnections = "1"
	ChoiceSuggestions = "2"
	ChoiceInfluencers = "3"
)

// User-visible messages and prompts.
const (
	MsgHandleNotFound = "User handle not found."
	MsgInvalidChoice  = "Invalid choice. Please try again."

	promptMenu = "\nWhat would you like to do today?\n" +
		"1: Find a user's connections\n" +
		"2: Get friend suggestions\n" +
		"3: See influential users in your circle\n" +
		"Enter your choice: "
	promptSearchHandle  = "Enter the handle to search: "
	promptSuggestHandle = "Enter your handle to get friend suggestions: "
	promptContinue      = "\nDo you want to continue? (Y/N): "
)

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("menu: graph is nil")

// Command is one parsed menu request.
type Command struct {
	// Choice is the raw menu token.
	Choice string

	// Handle is the user handle for choices 1 and 2.
	Handle string
}

// Settings carries query bounds into Dispatch.
type Settings struct {
	// MaxDepth bounds the connection tree; 0 prints only the root.
	MaxDepth int

	// SuggestionLimit caps suggestion lines; 0 means all.
	SuggestionLimit int

	// InfluenceLimit caps influence lines; 0 means all.
	InfluenceLimit int
}

// DefaultSettings mirrors the package defaults of tree, suggest and influence.
func DefaultSettings() Settings {
	return Settings{MaxDepth: tree.DefaultMaxDepth}
}

// Dispatch executes cmd against g and writes the result to w.
//
// An unknown handle prints MsgHandleNotFound and an unknown choice prints
// MsgInvalidChoice; neither is an error. Errors are reserved for write
// failures, cancellation and invalid Settings.
func Dispatch(ctx context.Context, w io.Writer, g *core.Graph, cmd Command, s Settings) error {
	if g == nil {
		return ErrGraphNil
	}

	switch cmd.Choice {
	case ChoiceConnections:
		id, ok, err := resolve(w, g, cmd.Handle)
		if err != nil || !ok {
			return err
		}
		res, err := tree.Walk(g, id, tree.WithContext(ctx), tree.WithMaxDepth(s.MaxDepth))
		if err != nil {
			return fmt.Errorf("menu: connections: %w", err)
		}
		return tree.Render(w, g, res)

	case ChoiceSuggestions:
		id, ok, err := resolve(w, g, cmd.Handle)
		if err != nil || !ok {
			return err
		}
		res, err := suggest.Suggest(g, id, suggest.WithContext(ctx), suggest.WithLimit(s.SuggestionLimit))
		if err != nil {
			return fmt.Errorf("menu: suggestions: %w", err)
		}
		return suggest.Render(w, g, res)

	case ChoiceInfluencers:
		entries, err := influence.Rank(g, influence.WithLimit(s.InfluenceLimit))
		if err != nil {
			return fmt.Errorf("menu: influencers: %w", err)
		}
		return influence.Render(w, g, entries)

	default:
		_, err := fmt.Fprintln(w, MsgInvalidChoice)
		return err
	}
}

// resolve maps handle to a user id, printing MsgHandleNotFound on a miss.
func resolve(w io.Writer, g *core.Graph, handle string) (int, bool, error) {
	id, err := g.UserIDByHandle(handle)
	if errors.Is(err, core.ErrHandleNotFound) {
		_, werr := fmt.Fprintln(w, MsgHandleNotFound)
		return 0, false, werr
	}
	if err != nil {
		return 0, false, err
	}

	return id, true, nil
}

// Run drives the interactive loop until the user declines to continue,
// in runs out, or ctx is cancelled.
func Run(ctx context.Context, g *core.Graph, in io.Reader, out io.Writer, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := newRunConfig(opts...)

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	for rounds := 1; ; rounds++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := io.WriteString(out, promptMenu); err != nil {
			return err
		}
		choice, ok := next()
		if !ok {
			break
		}
		cmd := Command{Choice: choice}

		switch choice {
		case ChoiceConnections, ChoiceSuggestions:
			prompt := promptSearchHandle
			if choice == ChoiceSuggestions {
				prompt = promptSuggestHandle
			}
			if _, err := io.WriteString(out, prompt); err != nil {
				return err
			}
			if cmd.Handle, ok = next(); !ok {
				return sc.Err()
			}
		}

		cfg.logger.Debug("dispatch",
			zap.Int("round", rounds),
			zap.String("choice", cmd.Choice),
			zap.String("handle", cmd.Handle),
		)
		if err := Dispatch(ctx, out, g, cmd, cfg.settings); err != nil {
			cfg.logger.Error("dispatch failed", zap.Int("round", rounds), zap.Error(err))
			return err
		}

		if _, err := io.WriteString(out, promptContinue); err != nil {
			return err
		}
		answer, ok := next()
		if !ok || (answer != "Y" && answer != "y") {
			cfg.logger.Debug("menu closed", zap.Int("rounds", rounds))
			break
		}
	}

	return sc.Err()
}
