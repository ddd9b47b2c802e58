package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tasselapp/tassel/internal/cli/formatter"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Keep free-form planning notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
		newNoteSetCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := app.Store.AddNote(strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", id[:8])
			return nil
		},
	}
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := app.Store.Notes()
			ids := make([]string, 0, len(notes))
			for id := range notes {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotes(notes, ids))
			return nil
		},
	}
}

func newNoteSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set ID TEXT...",
		Short: "Replace a note's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.SetNote(id, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s\n", id[:8])
			return nil
		},
	}
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveNoteID(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.DeleteNote(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed note %s\n", id[:8])
			return nil
		},
	}
}

func resolveNoteID(app *App, input string) (string, error) {
	notes := app.Store.Notes()
	if _, ok := notes[input]; ok {
		return input, nil
	}

	var matches []string
	for id := range notes {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("note not found: %q", input)
	default:
		return "", fmt.Errorf("note ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
