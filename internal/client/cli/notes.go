package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/client/syncer"
	"github.com/dmitrijs2005/notto/internal/common"
)

// New prompts for a title and a body and stores a new note.
func (a *App) New(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}

	n, err := a.notes.Create(ctx, title, content)
	if err != nil {
		a.fail(err)
		return err
	}
	a.ok("Note %d created", n.ID)
	return nil
}

// Edit replaces the title and body of a note. Empty input keeps the old
// value.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := noteID(a.reader, args, a.out)
	if err != nil {
		a.fail(err)
		return err
	}
	cur, err := a.notes.Get(ctx, id)
	if err != nil {
		a.fail(describe(err, id))
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", cur.Title), a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = cur.Title
	}
	content, err := GetMultiline(a.reader, "Content (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = cur.Content
	}

	if _, err := a.notes.Update(ctx, id, title, content); err != nil {
		a.fail(describe(err, id))
		return err
	}
	a.ok("Note %d updated", id)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := noteID(a.reader, args, a.out)
	if err != nil {
		a.fail(err)
		return err
	}
	n, err := a.notes.Get(ctx, id)
	if err != nil {
		a.fail(describe(err, id))
		return err
	}
	a.printNote(n)
	return nil
}

func (a *App) List(ctx context.Context) error {
	notes, err := a.notes.List(ctx)
	if err != nil {
		a.fail(err)
		return err
	}
	if len(notes) == 0 {
		a.hint("No notes yet, run new to add one")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tMODIFIED\tSTATE")
	for _, n := range notes {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", n.ID, n.Title, stamp(n.Timestamp), noteState(n))
	}
	return tw.Flush()
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := noteID(a.reader, args, a.out)
	if err != nil {
		a.fail(err)
		return err
	}
	if err := a.notes.Delete(ctx, id); err != nil {
		a.fail(describe(err, id))
		return err
	}
	a.ok("Note %d deleted", id)
	return nil
}

// Conflicts prints both sides of every unresolved conflict.
func (a *App) Conflicts(ctx context.Context) error {
	cs, err := a.notes.Conflicts(ctx)
	if err != nil {
		a.fail(err)
		return err
	}
	if len(cs) == 0 {
		a.ok("No conflicts")
		return nil
	}
	for _, c := range cs {
		fmt.Fprintf(a.out, "Note %d\n", c.NoteID)
		fmt.Fprintln(a.out, "  local:")
		a.printSide(c.Local)
		fmt.Fprintln(a.out, "  remote:")
		a.printSide(c.Remote)
	}
	a.hint("Run resolve <id> [last-write-wins|keep-local|keep-both|take-remote]")
	return nil
}

// Resolve settles one conflict with the given policy, asking for it when
// it is not on the command line.
func (a *App) Resolve(ctx context.Context, args []string) error {
	id, err := noteID(a.reader, args, a.out)
	if err != nil {
		a.fail(err)
		return err
	}

	raw := ""
	if len(args) > 1 {
		raw = args[1]
	} else {
		raw, err = getSimpleText(a.reader, "Policy (last-write-wins, keep-local, keep-both, take-remote)", a.out)
		if err != nil {
			return err
		}
	}
	policy, err := syncer.ParsePolicy(raw)
	if err == nil && policy == syncer.PolicyManual {
		err = errors.New("pick a policy other than manual")
	}
	if err != nil {
		a.fail(err)
		return err
	}

	n, err := a.notes.Resolve(ctx, id, policy)
	if err != nil {
		a.fail(describe(err, id))
		return err
	}
	if n != nil && n.ID != id {
		a.ok("Conflict on note %d resolved, local copy saved as note %d", id, n.ID)
		return nil
	}
	a.ok("Conflict on note %d resolved (%s)", id, policy)
	return nil
}

func (a *App) printNote(n *models.NoteView) {
	fmt.Fprintf(a.out, "#%d %s\n", n.ID, n.Title)
	fmt.Fprintf(a.out, "modified %s, %s\n\n", stamp(n.Timestamp), noteState(n))
	fmt.Fprintln(a.out, n.Content)
}

func (a *App) printSide(n *models.NoteView) {
	if n == nil {
		fmt.Fprintln(a.out, "    (deleted)")
		return
	}
	fmt.Fprintf(a.out, "    %s  [%s]\n", n.Title, stamp(n.Timestamp))
}

func stamp(ts int64) string {
	return time.UnixMilli(ts).Local().Format(time.DateTime)
}

func noteState(n *models.NoteView) string {
	switch {
	case n.Conflict:
		return "conflict"
	case n.Synced:
		return "synced"
	default:
		return "pending"
	}
}

// describe turns store errors into user-facing messages.
func describe(err error, id int64) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return fmt.Errorf("note %d not found", id)
	case errors.Is(err, common.ErrorUnauthorized):
		return errors.New("session is locked, log in again")
	case errors.Is(err, common.ErrCrypto), errors.Is(err, common.ErrAuthenticationFailure):
		return fmt.Errorf("note %d cannot be decrypted with this account's key", id)
	default:
		return err
	}
}
