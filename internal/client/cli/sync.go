package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/client/syncer"
)

var errNoEngine = errors.New("sync is not running, log in first")

// Sync runs a round now and prints its summary.
func (a *App) Sync(ctx context.Context) error {
	e := a.currentEngine()
	if e == nil {
		a.fail(errNoEngine)
		return errNoEngine
	}

	stop := startSpinner(a.out, "Syncing...")
	rep, err := e.SyncNow(ctx)
	stop()
	if err != nil {
		if rep != nil && rep.State == syncer.StateOffline {
			a.fail(fmt.Errorf("server unreachable, changes kept locally: %w", err))
		} else {
			a.fail(err)
		}
		return err
	}
	a.printReport(rep)
	return nil
}

// Status prints the last round's outcome without contacting the server.
func (a *App) Status(ctx context.Context) error {
	e := a.currentEngine()
	if e == nil {
		a.fail(errNoEngine)
		return errNoEngine
	}
	rep := e.LastReport()
	if rep == nil {
		a.hint("No sync round has run yet")
		return nil
	}
	a.printReport(rep)
	return nil
}

func (a *App) printReport(rep *syncer.Report) {
	if rep.Err != nil {
		fmt.Fprintf(a.out, "last round: %s (%v)\n", rep.State, rep.Err)
		return
	}
	fmt.Fprintf(a.out, "last round: %s\n", rep.State)
	fmt.Fprintf(a.out, "  pulled %d (applied %d, skipped %d), pushed %d (acked %d)\n",
		rep.Pulled, rep.Applied, rep.Skipped, rep.Pushed, rep.Acked)
	fmt.Fprintf(a.out, "  checkpoint %d\n", rep.Checkpoint)
	if rep.Resolved > 0 {
		fmt.Fprintf(a.out, "  %d conflicts resolved automatically\n", rep.Resolved)
	}
	if n := len(rep.Conflicts); n > 0 {
		a.hint("%d conflicts need attention, run conflicts", n)
	}
}
