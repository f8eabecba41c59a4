package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/avigne/trove/internal/model"
)

// phaseLabels maps pipeline phases to the labels shown to the user.
var phaseLabels = map[model.Phase]string{
	model.PhaseExtracting:      "Extracting archive",
	model.PhaseParsing:         "Parsing documents",
	model.PhaseTypes:           "Resolving types",
	model.PhaseObjects:         "Importing objects",
	model.PhaseLinks:           "Resolving links",
	model.PhaseMedia:           "Uploading media",
	model.PhaseDeletingObjects: "Deleting objects",
	model.PhaseDeletingTypes:   "Deleting types",
}

// ProgressPrinter renders pipeline progress. On a TTY it redraws one status
// line per phase; otherwise it prints a single line when each phase starts.
type ProgressPrinter struct {
	w     io.Writer
	tty   bool
	phase model.Phase
	drawn bool
}

// NewProgressPrinter creates a printer writing to stderr.
func NewProgressPrinter() *ProgressPrinter {
	return &ProgressPrinter{
		w:   os.Stderr,
		tty: isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// Func adapts the printer to the pipeline callback.
func (p *ProgressPrinter) Func() model.ProgressFunc {
	return p.update
}

func (p *ProgressPrinter) update(pr model.Progress) {
	label, ok := phaseLabels[pr.Phase]
	if !ok {
		p.finish()
		return
	}

	if !p.tty {
		if pr.Phase != p.phase {
			p.phase = pr.Phase
			fmt.Fprintf(p.w, "%s...\n", label)
		}
		return
	}

	if pr.Phase != p.phase && p.drawn {
		fmt.Fprintln(p.w)
	}
	p.phase = pr.Phase
	p.drawn = true
	fmt.Fprintf(p.w, "\r\033[K%s (%d/%d)", label, pr.Current, pr.Total)
}

// finish terminates the status line at the end of a run.
func (p *ProgressPrinter) finish() {
	if p.tty && p.drawn {
		fmt.Fprint(p.w, "\r\033[K")
		p.drawn = false
	}
}
