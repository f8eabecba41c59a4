package model

// Phase identifies a stage of the import pipeline. Phases are strictly
// ordered; Current is monotonically non-decreasing within a phase.
type Phase string

const (
	PhaseExtracting Phase = "extracting"
	PhaseParsing    Phase = "parsing"
	PhaseTypes      Phase = "types"
	PhaseObjects    Phase = "objects"
	PhaseLinks      Phase = "links"
	PhaseMedia      Phase = "media"
	PhaseComplete   Phase = "complete"

	// Revert phases.
	PhaseDeletingObjects Phase = "deleting-objects"
	PhaseDeletingTypes   Phase = "deleting-types"
	PhaseDone            Phase = "done"
)

// Progress is one progress report delivered to the caller's callback.
type Progress struct {
	Phase   Phase
	Current int
	Total   int
	Item    string // current item, when meaningful
}

// ProgressFunc receives progress reports. It is invoked synchronously after
// each unit of work; a nil ProgressFunc is always allowed.
type ProgressFunc func(Progress)

// Report invokes the callback if non-nil.
func (f ProgressFunc) Report(p Progress) {
	if f != nil {
		f(p)
	}
}
