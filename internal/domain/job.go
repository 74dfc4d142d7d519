package domain

// JobPhase is one lifecycle step of a background screening run.
type JobPhase int

const (
	PhasePreprocessing JobPhase = iota + 1
	PhaseInference
	PhaseInterpretation
	PhaseDone
)

var phaseEvents = map[string]JobPhase{
	"data_processing_start": PhasePreprocessing,
	"inference_start":       PhaseInference,
	"interpretation_start":  PhaseInterpretation,
	"all_done":              PhaseDone,
}

func ParseJobPhase(event string) (JobPhase, bool) {
	phase, ok := phaseEvents[event]
	return phase, ok
}

func (p JobPhase) EventName() string {
	for name, phase := range phaseEvents {
		if phase == p {
			return name
		}
	}
	return "unknown"
}

// Marker is the loader phase class the job step maps to.
func (p JobPhase) Marker() LoaderMarker {
	switch p {
	case PhasePreprocessing:
		return LoaderMarkerPreprocessing
	case PhaseInference:
		return LoaderMarkerInference
	case PhaseInterpretation:
		return LoaderMarkerInterpretation
	default:
		return LoaderMarkerHidden
	}
}

func (p JobPhase) Message() string {
	switch p {
	case PhasePreprocessing:
		return "Pre-Processing your data."
	case PhaseInference:
		return "Inferencing on your data."
	case PhaseInterpretation:
		return "Interpreting your results."
	case PhaseDone:
		return "All done."
	default:
		return ""
	}
}

// FailureDiagnostic describes what went wrong before the phase could start.
func (p JobPhase) FailureDiagnostic() string {
	switch p {
	case PhasePreprocessing:
		return "error occurred before data pre-processing"
	case PhaseInference:
		return "error occurred during data processing pipeline"
	case PhaseInterpretation:
		return "error occurred during inference pipeline"
	case PhaseDone:
		return "error occurred during explanation pipeline"
	default:
		return "error occurred in unknown pipeline phase"
	}
}

type LoaderMarker string

const (
	LoaderMarkerHidden         LoaderMarker = "hidden"
	LoaderMarkerPreprocessing  LoaderMarker = "loader-1"
	LoaderMarkerInference      LoaderMarker = "loader-2"
	LoaderMarkerInterpretation LoaderMarker = "loader-3"
)

// Step is the 1-based position of the marker, 0 when hidden.
func (m LoaderMarker) Step() int {
	switch m {
	case LoaderMarkerPreprocessing:
		return 1
	case LoaderMarkerInference:
		return 2
	case LoaderMarkerInterpretation:
		return 3
	default:
		return 0
	}
}

type StatusEvent struct {
	Phase   JobPhase
	Success bool
	// RunID is empty when the server does not echo the run id back.
	RunID string
}

// BelongsTo reports whether the event may be applied to the given run.
func (e StatusEvent) BelongsTo(runID string) bool {
	return e.RunID == "" || runID == "" || e.RunID == runID
}
