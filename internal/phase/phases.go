package phase

// UnitPhase tracks how far a source file has travelled through the pipeline.
//
// Progression is strictly sequential:
// NotStarted -> Lexed -> Parsed -> Generated -> Emitted
//
// A unit that fails a phase stays at the last phase it completed.
type UnitPhase int

const (
	PhaseNotStarted UnitPhase = iota // File read, nothing done yet
	PhaseLexed                       // Tokens produced
	PhaseParsed                      // AST built
	PhaseGenerated                   // Backend text produced
	PhaseEmitted                     // Output written to disk
)

// PhasePrerequisites maps each phase to the phase a unit must be in before
// it can advance to it.
var PhasePrerequisites = map[UnitPhase]UnitPhase{
	PhaseLexed:     PhaseNotStarted,
	PhaseParsed:    PhaseLexed,
	PhaseGenerated: PhaseParsed,
	PhaseEmitted:   PhaseGenerated,
}

// CanAdvance reports whether a unit at from may move to to.
func CanAdvance(from, to UnitPhase) bool {
	prev, ok := PhasePrerequisites[to]
	return ok && prev == from
}

func (p UnitPhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLexed:
		return "Lexed"
	case PhaseParsed:
		return "Parsed"
	case PhaseGenerated:
		return "Generated"
	case PhaseEmitted:
		return "Emitted"
	default:
		return "Unknown"
	}
}
