package pipeline

// State is a step of a generator run.
//
//	idle -> fetching -> parsing -> transforming -> rendering -> persisting -> done
//
// Any non-terminal state may move to failed.
type State string

const (
	StateIdle         State = "idle"
	StateFetching     State = "fetching"
	StateParsing      State = "parsing"
	StateTransforming State = "transforming"
	StateRendering    State = "rendering"
	StatePersisting   State = "persisting"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
