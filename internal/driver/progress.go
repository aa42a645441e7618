package driver

import "time"

// Stage names how far a diagnose run goes, and which phase a progress
// event belongs to.
type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
	StageCheck    Stage = "check"
	// StageAll is an alias for StageCheck.
	StageAll Stage = "all"
)

// ParseStage accepts the --stage flag values.
func ParseStage(s string) (Stage, bool) {
	switch Stage(s) {
	case StageTokenize, StageParse, StageCheck:
		return Stage(s), true
	case StageAll, "":
		return StageCheck, true
	}
	return "", false
}

func (s Stage) includes(other Stage) bool {
	return stageRank(s) >= stageRank(other)
}

func stageRank(s Stage) int {
	switch s {
	case StageTokenize:
		return 1
	case StageParse:
		return 2
	default:
		return 3
	}
}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. DiagnoseDir emits from several
// goroutines, so implementations must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
