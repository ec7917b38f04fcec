package progression

import (
	"reflect"
	"testing"

	"github.com/starpathlabs/starpath/internal/curriculum"
)

func TestRunPartsGateCompletion(t *testing.T) {
	mod := curriculum.Module{ID: "blocks-and-chains", Title: "Blocks and Chains", HasChallenge: true}
	run := NewRun(mod)

	if run.State() != NotStarted {
		t.Errorf("state = %v, want %v", run.State(), NotStarted)
	}

	run.MarkFlashcards()
	if run.State() != InProgress {
		t.Errorf("state after flashcards = %v, want %v", run.State(), InProgress)
	}
	run.MarkQuiz()
	if run.Ready() {
		t.Error("run with an unattempted challenge should not be ready")
	}
	if got, want := run.Remaining(), []string{"challenge"}; !reflect.DeepEqual(got, want) {
		t.Errorf("remaining = %v, want %v", got, want)
	}

	run.MarkChallenge()
	if !run.Ready() {
		t.Error("run should be ready once every part is done")
	}
	if run.State() != Completed {
		t.Errorf("state = %v, want %v", run.State(), Completed)
	}
}

func TestRunWithoutChallenge(t *testing.T) {
	mod := curriculum.Module{ID: "what-is-blockchain", Title: "What is a Blockchain?"}
	run := NewRun(mod)

	// The challenge part does not exist for this module.
	run.MarkChallenge()
	if run.State() != NotStarted {
		t.Errorf("state = %v, want %v after marking a missing part", run.State(), NotStarted)
	}

	run.MarkFlashcards()
	run.MarkQuiz()
	if !run.Ready() {
		t.Error("flashcards and quiz should finish a module without a challenge")
	}
}

func TestRunMarksIdempotent(t *testing.T) {
	run := NewRun(curriculum.Module{ID: "what-is-blockchain"})

	run.MarkFlashcards()
	run.MarkFlashcards()
	run.MarkQuiz()
	run.MarkQuiz()

	if !run.Ready() {
		t.Error("repeated marks should still finish the run")
	}
	if got := run.Remaining(); len(got) != 0 {
		t.Errorf("remaining = %v, want none", got)
	}
}

func TestRunStateStrings(t *testing.T) {
	tests := []struct {
		state RunState
		want  string
	}{
		{NotStarted, "not-started"},
		{InProgress, "in-progress"},
		{Completed, "completed"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}
