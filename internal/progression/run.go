package progression

import "github.com/starpathlabs/starpath/internal/curriculum"

// RunState describes how far a module run has progressed.
type RunState int

const (
	NotStarted RunState = iota
	InProgress
	Completed
)

func (s RunState) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return "not-started"
	}
}

// ModuleRun tracks the parts of one module attempt: flashcards, the quiz,
// and the coding challenge when the module has one. Marking a part twice is
// harmless. The run gates the completion pipeline: only a ready run may be
// turned into a completion.
type ModuleRun struct {
	module     curriculum.Module
	flashcards bool
	quiz       bool
	challenge  bool
}

// NewRun starts tracking a run of the given module.
func NewRun(mod curriculum.Module) *ModuleRun {
	return &ModuleRun{module: mod}
}

// Module returns the module being run.
func (r *ModuleRun) Module() curriculum.Module { return r.module }

// MarkFlashcards records that the flashcard deck was fully reviewed.
func (r *ModuleRun) MarkFlashcards() { r.flashcards = true }

// MarkQuiz records a quiz attempt.
func (r *ModuleRun) MarkQuiz() { r.quiz = true }

// MarkChallenge records a challenge attempt. Modules without a challenge
// ignore it.
func (r *ModuleRun) MarkChallenge() {
	if r.module.HasChallenge {
		r.challenge = true
	}
}

// Ready reports whether every required part is done.
func (r *ModuleRun) Ready() bool {
	return r.flashcards && r.quiz && (r.challenge || !r.module.HasChallenge)
}

// State returns the run's position in its lifecycle.
func (r *ModuleRun) State() RunState {
	switch {
	case r.Ready():
		return Completed
	case r.flashcards || r.quiz || r.challenge:
		return InProgress
	default:
		return NotStarted
	}
}

// Remaining lists the parts still required, in play order.
func (r *ModuleRun) Remaining() []string {
	var parts []string
	if !r.flashcards {
		parts = append(parts, "flashcards")
	}
	if !r.quiz {
		parts = append(parts, "quiz")
	}
	if r.module.HasChallenge && !r.challenge {
		parts = append(parts, "challenge")
	}
	return parts
}
