package entities

// Phase is the current step of a game state machine.
type Phase string

const (
	PhaseIdle          Phase = "idle"           // nothing running (OTP between rounds)
	PhaseMemorizing    Phase = "memorizing"     // number or code visible, countdown running
	PhaseRevealing     Phase = "revealing"      // sequence elements shown one by one
	PhaseCountdown     Phase = "countdown"      // short pause before input opens
	PhaseAwaitingInput Phase = "awaiting_input" // waiting for the player's answer
	PhaseFeedback      Phase = "feedback"       // answer scored, waiting for advance
	PhaseSuccess       Phase = "success"        // OTP round won
	PhaseFailure       Phase = "failure"        // OTP round lost
	PhaseFinished      Phase = "finished"       // all questions or rounds played
	PhaseWon           Phase = "won"            // sequence: max level cleared
	PhaseLost          Phase = "lost"           // sequence: out of lives
)

// IsTerminal reports whether no further answers are accepted in this phase.
func (p Phase) IsTerminal() bool {
	switch p {
	case PhaseSuccess, PhaseFailure, PhaseFinished, PhaseWon, PhaseLost:
		return true
	default:
		return false
	}
}
