package phase10

// InvalidPhase is returned by PhaseDetails for numbers outside 1..10
const InvalidPhase = "Invalid phase number"

var phases = [...]string{
	"2 sets of 3",
	"1 set of 3 and 1 run of 4",
	"1 set of 4 and 1 run of 4",
	"1 run of 7",
	"1 run of 8",
	"1 run of 9",
	"2 sets of 4",
	"7 cards of a color",
	"1 set of 5 and 1 set of 2",
	"1 set of 5 and 1 set of 3",
}

// PhaseDetails describes the contract a player must lay down in a phase
func PhaseDetails(phase int) string {
	if phase < 1 || phase > len(phases) {
		return InvalidPhase
	}
	return phases[phase-1]
}
