package game

// Player names used by every two-player game in this module.
const (
	P1 = "p1"
	P2 = "p2"
)

// State should be immutable - operations on State always return a new copy.
// Moves are generic so searchers never inspect game-specific representations.
type State[M comparable] interface {
	// Player returns the player to move
	Player() string
	// LegalMoves returns moves in a stable, deterministic order. No moves means the state is terminal.
	LegalMoves() []M
	// Play returns the state after move without modifying the receiver
	Play(move M) State[M]
	// Winner returns the winning player of a terminal state, "" if there is none
	Winner() string
}

// Game describes a game family that can produce states and read moves typed by a human.
type Game[M comparable] interface {
	Name() string
	Instructions() string
	Start(p1Starts bool) State[M]
	ParseMove(input string) (M, error)
}

// Opponent returns the other player.
func Opponent(player string) string {
	if player == P1 {
		return P2
	}
	return P1
}
