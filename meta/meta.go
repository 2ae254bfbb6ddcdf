// meta/meta.go
package meta

// GO_ROUTINES defines the number of games an experiment plays at once.
const GO_ROUTINES = 8

// NUM_GAMES defines the number of games per matchup in an experiment.
const NUM_GAMES = 10

// MAX_TURNS defines the number of moves after which a game is abandoned.
const MAX_TURNS = 300

// START_COUNT defines the default starting value of subtract square.
const START_COUNT = 20

// SEED defines the default seed of the random strategy.
const SEED = 1

// SIDE_LENGTH defines the default side length of the stonehenge board.
const SIDE_LENGTH = 2
