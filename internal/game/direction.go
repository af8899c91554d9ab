package game

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions. Callers can poll IsValidMove over
// this slice to detect that no move is left anywhere on the board.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the single-step row/column offset for the direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// String returns the lowercase direction token.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// ParseDirection converts a lowercase token to a Direction.
// Tokens outside {up, down, left, right} are rejected so that the move
// engine only ever sees one of the four valid directions.
func ParseDirection(token string) (Direction, error) {
	switch token {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("game: unknown direction %q", token)
	}
}
