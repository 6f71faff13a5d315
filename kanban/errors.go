package kanban

import "fmt"

// InvalidMoveError reports a move that does not fit the board it was applied to.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move from %s: %s", e.Move.Source, e.Reason)
}

// InvalidBoardError reports a board that breaks the one-task-one-position rule.
type InvalidBoardError struct {
	Reason string
}

func (e *InvalidBoardError) Error() string {
	return "invalid board: " + e.Reason
}
