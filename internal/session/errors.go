package session

import (
	"errors"
	"fmt"
)

// ErrWrongStage is returned when a transition is invoked outside its stage.
var ErrWrongStage = errors.New("transition not allowed in this stage")

func wrongStage(op string, s Stage) error {
	return fmt.Errorf("%s in stage %s: %w", op, s, ErrWrongStage)
}
