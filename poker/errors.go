package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongCardCount reports a hand that does not hold exactly seven cards.
	ErrWrongCardCount = errors.New("hand must hold exactly 7 cards")
	// ErrDuplicateCard reports the same card given twice.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrInvalidCard reports a card that is not one of the 52.
	ErrInvalidCard = errors.New("invalid card")
)

// ValidationError describes why a set of cards is not an evaluable hand.
// Reason is one of the Err* sentinels above.
type ValidationError struct {
	Reason error
	Cards  []Card
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid hand [%s]: %v", cardsString(e.Cards), e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}
