// Package quiz deals pairs of hands and asks the player which one wins.
package quiz

import (
	"fmt"

	"github.com/lox/handrank/poker"
)

// Guess is the player's answer for a round.
type Guess int

const (
	LeftWins  Guess = 1
	RightWins Guess = 2
	Split     Guess = 3
)

// ParseGuess accepts "1", "2" or "3".
func ParseGuess(s string) (Guess, error) {
	switch s {
	case "1":
		return LeftWins, nil
	case "2":
		return RightWins, nil
	case "3":
		return Split, nil
	}
	return 0, fmt.Errorf("invalid guess %q: answer 1, 2 or 3", s)
}

func (g Guess) String() string {
	switch g {
	case LeftWins:
		return "hand 1 wins"
	case RightWins:
		return "hand 2 wins"
	case Split:
		return "split pot"
	default:
		return "unknown"
	}
}

// Round is two hands dealt from one shuffle, so they never share a card.
type Round struct {
	Left, Right poker.Hand
}

// Result is a judged round.
type Result struct {
	Round
	Guess         Guess
	Answer        Guess
	Left, Right   poker.Strength
	LeftDescribe  string
	RightDescribe string
}

// Correct reports whether the guess matched the evaluator.
func (r Result) Correct() bool {
	return r.Guess == r.Answer
}

// Score tallies answered rounds.
type Score struct {
	Correct int
	Total   int
}

func (s Score) String() string {
	if s.Total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.0f%%)", s.Correct, s.Total, 100*float64(s.Correct)/float64(s.Total))
}

// Dealer deals rounds and judges guesses.
type Dealer struct {
	deck  *poker.Deck
	eval  *poker.Evaluator
	score Score
}

// NewDealer returns a dealer drawing from deck.
func NewDealer(deck *poker.Deck, eval *poker.Evaluator) *Dealer {
	return &Dealer{deck: deck, eval: eval}
}

// Deal shuffles and deals the next round.
func (d *Dealer) Deal() Round {
	d.deck.Reset()
	return Round{Left: d.deck.DealHand(), Right: d.deck.DealHand()}
}

// Judge evaluates the round and records the guess in the score.
func (d *Dealer) Judge(r Round, g Guess) Result {
	res := Result{
		Round:         r,
		Guess:         g,
		Left:          d.eval.Evaluate(r.Left),
		Right:         d.eval.Evaluate(r.Right),
		LeftDescribe:  d.eval.Describe(r.Left),
		RightDescribe: d.eval.Describe(r.Right),
	}
	switch res.Left.Compare(res.Right) {
	case 1:
		res.Answer = LeftWins
	case -1:
		res.Answer = RightWins
	default:
		res.Answer = Split
	}

	d.score.Total++
	if res.Correct() {
		d.score.Correct++
	}
	return res
}

// Score returns the running tally.
func (d *Dealer) Score() Score {
	return d.score
}
