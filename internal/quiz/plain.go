package quiz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunPlain plays the quiz over line-based input, one answer per line, until
// input ends, "q" is entered, rounds answers were taken (when positive) or
// ctx is cancelled.
func RunPlain(ctx context.Context, dealer *Dealer, in io.Reader, out io.Writer, rounds int) (Score, error) {
	scanner := bufio.NewScanner(in)
	for rounds <= 0 || dealer.Score().Total < rounds {
		if err := ctx.Err(); err != nil {
			return dealer.Score(), err
		}

		round := dealer.Deal()
		fmt.Fprintf(out, "1: %s\n2: %s\n", round.Left, round.Right)

		var guess Guess
		for {
			fmt.Fprint(out, "Which hand wins? 1, 2 or 3 for a split (q to quit): ")
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return dealer.Score(), scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "q" {
				return dealer.Score(), nil
			}
			g, err := ParseGuess(line)
			if err == nil {
				guess = g
				break
			}
			fmt.Fprintln(out, err)
		}

		res := dealer.Judge(round, guess)
		if res.Correct() {
			fmt.Fprintf(out, "Correct! %s\n", res.Answer)
		} else {
			fmt.Fprintf(out, "Wrong: %s\n", res.Answer)
		}
		fmt.Fprintf(out, "  1: %s\n  2: %s\n", res.LeftDescribe, res.RightDescribe)
		fmt.Fprintf(out, "Score: %s\n\n", dealer.Score())
	}
	return dealer.Score(), nil
}
