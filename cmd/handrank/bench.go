package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/poker"
)

type BenchCmd struct {
	Hands int   `short:"n" help:"Number of hands to deal (0 uses the config file)"`
	Seed  int64 `help:"Deal seed (0 uses the config file, then the clock)"`
}

func (c *BenchCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	n := c.Hands
	if n <= 0 {
		n = cfg.Simulation.Iterations
	}
	seed := c.Seed
	if seed == 0 {
		seed = cfg.Simulation.Seed
	}
	seed = randutil.Seed(seed, time.Now())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := newEvaluator(cfg, logger)
	logger.Info("Running benchmark", "hands", n, "seed", seed)
	report, err := runBench(ctx, e, quartz.NewReal(), n, seed)
	if err != nil {
		return err
	}
	return report.write(os.Stdout)
}

type rankedHand struct {
	Hand     poker.Hand
	Strength poker.Strength
}

type benchReport struct {
	Hands     int
	Seed      int64
	Deal      time.Duration
	Evaluate  time.Duration
	Sort      time.Duration
	Histogram [poker.StraightFlush + 1]int
	Weakest   rankedHand
	Strongest rankedHand
}

// HandsPerSecond is zero when the evaluate phase took no measurable time.
func (r benchReport) HandsPerSecond() float64 {
	if r.Evaluate <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Evaluate.Seconds()
}

// runBench deals n hands from a seeded deck, evaluates them in parallel and
// sorts them weakest first.
func runBench(ctx context.Context, e *poker.Evaluator, clock quartz.Clock, n int, seed int64) (benchReport, error) {
	if n <= 0 {
		return benchReport{}, fmt.Errorf("hand count must be positive, got %d", n)
	}
	report := benchReport{Hands: n, Seed: seed}

	start := clock.Now()
	deck := poker.NewDeck(randutil.New(seed))
	hands := make([]poker.Hand, n)
	for i := range hands {
		hands[i] = deck.DealHand()
	}
	report.Deal = clock.Since(start)

	start = clock.Now()
	strengths, err := e.EvaluateBatch(ctx, hands, nil)
	if err != nil {
		return benchReport{}, err
	}
	report.Evaluate = clock.Since(start)

	start = clock.Now()
	ranked := make([]rankedHand, n)
	for i, h := range hands {
		ranked[i] = rankedHand{Hand: h, Strength: strengths[i]}
	}
	slices.SortFunc(ranked, func(a, b rankedHand) int {
		return a.Strength.Compare(b.Strength)
	})
	report.Sort = clock.Since(start)

	for _, r := range ranked {
		report.Histogram[r.Strength.Category()]++
	}
	report.Weakest = ranked[0]
	report.Strongest = ranked[n-1]
	return report, nil
}

func (r benchReport) write(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("hands"), r.Hands)
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("seed"), r.Seed)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("deal"), r.Deal)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("evaluate"), r.Evaluate)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("sort"), r.Sort)
	fmt.Fprintf(w, "%s\t%.0f\n", headerStyle.Render("hands/sec"), r.HandsPerSecond())
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("weakest"),
		handStyle.Render(r.Weakest.Hand.String()), r.Weakest.Strength)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("strongest"),
		handStyle.Render(r.Strongest.Hand.String()), r.Strongest.Strength)
	fmt.Fprintln(w)

	for c := poker.StraightFlush; ; c-- {
		count := r.Histogram[c]
		fmt.Fprintf(w, "%s\t%d\t%.4f%%\n",
			categoryStyle.Render(c.String()), count, 100*float64(count)/float64(r.Hands))
		if c == poker.HighCard {
			break
		}
	}
	return w.Flush()
}
