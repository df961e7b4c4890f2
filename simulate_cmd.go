package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/domain"
	"github.com/lazharichir/showdown/hands"
	"golang.org/x/sync/errgroup"
)

// maxSimPlayers leaves room for the board and three burns in a 52-card deck
const maxSimPlayers = 22

// SimulateCmd deals random hands across a pool of workers.
type SimulateCmd struct {
	Hands   int   `short:"n" default:"10000" help:"Number of hands to deal"`
	Players int   `short:"p" default:"6" help:"Players per table (2-22)"`
	Workers int   `short:"w" default:"0" env:"SHOWDOWN_WORKERS" help:"Number of workers (0 = number of CPUs)"`
	Seed    int64 `short:"s" default:"0" env:"SHOWDOWN_SEED" help:"Random seed (0 = clock)"`
}

// tally accumulates showdown results
type tally struct {
	hands   int
	splits  int
	dealt   [hands.NumCombinations]int // every active player's best hand
	winning [hands.NumCombinations]int // the winning hand of each deal
}

func (t *tally) merge(other tally) {
	t.hands += other.hands
	t.splits += other.splits
	for i := range t.dealt {
		t.dealt[i] += other.dealt[i]
		t.winning[i] += other.winning[i]
	}
}

func (cmd *SimulateCmd) Run(logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cmd.run(ctx, os.Stdout, logger)
}

func (cmd *SimulateCmd) run(ctx context.Context, out io.Writer, logger *log.Logger) error {
	if cmd.Hands < 1 {
		return fmt.Errorf("%w: hands must be positive, got %d", hands.ErrInvalidInput, cmd.Hands)
	}
	if cmd.Players < 2 || cmd.Players > maxSimPlayers {
		return fmt.Errorf("%w: players must be between 2 and %d, got %d", hands.ErrInvalidInput, maxSimPlayers, cmd.Players)
	}

	workers := cmd.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cmd.Hands {
		workers = cmd.Hands
	}

	logger.Info("starting simulation", "hands", cmd.Hands, "players", cmd.Players, "workers", workers, "seed", cmd.Seed)
	start := time.Now()

	total, err := cmd.simulate(ctx, workers)
	if err != nil {
		return err
	}

	logger.Info("simulation finished", "hands", total.hands, "duration", time.Since(start).Round(time.Millisecond))
	return printTally(out, total)
}

// simulate splits the hands evenly between workers and merges their tallies.
// Each worker gets its own seed drawn in order from the master source, so a
// fixed seed and worker count give the same totals.
func (cmd *SimulateCmd) simulate(ctx context.Context, workers int) (tally, error) {
	rng := cards.NewRand(cmd.Seed)
	perWorker := cmd.Hands / workers
	remainder := cmd.Hands % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan tally, workers)

	for w := 0; w < workers; w++ {
		count := perWorker
		if w < remainder {
			count++
		}
		seed := rng.Int63()

		g.Go(func() error {
			result, err := simulateHands(ctx, count, cmd.Players, seed)
			if err != nil {
				return err
			}

			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	var total tally
	for result := range results {
		total.merge(result)
	}

	if err := g.Wait(); err != nil {
		return tally{}, err
	}
	return total, nil
}

// simulateHands plays count hands at one table dealt from its own source
func simulateHands(ctx context.Context, count, players int, seed int64) (tally, error) {
	table := domain.NewTable(cards.NewRand(seed))
	for i := 0; i < players; i++ {
		if err := table.Seat(domain.NewPlayer(fmt.Sprintf("player-%d", i+1))); err != nil {
			return tally{}, err
		}
	}

	var result tally
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return tally{}, err
		}

		table.Reset()
		if err := table.DealHoleCards(); err != nil {
			return tally{}, err
		}
		for _, street := range []int{3, 1, 1} {
			if err := table.DealCommunity(street); err != nil {
				return tally{}, err
			}
		}

		standings, err := table.Standings()
		if err != nil {
			return tally{}, err
		}

		winners := 0
		for _, s := range standings {
			result.dealt[s.Layout.Combination()]++
			if s.IsWinner {
				winners++
			}
		}
		result.winning[standings[0].Layout.Combination()]++
		if winners > 1 {
			result.splits++
		}
		result.hands++
	}

	return result, nil
}

func printTally(out io.Writer, t tally) error {
	dealt := 0
	for _, n := range t.dealt {
		dealt += n
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d hands, %d split pots (%.2f%%)", t.hands, t.splits, percent(t.splits, t.hands))))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Hand\tDealt\tDealt %\tWon\tWon %\t")
	for _, c := range hands.Combinations {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%d\t%.2f\t\n",
			c, t.dealt[c], percent(t.dealt[c], dealt), t.winning[c], percent(t.winning[c], t.hands))
	}
	return w.Flush()
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}
