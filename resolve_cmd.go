package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/hands"
)

var errInvalidSeat = errors.New("invalid seat")

// ResolveCmd settles a showdown between seats sharing one board.
type ResolveCmd struct {
	Board string   `short:"b" help:"Community cards, e.g. 'KH 9C 4D 3S JH'"`
	Seats []string `arg:"" name:"seat" help:"Seats as id=CARDS, e.g. alice=AS,AD; prefix the id with ! for a folded seat"`
}

func (cmd *ResolveCmd) Run(logger *log.Logger) error {
	return cmd.run(os.Stdout, logger)
}

func (cmd *ResolveCmd) run(out io.Writer, logger *log.Logger) error {
	board, err := cards.ParseStack(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	seats := make([]hands.Seat, 0, len(cmd.Seats))
	for _, arg := range cmd.Seats {
		seat, err := parseSeat(arg)
		if err != nil {
			return err
		}
		seats = append(seats, seat)
	}
	logger.Debug("resolving showdown", "board", board.Notation(), "seats", len(seats))

	standings, err := hands.Standings(seats, board)
	if err != nil {
		return err
	}

	var winners []string
	rows := [][]cell{{
		{"Place", headerStyle}, {"Player", headerStyle}, {"Hole", headerStyle}, {"Hand", headerStyle}, {"Cards", headerStyle},
	}}
	for _, s := range standings {
		placeStyle := lipgloss.NewStyle()
		if s.IsWinner {
			winners = append(winners, s.PlayerID)
			placeStyle = winStyle
		}
		rows = append(rows, []cell{
			{fmt.Sprintf("%d", s.Place+1), placeStyle},
			plain(s.PlayerID),
			plain(holeCards(seats, s.PlayerID)),
			{s.Layout.Combination().String(), categoryStyle},
			{s.Layout.Cards().String(), handStyle},
		})
	}
	for _, seat := range seats {
		if !seat.Active {
			rows = append(rows, []cell{
				{"-", foldStyle}, plain(seat.PlayerID), plain(seat.HoleCards.String()), {"folded", foldStyle}, plain(""),
			})
		}
	}

	fmt.Fprintln(out, headerStyle.Render("Board: "+board.String()))
	fmt.Fprint(out, renderRows(rows))

	if len(winners) > 1 {
		fmt.Fprintln(out, tieStyle.Render("Split between: "+strings.Join(winners, ", ")))
	} else {
		fmt.Fprintln(out, winStyle.Render("Winner: "+winners[0]))
	}
	logger.Info("showdown resolved", "winners", strings.Join(winners, ","))
	return nil
}

// parseSeat parses "id=AS,KD" or "!id=AS,KD" for a folded seat
func parseSeat(arg string) (hands.Seat, error) {
	id, hole, ok := strings.Cut(arg, "=")
	if !ok {
		return hands.Seat{}, fmt.Errorf("%w %q: expected id=CARDS", errInvalidSeat, arg)
	}

	active := true
	if strings.HasPrefix(id, "!") {
		active = false
		id = strings.TrimPrefix(id, "!")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return hands.Seat{}, fmt.Errorf("%w %q: missing player id", errInvalidSeat, arg)
	}

	stack, err := cards.ParseStack(hole)
	if err != nil {
		return hands.Seat{}, fmt.Errorf("%w %q: %w", errInvalidSeat, arg, err)
	}

	return hands.Seat{PlayerID: id, HoleCards: stack, Active: active}, nil
}

func holeCards(seats []hands.Seat, playerID string) string {
	for _, s := range seats {
		if s.PlayerID == playerID {
			return s.HoleCards.String()
		}
	}
	return ""
}
