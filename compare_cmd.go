package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lazharichir/showdown/hands"
)

// CompareCmd evaluates two sets of cards and reports which one is stronger.
type CompareCmd struct {
	Left  string `short:"l" required:"" help:"First set of cards, e.g. 'AS AD 7C 8C 9C'"`
	Right string `short:"r" required:"" help:"Second set of cards"`
}

func (cmd *CompareCmd) Run(logger *log.Logger) error {
	return cmd.run(os.Stdout, logger)
}

func (cmd *CompareCmd) run(out io.Writer, logger *log.Logger) error {
	left, err := evaluateArg("left", cmd.Left)
	if err != nil {
		return err
	}
	right, err := evaluateArg("right", cmd.Right)
	if err != nil {
		return err
	}

	result := hands.Compare(left, right)
	logger.Debug("compared", "left", left, "right", right, "result", result)

	fmt.Fprintf(out, "left:  %s\n", formatLayout(left))
	fmt.Fprintf(out, "right: %s\n", formatLayout(right))
	switch result {
	case 1:
		fmt.Fprintln(out, winStyle.Render("greater: left wins"))
	case -1:
		fmt.Fprintln(out, winStyle.Render("less: right wins"))
	default:
		fmt.Fprintln(out, tieStyle.Render("equal: tie"))
	}
	return nil
}

func evaluateArg(name, arg string) (hands.Layout, error) {
	stack, err := parseCards([]string{arg})
	if err != nil {
		return hands.Layout{}, fmt.Errorf("%s: %w", name, err)
	}
	layout, err := hands.Evaluate(stack)
	if err != nil {
		return hands.Layout{}, fmt.Errorf("%s: %w", name, err)
	}
	return layout, nil
}
