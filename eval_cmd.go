package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/hands"
	"github.com/sanity-io/litter"
)

// EvalCmd prints the best hand found in a set of cards.
type EvalCmd struct {
	Cards []string `arg:"" name:"cards" help:"Cards to evaluate, e.g. 'AS KD 7c' or AS KD 7c"`
	Dump  bool     `help:"Dump the evaluated layout structure"`
}

func (cmd *EvalCmd) Run(logger *log.Logger) error {
	return cmd.run(os.Stdout, logger)
}

func (cmd *EvalCmd) run(out io.Writer, logger *log.Logger) error {
	stack, err := parseCards(cmd.Cards)
	if err != nil {
		return err
	}
	logger.Debug("evaluating", "cards", stack.Notation())

	layout, err := hands.Evaluate(stack)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, formatLayout(layout))
	if cmd.Dump {
		fmt.Fprintln(out, litter.Sdump(layout))
	}
	return nil
}

// parseCards joins CLI arguments and parses them as one stack
func parseCards(args []string) (cards.Stack, error) {
	stack, err := cards.ParseStack(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	if len(stack) == 0 {
		return nil, fmt.Errorf("%w: no cards given", hands.ErrInvalidInput)
	}
	return stack, nil
}
