package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/simulation"
)

type matchup struct {
	name string
	x    string
	o    string
}

var suite = []matchup{
	{name: "AI vs AI", x: service.KindSmartComputer, o: service.KindSmartComputer},
	{name: "AI vs Random", x: service.KindSmartComputer, o: service.KindRandomComputer},
	{name: "Random vs AI", x: service.KindRandomComputer, o: service.KindSmartComputer},
	{name: "Random vs Random", x: service.KindRandomComputer, o: service.KindRandomComputer},
}

func main() {
	kinds := strings.Join(append(service.NewStrategyService(nil).Kinds(), simulation.KindHuman), ", ")

	var (
		xKind   = flag.String("x", service.KindSmartComputer, "strategy for X, one of "+kinds)
		oKind   = flag.String("o", service.KindSmartComputer, "strategy for O, one of "+kinds)
		games   = flag.Int("games", 1, "number of games to play")
		verbose = flag.Bool("verbose", false, "print every move")
		all     = flag.Bool("suite", false, "run the four computer matchups and print a tally for each")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	var err error
	if *all {
		err = runSuite(os.Stdout, *games)
	} else {
		err = runMatch(os.Stdout, *xKind, *oKind, *games, *verbose)
	}

	if err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func runSuite(out io.Writer, games int) error {
	strategies := service.NewStrategyService(nil)

	for _, match := range suite {
		tally, err := simulation.Run(games, factory(strategies, match.x, entity.PlayerX), factory(strategies, match.o, entity.PlayerO))
		if err != nil {
			return fmt.Errorf("%s: %w", match.name, err)
		}

		fmt.Fprintf(out, "%s: %s\n", match.name, tally)
	}

	return nil
}

func runMatch(out io.Writer, xKind, oKind string, games int, verbose bool) error {
	strategies := service.NewStrategyService(nil)

	// one shared reader, a scanner per human would each buffer part of stdin
	var human *simulation.HumanStrategy
	newSide := func(kind, mark string) simulation.Factory {
		if kind != simulation.KindHuman {
			return factory(strategies, kind, mark)
		}

		verbose = true
		player := simulation.NewHumanStrategy(mark, os.Stdin, out)
		if human == nil {
			human = player
		} else {
			player = human.As(mark)
		}

		return func() (service.MoveStrategy, error) {
			return player, nil
		}
	}

	newX := newSide(xKind, entity.PlayerX)
	newO := newSide(oKind, entity.PlayerO)

	var gameOut io.Writer
	if verbose {
		gameOut = out
	}

	tally, err := simulation.RunWithOutput(games, newX, newO, gameOut)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s vs %s: %s\n", xKind, oKind, tally)

	return nil
}

func factory(strategies service.StrategyService, kind, mark string) simulation.Factory {
	return func() (service.MoveStrategy, error) {
		return strategies.NewStrategy(kind, mark)
	}
}
