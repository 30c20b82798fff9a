package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type playOptions struct {
	size   int
	cross  string
	nought string
}

func NewPlayCommand() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		Long:  "Two players share the terminal and take turns entering \"row col\". Cross opens.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return playLocal(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", tictactoe.MinSize, "board size")
	cmd.Flags().StringVar(&opts.cross, "cross", "cross", "name of the player using X")
	cmd.Flags().StringVar(&opts.nought, "nought", "nought", "name of the player using O")

	return cmd
}

func playLocal(in io.Reader, out io.Writer, opts *playOptions) error {
	game, err := tictactoe.New(opts.size)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if err = game.RegisterPlayer(opts.cross, tictactoe.Cross); err != nil {
		return fmt.Errorf("failed to register %q: %w", opts.cross, err)
	}

	if err = game.RegisterPlayer(opts.nought, tictactoe.Nought); err != nil {
		return fmt.Errorf("failed to register %q: %w", opts.nought, err)
	}

	renderer := render.New(out)
	scanner := bufio.NewScanner(in)

	for !game.HasEnded() {
		if err = renderer.Game(game); err != nil {
			return err
		}

		player := render.Next(game)
		fmt.Fprintf(out, "%s > ", player.Name)

		if !scanner.Scan() {
			if err = scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return ErrInputClosed
		}

		row, col, err := parseMove(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if _, err = game.Play(player.Name, row, col); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	return renderer.Game(game)
}

func parseMove(line string) (int, int, error) {
	var row, col int

	if _, err := fmt.Sscan(strings.TrimSpace(line), &row, &col); err != nil {
		return 0, 0, errors.New("enter a move as \"row col\"")
	}

	return row, col, nil
}
