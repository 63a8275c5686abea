package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/operations"
)

func newQuizCommand(a *app) *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Practice which entry each operation generates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := a.chart()
			if err != nil {
				return err
			}
			score, asked, err := runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), chart, operations.DefaultPresets(), rounds)
			if err != nil {
				return err
			}
			a.log.Debug().Int("score", score).Int("asked", asked).Msg("quiz finished")
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 0, "number of questions (default: one per operation)")

	return cmd
}

// runQuiz asks up to rounds questions, reading one numbered answer per line
// from in. It stops early when in runs out.
func runQuiz(in io.Reader, out io.Writer, chart *accounts.Chart, presets []operations.Preset, rounds int) (score, asked int, err error) {
	if rounds <= 0 {
		rounds = len(presets)
	}
	scanner := bufio.NewScanner(in)

	for n := 0; n < rounds; n++ {
		q, err := operations.NewQuestion(presets, n, chart)
		if err != nil {
			return score, asked, err
		}

		fmt.Fprintf(out, "\n%d. %s\n", n+1, q.Prompt)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "   %d) %s\n", i+1, opt)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			break
		}
		asked++
		choice, convErr := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if convErr == nil && q.Check(choice-1) {
			score++
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. Answer: %d) %s\n", q.Answer+1, q.Options[q.Answer])
		}
	}
	if err := scanner.Err(); err != nil {
		return score, asked, fmt.Errorf("reading answers: %w", err)
	}

	fmt.Fprintf(out, "\nScore: %d/%d\n", score, asked)
	return score, asked, nil
}
