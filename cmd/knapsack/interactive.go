package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// errInvalidIterationInput is returned when the prompted iteration count is not an integer
var errInvalidIterationInput = errors.New("interactive: iteration count must be an integer")

func newInteractiveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for the instance file and iteration count, then run",
		Long: `Asks for the path of an instance file (empty uses the built-in
instance) and the iteration budget, then runs the configured number of runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			path, err := prompt(in, out, "Enter the path to the input file or leave it empty to use test data: ")
			if err != nil {
				return err
			}
			cfg.Instance = path

			answer, err := prompt(in, out, "Enter the number of iterations you want to use for algorithms: ")
			if err != nil {
				return err
			}
			iterations, err := strconv.Atoi(answer)
			if err != nil {
				return fmt.Errorf("%w: %q", errInvalidIterationInput, answer)
			}
			cfg.Iterations = iterations

			return runBenchmark(cmd.Context(), cfg, out)
		},
	}
}

// prompt writes the question and reads one trimmed line. End of input reads
// as an empty answer.
func prompt(in *bufio.Reader, out io.Writer, question string) (string, error) {
	if _, err := io.WriteString(out, question); err != nil {
		return "", err
	}
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
