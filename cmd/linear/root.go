package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var errNotMatched = errors.New("not matched")

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linear",
		Short: "Array backed stack and queue with delimiter matching",
	}
	rootCmd.AddCommand(newMatchCommand())
	rootCmd.AddCommand(newDemoCommand())

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd
}

// readInput reads the file given as the only argument, or standard input of cmd when there is none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("could not read standard input: %w", err)
		}
		return string(content), nil
	}
	stat, err := os.Stat(args[0])
	if err != nil {
		return "", err
	}
	if stat.IsDir() {
		return "", fmt.Errorf("'%s' is a directory, please provide a file", args[0])
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(content), nil
}
