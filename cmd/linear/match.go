package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zelezo001/linear/match"
)

type matchOptions struct {
	html    bool
	opening string
	closing string
}

func newMatchCommand() *cobra.Command {
	var options matchOptions
	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Check that delimiters or tags of the input are balanced",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args, options)
		},
	}
	cmd.Flags().BoolVar(&options.html, "html", false, "match <tag> and </tag> instead of delimiters")
	cmd.Flags().StringVar(&options.opening, "opening", match.DefaultOpening, "opening delimiters")
	cmd.Flags().StringVar(&options.closing, "closing", match.DefaultClosing,
		"closing delimiters, paired with opening delimiters by position")
	cmd.MarkFlagsMutuallyExclusive("html", "opening")
	cmd.MarkFlagsMutuallyExclusive("html", "closing")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string, options matchOptions) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var matched bool
	if options.html {
		matched = match.HTML(input)
	} else {
		matcher, err := match.NewMatcher(options.opening, options.closing)
		if err != nil {
			return fmt.Errorf("invalid delimiters: %w", err)
		}
		matched = matcher.Matched(input)
	}

	if !matched {
		return errNotMatched
	}
	fmt.Fprintln(cmd.OutOrStdout(), "matched")
	return nil
}
