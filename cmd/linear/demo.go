package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zelezo001/linear"
)

func newDemoCommand() *cobra.Command {
	var capacity int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Push and enqueue sample values, printing what comes back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), capacity)
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", linear.DefaultCapacity, "initial capacity of the queue")

	return cmd
}

func runDemo(out io.Writer, capacity int) error {
	stack := linear.NewStack[int](0)
	for i := 1; i <= 5; i++ {
		stack.Push(i)
	}
	fmt.Fprintf(out, "stack len: %d\n", stack.Len())
	popped, err := stack.Pop()
	if err != nil {
		return fmt.Errorf("could not pop from stack: %w", err)
	}
	fmt.Fprintf(out, "stack pop: %d\n", popped)
	top, err := stack.Top()
	if err != nil {
		return fmt.Errorf("could not read top of stack: %w", err)
	}
	fmt.Fprintf(out, "stack top: %d\n", top)
	fmt.Fprintf(out, "stack empty: %t\n", stack.Empty())

	queue := linear.NewQueueWithCapacity[int](capacity)
	fmt.Fprintf(out, "queue len: %d\n", queue.Len())
	for i := 1; i <= 3; i++ {
		queue.Enqueue(i)
	}
	fmt.Fprintf(out, "queue len: %d\n", queue.Len())
	for !queue.Empty() {
		value, err := queue.Dequeue()
		if err != nil {
			return fmt.Errorf("could not dequeue: %w", err)
		}
		fmt.Fprintf(out, "queue dequeue: %d\n", value)
	}
	fmt.Fprintf(out, "queue len: %d\n", queue.Len())
	return nil
}
