// Command bitkit converts and inspects packed bit sequences given as
// base-2/4/8/16/32 numeral strings.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/bitkit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "bitkit",
		Short:         "Inspect and convert packed bit sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newConvertCmd(), newCountCmd(), newInfoCmd())
	return cmd
}

func load(digits string, base int) (*bitkit.BitArray, error) {
	a := bitkit.New()
	n, err := a.Load(digits, base)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded bit sequence", "digits", len(digits), "bits", n, "base", base)
	return a, nil
}

func newConvertCmd() *cobra.Command {
	var from, to int
	var lower bool

	cmd := &cobra.Command{
		Use:   "convert DIGITS",
		Short: "Re-encode a numeral string in another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(args[0], from)
			if err != nil {
				return err
			}
			base := to
			if lower {
				base += bitkit.LowercaseBase
			}
			s, err := a.Text(base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 16, "input base (2, 4, 8, 16 or 32)")
	cmd.Flags().IntVar(&to, "to", 2, "output base (2, 4, 8, 16 or 32)")
	cmd.Flags().BoolVar(&lower, "lower", false, "emit lowercase digits")
	return cmd
}

func newCountCmd() *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "count DIGITS",
		Short: "Count the set bits of a bit sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(args[0], base)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Count(true))
			return nil
		},
	}
	cmd.Flags().IntVar(&base, "base", 16, "input base (2, 4, 8, 16 or 32)")
	return cmd
}

func newInfoCmd() *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "info DIGITS",
		Short: "Show length, chunk count and population of a bit sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(args[0], base)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bits:   %d\n", a.Len())
			fmt.Fprintf(out, "chunks: %d\n", a.WordLen())
			fmt.Fprintf(out, "ones:   %d\n", a.Count(true))
			if first, ok := a.Iter().Next(); ok {
				fmt.Fprintf(out, "first:  %d\n", first)
			} else {
				fmt.Fprintf(out, "first:  none\n")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&base, "base", 16, "input base (2, 4, 8, 16 or 32)")
	return cmd
}
