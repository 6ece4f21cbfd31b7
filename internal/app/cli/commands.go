package cli

import (
	"github.com/spf13/cobra"

	"overlog/internal/config"
)

// Options contains the parsed command-line arguments
type Options struct {
	Follow   bool
	Tail     string
	Services []string
	Help     bool
}

// Parse parses command-line args into an Options struct. defaultTail seeds
// the tail count when the flag is absent.
func Parse(args []string, defaultTail string) (*Options, error) {
	opts := &Options{Tail: defaultTail}

	root := buildRootCommand(opts, defaultTail)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	return opts, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(opts *Options, defaultTail string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName + " [flags] [service...]",
		Short:         config.AppDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Run: func(_ *cobra.Command, args []string) {
			opts.Services = args
		},
	}

	cmd.Flags().BoolVarP(&opts.Follow, "follow", "f", false, "Follow log output")
	cmd.Flags().StringVarP(&opts.Tail, "tail", "n", defaultTail, "History lines to show: a positive count or 'all'")

	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		opts.Help = true
	})

	return cmd
}
