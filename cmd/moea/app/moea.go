// Package app implements the moea command line.
package app

import (
	goflag "flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// version is set at build time with -ldflags "-X .../app.version=...".
var version = "v0.0.0-dev"

// NewMOEACommand builds the root command. Command output goes to out.
func NewMOEACommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moea",
		Short: "Multi-objective evolutionary optimisation",
		Long: `moea runs NSGA-II, SPEA2 or the steady-state NSGA-II variant on
benchmark and placement problems and reports the non-dominated front found.`,
		SilenceUsage: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(newRunCommand(out), newVersionCommand(out))
	return cmd
}

func newVersionCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(out, version)
			return err
		},
	}
}
