package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/g-m-twostay/go-segments/internal/script"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a query script from file, or from standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.run,
	}
	cmd.Flags().StringP(keyInput, "i", "-", "script file, - for standard input")
	a.bind(cmd.Flags())
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	name := a.vip.GetString(keyInput)
	if len(args) == 1 {
		name = args[0]
	}
	var in io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	log := a.log.With(zap.String("input", name))
	r := script.NewRunner(
		script.WithLogger(log.Named("script")),
		script.WithModulus(a.vip.GetUint64(keyModulus)),
	)
	start := time.Now()
	if err := r.Run(cmd.Context(), in, cmd.OutOrStdout()); err != nil {
		log.Error("run failed", zap.Error(err))
		return fmt.Errorf("run %s: %w", name, err)
	}
	log.Info("run finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}
