package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"golang-iperf3d/internal/pkg/command"
	"golang-iperf3d/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var maxOutputFlag int

var runCmd = &cobra.Command{
	Use:   "run <server> [port] [time] [thread] [-R]",
	Short: "Run one iperf3 benchmark and print its report",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := command.Parse(args)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), command.Usage(cmd.Root().Name()+" run"))
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runner, err := createRunner(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logging.WithComponentAndServer("run", req.Server).WithField("config_file", configFlag).Debug("Running benchmark")

		result := command.Truncate(runner.Run(ctx, req), maxOutputFlag)
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	// Everything after the server belongs to the benchmark, including -R.
	runCmd.Flags().SetInterspersed(false)
	runCmd.Flags().IntVar(&maxOutputFlag, "max-output", 0, "Keep only the last N characters of the report (0 = all)")
	rootCmd.AddCommand(runCmd)
}
