package cmd

import (
	"github.com/spf13/cobra"
)

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "golang-iperf3d",
	Short: "golang-iperf3d runs policy-checked iperf3 client benchmarks",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
