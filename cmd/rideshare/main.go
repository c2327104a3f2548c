// SPDX-License-Identifier: MIT

// Command rideshare solves the ride-share allocation problem, or any linear
// program given as a YAML/JSON file, with the interior-point solver.
//
// Usage:
//
//	rideshare solve [--problem file] [--mu0 1] [--tol 1e-6] [--max-iter 100]
//	                [--kkt direct|reduced] [--trace] [--trace-out file] [--verify]
//	rideshare show  [--problem file]
//
// Every solve flag can also come from a RIDESHARE_* environment variable
// (RIDESHARE_MAX_ITER=50) or from the file named by --config; flags win over
// the environment, which wins over the file.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// envPrefix namespaces the environment variables read through viper.
const envPrefix = "RIDESHARE"

func main() {
	defer klog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand wires a fresh viper instance and the klog flags into the
// command tree.
func newRootCommand() *cobra.Command {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	var configFile string
	cmd := &cobra.Command{
		Use:           "rideshare",
		Short:         "Interior-point solver for the ride-share allocation problem",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			vip.SetConfigFile(configFile)
			if err := vip.ReadInConfig(); err != nil {
				return err
			}
			klog.V(2).InfoS("loaded config", "file", vip.ConfigFileUsed())

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "optional YAML/JSON/TOML file with default flag values")

	goFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(goFlags)
	cmd.PersistentFlags().AddGoFlagSet(goFlags)

	cmd.AddCommand(
		newSolveCommand(vip),
		newShowCommand(vip),
	)

	return cmd
}
