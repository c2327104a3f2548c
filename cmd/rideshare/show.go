// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newShowCommand(vip *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the problem that solve would run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vip.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			spec, err := loadSpec(vip.GetString(flagProblem))
			if err != nil {
				return err
			}

			return writeProblem(cmd.OutOrStdout(), spec)
		},
	}
	cmd.Flags().StringP(flagProblem, "p", "", "problem file (YAML or JSON); the built-in ride-share problem when empty")

	return cmd
}
