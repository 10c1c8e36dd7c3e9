package main

import (
	"fmt"

	"github.com/phrazzld/careerforge/internal/generation"
	"github.com/spf13/cobra"
)

func newTonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List the supported tones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tone := range generation.Tones() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), tone); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
