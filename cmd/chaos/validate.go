package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chaos-v0/internal/lang"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Preflight a CHAOS artifact without producing an environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := lang.Validate(string(data)); err != nil {
			return err
		}
		fmt.Println("valid.")
		return nil
	},
}
