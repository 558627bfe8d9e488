package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chaos-v0/internal/lang"
	"chaos-v0/internal/report"
)

var reportAsJSON bool

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Project a CHAOS artifact into an executive snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		env, err := lang.Run(string(data))
		if err != nil {
			return err
		}
		r := report.Generate(env, true)
		if reportAsJSON {
			out, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		for _, line := range report.RenderLines(r) {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportAsJSON, "json", false, "print the report as JSON")
}
