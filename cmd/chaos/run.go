package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chaos-v0/internal/lang"
)

var (
	showTokens bool
	showTree   bool
	runAsJSON  bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a CHAOS artifact and print its environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		source := string(data)

		if showTokens {
			for _, t := range lang.Tokenize(source) {
				fmt.Printf("%-14s %q (%d:%d)\n", t.Kind, t.Literal, t.Line, t.Col)
			}
		}
		tree, err := lang.Parse(lang.Tokenize(source))
		if err != nil {
			return err
		}
		if showTree {
			fmt.Printf("core: %d entries, emotions: %d, narrative: %d bytes\n",
				len(tree.Core), len(tree.Emotions), len(tree.Narrative))
		}
		env := lang.Interpret(tree)
		if runAsJSON {
			return printEnvJSON(env)
		}
		printEnv(env)
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the token stream")
	runCmd.Flags().BoolVar(&showTree, "ast", false, "print syntax tree stats")
	runCmd.Flags().BoolVar(&runAsJSON, "json", false, "print the environment as JSON")
}

func printEnv(env *lang.Environment) {
	fmt.Println("structured_core:")
	for _, key := range env.CoreKeys {
		fmt.Printf("  %s: %s\n", key, env.StructuredCore[key])
	}
	fmt.Println("emotive_layer:")
	for _, tag := range env.EmotiveLayer {
		fmt.Printf("  %s: %d\n", tag.Name, tag.Intensity)
	}
	fmt.Printf("chaosfield_layer: %s\n", env.Chaosfield)
}

func printEnvJSON(env *lang.Environment) error {
	type emotion struct {
		Name      string `json:"name"`
		Intensity int    `json:"intensity"`
	}
	out := struct {
		StructuredCore map[string]string `json:"structured_core"`
		EmotiveLayer   []emotion         `json:"emotive_layer"`
		Chaosfield     string            `json:"chaosfield_layer"`
	}{
		StructuredCore: env.StructuredCore,
		EmotiveLayer:   make([]emotion, 0, len(env.EmotiveLayer)),
		Chaosfield:     env.Chaosfield,
	}
	for _, tag := range env.EmotiveLayer {
		out.EmotiveLayer = append(out.EmotiveLayer, emotion{Name: tag.Name, Intensity: tag.Intensity})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
