package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"chaos-v0/internal/agent"
	"chaos-v0/internal/state"
)

const agentBanner = `CHAOS agent REPL
  :open <path>   perceive a .sn/.chaos artifact file
  :dreams        run a cycle and show visions
  :emotions      run a cycle and show active emotions
  :symbols       run a cycle and show known symbols
  :action        run a cycle and show the selected action
  :log           dump the accumulated cycle log
  :clear         clear the accumulated narrative
  :reset         discard all agent state
  :help          this help
  :quit          exit
Free text lines are buffered; an empty line feeds them to the agent.`

var (
	agentName  string
	agentSeed  int64
	configPath string
	storePath  string
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Interactive emotional agent REPL",
	RunE:  runAgentREPL,
}

func init() {
	agentCmd.Flags().StringVar(&agentName, "name", "Concord", "agent name")
	agentCmd.Flags().Int64Var(&agentSeed, "seed", 0, "dream RNG seed (omit for a time-based seed)")
	agentCmd.Flags().StringVar(&configPath, "config", "", "YAML config overriding agent tunables")
	agentCmd.Flags().StringVar(&storePath, "store", "", "sqlite path recording every cycle")
}

func runAgentREPL(cmd *cobra.Command, args []string) error {
	cfg := agent.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = agent.LoadConfig(configPath); err != nil {
			return err
		}
	}
	opts := []agent.Option{agent.WithConfig(cfg), agent.WithLogger(logger)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, agent.WithSeed(agentSeed))
	}
	ag := agent.New(agentName, opts...)

	var db *state.DB
	if storePath != "" {
		var err error
		if db, err = state.Open(storePath); err != nil {
			return err
		}
		defer db.Close()
	}

	fmt.Println(agentBanner)
	reader := bufio.NewReader(os.Stdin)
	var buf []string
	for {
		fmt.Print("agent> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, ":") {
			if quit := handleVerb(ag, db, line); quit {
				return nil
			}
			continue
		}
		if line != "" {
			buf = append(buf, line)
			continue
		}
		text := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = buf[:0]
		if text == "" {
			continue
		}
		rep := ag.Step(text, "")
		record(db, ag, rep)
		printSummary(rep)
	}
}

// parseVerb splits a ':verb arg...' REPL line.
func parseVerb(line string) (verb, arg string) {
	fields := strings.SplitN(strings.TrimPrefix(line, ":"), " ", 2)
	verb = strings.TrimSpace(fields[0])
	if len(fields) == 2 {
		arg = strings.TrimSpace(fields[1])
	}
	return verb, arg
}

func handleVerb(ag *agent.Agent, db *state.DB, line string) (quit bool) {
	verb, arg := parseVerb(line)
	switch verb {
	case "open":
		data, err := os.ReadFile(arg)
		if err != nil {
			fmt.Println("open:", err)
			return false
		}
		rep := ag.Step("", string(data))
		record(db, ag, rep)
		printSummary(rep)
	case "dreams":
		rep := ag.Step("", "")
		record(db, ag, rep)
		for _, d := range rep.Dreams {
			fmt.Println(d)
		}
	case "emotions":
		rep := ag.Step("", "")
		record(db, ag, rep)
		for _, e := range rep.Emotions {
			fmt.Printf("%s:%d\n", e.Name, e.Intensity)
		}
	case "symbols":
		rep := ag.Step("", "")
		record(db, ag, rep)
		for name, value := range rep.Symbols {
			fmt.Printf("%s=%s\n", name, value)
		}
	case "action":
		rep := ag.Step("", "")
		record(db, ag, rep)
		if rep.Action != nil {
			fmt.Println(rep.Action)
		} else {
			fmt.Println("none")
		}
	case "log":
		fmt.Println(ag.ExportLog())
	case "clear":
		ag.ClearNarrative()
		fmt.Println("narrative cleared.")
	case "reset":
		ag.Reset()
		fmt.Println("agent reset.")
	case "help", "h", "?":
		fmt.Println(agentBanner)
	case "quit", "exit", "q":
		fmt.Println("bye.")
		return true
	default:
		fmt.Println("unknown verb. :help")
	}
	return false
}

func record(db *state.DB, ag *agent.Agent, rep *agent.Report) {
	if db == nil {
		return
	}
	if _, err := db.RecordCycle(ag.ID(), ag.Name(), rep); err != nil {
		fmt.Println("store:", err)
	}
}

func printSummary(rep *agent.Report) {
	action := "none"
	if rep.Action != nil {
		action = string(rep.Action.Kind)
	}
	var emotions []string
	for _, e := range rep.Emotions {
		emotions = append(emotions, fmt.Sprintf("%s:%d", e.Name, e.Intensity))
	}
	fmt.Printf("action: %s | emotions: [%s]\n", action, strings.Join(emotions, " "))
	for i, d := range rep.Dreams {
		if i == 2 {
			break
		}
		fmt.Println("dream:", d)
	}
}
