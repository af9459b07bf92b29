package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	shots := flag.Int("shots", 1024, "measurement shots per run")
	headless := flag.Bool("run", false, "run the program once and print results instead of opening the TUI")
	flag.Parse()

	path := flag.Arg(0)

	if *headless {
		if path == "" {
			log.Fatal("-run requires a QASM file argument")
		}
		runHeadless(path, *shots)
		return
	}

	p := tea.NewProgram(initialModel(path, *shots), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("TUI error", "err", err)
	}
}

// runHeadless executes a QASM file without the TUI and prints the
// final state and sampled counts.
func runHeadless(path string, shots int) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("cannot read program", "path", path, "err", err)
	}

	var program Program
	if err := program.ParseQASM(string(data)); err != nil {
		log.Fatal("parse failed", "path", path, "err", err)
	}

	state, err := program.Run()
	if err != nil {
		log.Fatal("run failed", "err", err)
	}
	log.Info("program complete", "qubits", state.NumQubits, "instructions", len(program.Instructions), "shots", shots)

	fmt.Println(RenderAmplitudes(state, 1<<state.NumQubits))

	counts := GetCounts(state, shots)
	fmt.Println(RenderHistogram(counts, histogramBarW))

	probs, err := Normalize(counts, 1.0)
	if err != nil {
		log.Fatal("normalize failed", "err", err)
	}
	for _, label := range sortedLabels(counts) {
		fmt.Printf("%s: %.4f\n", label, probs[label])
	}
}
