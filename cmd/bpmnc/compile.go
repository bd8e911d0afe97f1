package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bpmnchain/compiler/internal/bpmn"
	"github.com/bpmnchain/compiler/internal/pipeline"
	"github.com/bpmnchain/compiler/pkg/logger"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func newCompileCmd() *cobra.Command {
	var (
		diagramPath  string
		contractName string
		addressFlags []string
		explain      bool
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a diagram, prompting for any input not given as a flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewScanner(os.Stdin)

			path := diagramPath
			if path == "" {
				var err error
				path, err = promptLine(reader, "Diagram file path: ")
				if err != nil {
					return err
				}
			}

			f, err := os.Open(path)
			if err != nil {
				errorColor.Fprintf(os.Stderr, "cannot open diagram: %v\n", err)
				return err
			}
			defer f.Close()

			graph, err := bpmn.ParseDiagram(f)
			if err != nil {
				errorColor.Fprintf(os.Stderr, "%v\n", err)
				return err
			}

			name := contractName
			if name == "" {
				name, err = promptLine(reader, "Contract name: ")
				if err != nil {
					return err
				}
			}

			addresses, err := addressFlagsToMap(addressFlags)
			if err != nil {
				return err
			}
			for _, p := range graph.Participants {
				if _, ok := addresses[p.DisplayName]; ok {
					continue
				}
				addr, err := promptLine(reader, fmt.Sprintf("Address for %s: ", p.DisplayName))
				if err != nil {
					return err
				}
				addresses[p.DisplayName] = addr
			}

			outputDir, err := os.Getwd()
			if err != nil {
				return err
			}

			// Re-open the diagram: ParseDiagram already consumed the reader
			// above for participant discovery.
			f2, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f2.Close()

			log := logger.New("bpmnc", logger.LevelInfo)
			outcome, err := pipeline.Compile(pipeline.Request{
				Diagram:      f2,
				ContractName: name,
				Addresses:    addresses,
				OutputDir:    outputDir,
			}, log)
			if err != nil {
				errorColor.Fprintf(os.Stderr, "compilation failed: %v\n", err)
				return err
			}

			successColor.Printf("wrote %s\n", outcome.ContractPath)
			if outcome.ReportPath != "" {
				infoColor.Printf("security report: %s\n", outcome.ReportPath)
				outcome.Report.PrintSummaryTable()
			}
			for _, w := range outcome.Warnings {
				warningColor.Printf("warning: %s\n", w)
			}

			if explain {
				return runExplain(outcome)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&diagramPath, "diagram", "", "path to the BPMN diagram (prompted if omitted)")
	cmd.Flags().StringVar(&contractName, "name", "", "target contract name (prompted if omitted)")
	cmd.Flags().StringArrayVar(&addressFlags, "address", nil, "participant address as name=0x... (repeatable; prompted for any participant not covered)")
	cmd.Flags().BoolVar(&explain, "explain", false, "load the diagram into the diagnostic graph store and print dependency/successor summaries")

	return cmd
}

func promptLine(scanner *bufio.Scanner, prompt string) (string, error) {
	infoColor.Print(prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("unexpected end of input reading %q", strings.TrimSpace(prompt))
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func addressFlagsToMap(flags []string) (map[string]string, error) {
	addresses := make(map[string]string)
	for _, f := range flags {
		name, addr, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --address %q: expected name=0x...", f)
		}
		addresses[name] = addr
	}
	return addresses, nil
}
