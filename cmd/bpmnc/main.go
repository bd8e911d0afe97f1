// Command bpmnc compiles a BPMN collaboration diagram into a self-contained
// smart-contract source file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bpmnc",
		Short: "Compile a BPMN collaboration diagram into a smart-contract state machine",
	}
	root.AddCommand(newCompileCmd())
	return root
}
