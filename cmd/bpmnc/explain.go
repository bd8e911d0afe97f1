package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bpmnchain/compiler/internal/graphstore"
	"github.com/bpmnchain/compiler/internal/pipeline"
)

// runExplain loads the compiled diagram into a throwaway Kùzu graph store
// and prints, for every element, what feeds it and what it unlocks. This is
// the diagnostic side channel backing --explain.
func runExplain(outcome *pipeline.Outcome) error {
	dir, err := os.MkdirTemp("", "bpmnc-explain-*")
	if err != nil {
		return fmt.Errorf("creating graph store scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	store, err := graphstore.Open(filepath.Join(dir, "graph.kuzu"))
	if err != nil {
		warningColor.Fprintf(os.Stderr, "graph store unavailable, skipping --explain: %v\n", err)
		return nil
	}
	defer store.Close()

	if err := store.Load(outcome.Unit.Graph); err != nil {
		warningColor.Fprintf(os.Stderr, "graph store load failed, skipping --explain: %v\n", err)
		return nil
	}

	infoColor.Println("\nDependency graph:")
	for _, el := range outcome.Unit.Graph.Elements {
		dependents, err := store.Dependents(el.ID)
		if err != nil {
			return err
		}
		unlocks, err := store.Unlocks(el.ID)
		if err != nil {
			return err
		}
		fmt.Printf("  %s (%s)\n", el.Name, el.Kind)
		fmt.Printf("    depends on: %v\n", dependents)
		fmt.Printf("    unlocks:    %v\n", unlocks)
	}
	return nil
}
