// Command bpmnd serves the same compiler as a network service so a caller
// can submit a diagram over HTTP instead of driving the interactive prompt.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/bpmnchain/compiler/pkg/logger"
)

func main() {
	var (
		addr      = flag.String("address", ":8085", "listen address")
		outputDir = flag.String("output-dir", ".", "directory compiled contracts and reports are written to")
	)
	flag.Parse()

	lg := logger.New("bpmnd", logger.LevelInfo)

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("resolving working directory: %v", err)
	}
	if *outputDir == "." {
		*outputDir = wd
	}

	srv := NewServer(*outputDir, lg)

	lg.Info("daemon starting", "address", *addr, "outputDir", *outputDir)
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		lg.Error("daemon exited", "error", err.Error())
		os.Exit(1)
	}
}
