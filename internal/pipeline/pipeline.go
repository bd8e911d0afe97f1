// Package pipeline drives compilation end to end: input validation happens
// inside compileunit.Build; this package wires model ingestion, unit
// construction, emission, and analysis together behind a single Compile
// call, the shape both cmd/bpmnc and cmd/bpmnd use.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bpmnchain/compiler/internal/analyzer"
	"github.com/bpmnchain/compiler/internal/bpmn"
	"github.com/bpmnchain/compiler/internal/compileunit"
	"github.com/bpmnchain/compiler/internal/config"
	"github.com/bpmnchain/compiler/internal/emitter"
	"github.com/bpmnchain/compiler/pkg/logger"
)

// Request is everything a compilation needs: a diagram source, a contract
// name, and a participant display-name-to-address map.
type Request struct {
	Diagram      io.Reader
	ContractName string
	Addresses    map[string]string
	OutputDir    string
	// SkipAnalysis disables the post-generation analyzer stage, useful for
	// callers (like graph diagnostics) that only need the emitted source.
	SkipAnalysis bool
}

// Outcome is everything a successful compilation produces.
type Outcome struct {
	RunID        string
	Unit         *compileunit.Unit
	Source       string
	ContractPath string
	ReportPath   string
	Report       analyzer.Report
	Warnings     []string
}

// Compile runs model ingestion through post-generation analysis and
// returns the emitted contract and its report. Fatal errors (bad model,
// bad name/address, name collision) abort before any file is written;
// analyzer failures are folded into the report.
func Compile(req Request, log *logger.Logger) (*Outcome, error) {
	runID := uuid.New().String()
	log.Info("compilation started", "runID", runID, "contract", req.ContractName)

	graph, err := bpmn.ParseDiagram(req.Diagram)
	if err != nil {
		return nil, fmt.Errorf("ingesting diagram: %w", err)
	}

	unit, err := compileunit.Build(graph, req.ContractName, req.Addresses)
	if err != nil {
		return nil, err
	}
	for _, w := range unit.Warnings {
		log.Warn(w, "runID", runID)
	}

	source, err := emitter.Emit(unit, runID)
	if err != nil {
		return nil, err
	}

	contractPath := fmt.Sprintf("%s/%s.sol", req.OutputDir, req.ContractName)
	if err := os.WriteFile(contractPath, []byte(source), 0o644); err != nil {
		return nil, fmt.Errorf("writing contract source: %w", err)
	}

	outcome := &Outcome{
		RunID:        runID,
		Unit:         unit,
		Source:       source,
		ContractPath: contractPath,
		Warnings:     unit.Warnings,
	}

	if req.SkipAnalysis {
		log.Info("compilation finished (analysis skipped)", "runID", runID)
		return outcome, nil
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		log.Warn("analyzer configuration invalid, skipping analysis", "runID", runID, "error", cfgErr.Error())
		outcome.Report = analyzer.Report{RunID: runID, ContractName: req.ContractName, AnalyzerResult: analyzer.Result{Unavailable: true, Err: cfgErr}}
	} else {
		result := analyzer.RunAnalyzer(analyzer.DefaultAnalyzerBinary, contractPath, cfg, log.With("analyzer"))
		if result.Err != nil {
			log.Warn("analyzer stage non-fatal failure", "runID", runID, "error", result.Err.Error())
		}
		outcome.Report = analyzer.Report{
			RunID:          runID,
			ContractName:   req.ContractName,
			AnalyzerResult: result,
			LintFindings:   analyzer.Run(source),
		}
	}

	reportPath, err := outcome.Report.WriteFile(req.OutputDir, time.Now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("writing security report: %w", err)
	}
	outcome.ReportPath = reportPath

	log.Info("compilation finished", "runID", runID, "contract", contractPath, "report", reportPath)
	return outcome, nil
}
