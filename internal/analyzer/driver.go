// Package analyzer runs the post-generation static-analysis stage: it
// invokes an external analyzer as a child process, applies a small set of
// regex lint checks over the emitted text, and consolidates both result
// sets into a report.
package analyzer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/bpmnchain/compiler/internal/bpmnerr"
	"github.com/bpmnchain/compiler/internal/config"
	"github.com/bpmnchain/compiler/pkg/logger"
)

// DefaultAnalyzerBinary is the external static analyzer the driver invokes
// by default.
const DefaultAnalyzerBinary = "slither"

// detectorMarkers are line prefixes that begin a new analyzer finding.
var detectorMarkers = []string{
	"INFO:Detectors:",
	"WARNING:Detectors:",
	"Reentrancy in",
	"Uninitialized",
}

// Finding is one grouped chunk of analyzer output, or a single standalone
// error line.
type Finding struct {
	Lines []string
}

func (f Finding) String() string { return strings.Join(f.Lines, "\n") }

// Result is the outcome of invoking the external analyzer.
type Result struct {
	Findings  []Finding
	HasErrors bool
	ExitCode  int
	// Unavailable is set when the analyzer binary could not be found or run,
	// or when waiting on it failed for a reason other than its exit status;
	// Err carries the reason. Findings is empty unless the process started.
	Unavailable bool
	TimedOut    bool
	Err         error
}

// RunAnalyzer spawns the analyzer against filePath with the given config,
// merges stderr into stdout, streams the combined output line by line
// (echoing it through log), and groups lines into findings. A failure to
// launch or a non-zero exit is recorded in the returned Result rather than
// returned as an error - analyzer failure is non-fatal to compilation.
func RunAnalyzer(binary, filePath string, cfg config.AnalyzerConfig, log *logger.Logger) Result {
	if binary == "" {
		binary = DefaultAnalyzerBinary
	}
	if _, err := exec.LookPath(binary); err != nil {
		return Result{Unavailable: true, Err: fmt.Errorf("%w: %s: %v", bpmnerr.ErrAnalyzerUnavailable, binary, err)}
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, filePath, "--solc-remaps", cfg.Remap)
	cmd.Dir = cfg.WorkDir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{Unavailable: true, Err: fmt.Errorf("%w: %v", bpmnerr.ErrAnalyzerUnavailable, err)}
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return Result{Unavailable: true, Err: fmt.Errorf("%w: %v", bpmnerr.ErrAnalyzerUnavailable, err)}
	}

	findings, hasErrors := groupFindings(stdout, log)

	waitErr := cmd.Wait()
	if ctx.Err() == context.DeadlineExceeded {
		return Result{Findings: findings, HasErrors: true, TimedOut: true, Err: bpmnerr.ErrAnalyzerTimeout}
	}

	result := Result{Findings: findings, HasErrors: hasErrors, ExitCode: cmd.ProcessState.ExitCode()}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		result.Err = fmt.Errorf("%w: exit code %d", bpmnerr.ErrAnalyzerNonZero, result.ExitCode)
	} else if waitErr != nil {
		result.Err = fmt.Errorf("%w: %v", bpmnerr.ErrAnalyzerUnavailable, waitErr)
		result.Unavailable = true
	}
	return result
}

// groupFindings streams r line by line, echoing each line through log, and
// groups lines into findings: a new finding begins on any line starting
// with a known detector/warning marker; any line containing "Error:" or
// "error:" sets hasErrors and is appended as its own standalone finding.
func groupFindings(r io.Reader, log *logger.Logger) ([]Finding, bool) {
	var findings []Finding
	currentIdx := -1
	hasErrors := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		log.Debug("analyzer output", "line", line)

		if strings.Contains(line, "Error:") || strings.Contains(line, "error:") {
			hasErrors = true
			findings = append(findings, Finding{Lines: []string{line}})
			currentIdx = -1
			continue
		}

		if isDetectorMarker(line) {
			findings = append(findings, Finding{Lines: []string{line}})
			currentIdx = len(findings) - 1
			continue
		}

		if currentIdx >= 0 {
			findings[currentIdx].Lines = append(findings[currentIdx].Lines, line)
		}
	}
	return findings, hasErrors
}

func isDetectorMarker(line string) bool {
	for _, marker := range detectorMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
