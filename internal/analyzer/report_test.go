package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_WriteFile(t *testing.T) {
	dir := t.TempDir()
	r := Report{
		RunID:        "run-123",
		ContractName: "EscrowContract",
		AnalyzerResult: Result{
			ExitCode: 0,
			Findings: []Finding{{Lines: []string{"Detector `reentrancy` in Escrow.sol"}}},
		},
		LintFindings: []LintFinding{{Category: "missing-access-modifier", Line: 12, Excerpt: "function withdraw()"}},
	}

	path, err := r.WriteFile(dir, 1700000000000)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "SecurityReport_1700000000000.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(content)

	assert.Contains(t, body, "EscrowContract")
	assert.Contains(t, body, "run-123")
	assert.Contains(t, body, "ANALYZER RESULTS")
	assert.Contains(t, body, "reentrancy")
	assert.Contains(t, body, "LINT FINDINGS")
	assert.Contains(t, body, "missing-access-modifier")
	assert.Contains(t, body, "DEPLOYMENT RECOMMENDATIONS")
}

func TestReport_RenderUnavailableAnalyzer(t *testing.T) {
	r := Report{
		RunID:          "run-456",
		ContractName:   "EscrowContract",
		AnalyzerResult: Result{Unavailable: true, Err: assertErr{"slither not found"}},
	}
	body := r.render()
	assert.Contains(t, body, "analyzer unavailable")
}

type assertErr struct{ msg string }

func (e assertErr) Error() string { return e.msg }
