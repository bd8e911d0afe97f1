package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpmnchain/compiler/internal/config"
	"github.com/bpmnchain/compiler/pkg/logger"
)

func TestGroupFindings_GroupsUnderDetectorMarker(t *testing.T) {
	output := `INFO:Detectors:
Reentrancy in EscrowContract.withdraw (EscrowContract.sol#12-20):
	External calls:
	- (success) = recipient.call{value: amount}()
Reference: https://example.invalid/reentrancy
INFO:Slither:EscrowContract.sol analyzed (1 contracts)`

	findings, hasErrors := groupFindings(strings.NewReader(output), logger.New("test", logger.LevelError))

	require.Len(t, findings, 2)
	assert.Contains(t, findings[1].String(), "Reentrancy in EscrowContract.withdraw")
	assert.Contains(t, findings[1].String(), "External calls")
	assert.False(t, hasErrors)
}

func TestGroupFindings_ErrorLineIsStandalone(t *testing.T) {
	output := `Error: could not compile EscrowContract.sol
INFO:Detectors:
Uninitialized storage variable in EscrowContract.foo`

	findings, hasErrors := groupFindings(strings.NewReader(output), logger.New("test", logger.LevelError))

	require.Len(t, findings, 3)
	assert.True(t, hasErrors)
	assert.Equal(t, "Error: could not compile EscrowContract.sol", findings[0].String())
}

func TestRunAnalyzer_UnavailableBinary(t *testing.T) {
	result := RunAnalyzer("definitely-not-a-real-binary-xyz", "Escrow.sol", config.AnalyzerConfig{}, logger.New("test", logger.LevelError))

	assert.True(t, result.Unavailable)
	require.Error(t, result.Err)
}
