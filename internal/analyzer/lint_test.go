package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UncheckedLowLevelCall(t *testing.T) {
	source := `contract C {
    function f() external {
        (bool ok, ) = target.call{value: 1}("");
        emit Unrelated();
    }
}`
	findings := Run(source)
	// f() carries no access modifier, so line 2 is flagged before line 3.
	require.Len(t, findings, 2)
	assert.Equal(t, "unchecked-low-level-call", findings[1].Category)
}

func TestRun_CheckedLowLevelCallIsClean(t *testing.T) {
	source := `contract C {
    function f() external {
        (bool ok, ) = target.call{value: 1}("");
        require(ok, "call failed");
    }
}`
	findings := Run(source)
	for _, f := range findings {
		assert.NotEqual(t, "unchecked-low-level-call", f.Category)
	}
}

func TestRun_MissingAccessModifier(t *testing.T) {
	source := `contract C {
    function withdraw() external {
        payable(msg.sender).transfer(1);
    }
}`
	findings := Run(source)
	var categories []string
	for _, f := range findings {
		categories = append(categories, f.Category)
	}
	assert.Contains(t, categories, "missing-access-modifier")
	assert.Contains(t, categories, "deprecated-transfer-primitive")
}

func TestRun_GuardedFunctionNotFlagged(t *testing.T) {
	source := `contract C {
    function withdraw() external nonReentrant whenNotPaused {
    }
}`
	findings := Run(source)
	for _, f := range findings {
		assert.NotEqual(t, "missing-access-modifier", f.Category)
	}
}

func TestRun_PublicStateVariable(t *testing.T) {
	source := `contract C {
    uint256 public balance;
}`
	findings := Run(source)
	require.Len(t, findings, 1)
	assert.Equal(t, "public-primitive-state-variable", findings[0].Category)
}

func TestRun_CleanSourceHasNoFindings(t *testing.T) {
	source := `contract C {
    mapping(string => uint256) public counters;
    function f() external nonReentrant whenNotPaused {
        emit Done();
    }
}`
	findings := Run(source)
	assert.Empty(t, findings)
}
