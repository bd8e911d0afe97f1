package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpmnchain/compiler/pkg/logger"
)

// twoPoolSignOff is a two-pool agreement: a Buyer pool ships goods, a
// Seller pool confirms receipt through a gateway before the process ends.
const twoPoolSignOff = `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <collaboration id="collab1">
    <participant id="P1" name="Buyer" processRef="proc1"/>
    <participant id="P2" name="Seller" processRef="proc2"/>
  </collaboration>
  <process id="proc1">
    <startEvent id="Start1" name="Order Placed"/>
    <task id="Task1" name="Ship Goods"/>
    <sequenceFlow id="sf1" sourceRef="Start1" targetRef="Task1"/>
  </process>
  <process id="proc2">
    <exclusiveGateway id="GW1" name="Confirmed?"/>
    <task id="Task2" name="Confirm Receipt"/>
    <endEvent id="End1" name="Complete"/>
    <sequenceFlow id="sf2" sourceRef="GW1" targetRef="Task2" name="Yes"/>
    <sequenceFlow id="sf3" sourceRef="Task2" targetRef="End1"/>
  </process>
</definitions>`

func testAddresses() map[string]string {
	return map[string]string{
		"Buyer":  "0x1111111111111111111111111111111111111111",
		"Seller": "0x2222222222222222222222222222222222222222",
	}
}

func TestCompile_TwoPoolSignOff(t *testing.T) {
	req := Request{
		Diagram:      strings.NewReader(twoPoolSignOff),
		ContractName: "PurchaseAgreement",
		Addresses:    testAddresses(),
		OutputDir:    t.TempDir(),
		SkipAnalysis: true,
	}

	outcome, err := Compile(req, logger.New("test", logger.LevelError))
	require.NoError(t, err)

	assert.Equal(t, "PurchaseAgreement", outcome.Unit.ContractName)
	assert.Contains(t, outcome.Source, "contract PurchaseAgreement")
	assert.Contains(t, outcome.Source, `participantAddresses["Buyer"] = 0x1111111111111111111111111111111111111111;`)
	assert.Contains(t, outcome.Source, "function gatewayAction(")
	assert.FileExists(t, outcome.ContractPath)
}

func TestCompile_MissingParticipantAddressIsFatal(t *testing.T) {
	req := Request{
		Diagram:      strings.NewReader(twoPoolSignOff),
		ContractName: "PurchaseAgreement",
		Addresses:    map[string]string{"Buyer": "0x1111111111111111111111111111111111111111"},
		OutputDir:    t.TempDir(),
		SkipAnalysis: true,
	}

	_, err := Compile(req, logger.New("test", logger.LevelError))
	require.Error(t, err)
}

func TestCompile_InvalidContractNameIsFatal(t *testing.T) {
	req := Request{
		Diagram:      strings.NewReader(twoPoolSignOff),
		ContractName: "1Invalid",
		Addresses:    testAddresses(),
		OutputDir:    t.TempDir(),
		SkipAnalysis: true,
	}

	_, err := Compile(req, logger.New("test", logger.LevelError))
	require.Error(t, err)
}

func TestCompile_NameCollisionIsFatal(t *testing.T) {
	const collidingDiagram = `<definitions>
  <process id="proc1">
    <startEvent id="Start1" name="Begin"/>
    <task id="Task1" name="Ship Goods"/>
    <task id="Task2" name="Ship  Goods"/>
    <endEvent id="End1" name="Done"/>
    <sequenceFlow id="sf1" sourceRef="Start1" targetRef="Task1"/>
    <sequenceFlow id="sf2" sourceRef="Task1" targetRef="Task2"/>
    <sequenceFlow id="sf3" sourceRef="Task2" targetRef="End1"/>
  </process>
</definitions>`

	req := Request{
		Diagram:      strings.NewReader(collidingDiagram),
		ContractName: "Collision",
		Addresses:    map[string]string{},
		OutputDir:    t.TempDir(),
		SkipAnalysis: true,
	}

	_, err := Compile(req, logger.New("test", logger.LevelError))
	require.Error(t, err)
}

func TestCompile_WritesContractFileToOutputDir(t *testing.T) {
	dir := t.TempDir()
	req := Request{
		Diagram:      strings.NewReader(twoPoolSignOff),
		ContractName: "PurchaseAgreement",
		Addresses:    testAddresses(),
		OutputDir:    dir,
		SkipAnalysis: true,
	}

	outcome, err := Compile(req, logger.New("test", logger.LevelError))
	require.NoError(t, err)
	assert.Equal(t, dir+"/PurchaseAgreement.sol", outcome.ContractPath)
}
