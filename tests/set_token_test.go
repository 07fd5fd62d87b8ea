package tests

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/ethutil"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

// Module lifecycle states tracked by SetToken.moduleStates.
const (
	moduleStateNone        = 0
	moduleStatePending     = 1
	moduleStateInitialized = 2
)

func TestSetToken(t *testing.T) {
	suite.Run(t, new(SetTokenSuite))
}

type SetTokenSuite struct {
	TestSuite

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address
}

var (
	_ suite.BeforeTest    = &SetTokenSuite{}
	_ suite.SetupAllSuite = &SetTokenSuite{}
)

func (s *SetTokenSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *SetTokenSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	var err error
	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress},
		[]*big.Int{precise.Ether(1), precise.Ether(100)},
		[]common.Address{s.issuanceAddress},
		"Simple Index", "SIMPLE",
	)
}

func (s *SetTokenSuite) TestMetadata() {
	name, err := s.setToken.Name(nil)
	s.NoError(err)
	s.Equal("Simple Index", name)

	symbol, err := s.setToken.Symbol(nil)
	s.NoError(err)
	s.Equal("SIMPLE", symbol)

	decimals, err := s.setToken.Decimals(nil)
	s.NoError(err)
	s.Equal(uint8(18), decimals)

	manager, err := s.setToken.Manager(nil)
	s.NoError(err)
	s.Equal(s.account[0].address(), manager)

	controller, err := s.setToken.Controller(nil)
	s.NoError(err)
	s.Equal(s.fixture.ControllerAddress, controller)

	s.assertTotalSupply(s.setToken, bigInt(0))
}

func (s *SetTokenSuite) TestComponentsAndUnits() {
	components, err := s.setToken.GetComponents(nil)
	s.Require().NoError(err)
	s.Equal([]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress}, components)

	isComponent, err := s.setToken.IsComponent(nil, s.fixture.WETHAddress)
	s.Require().NoError(err)
	s.True(isComponent)

	isComponent, err = s.setToken.IsComponent(nil, s.fixture.WBTCAddress)
	s.Require().NoError(err)
	s.False(isComponent)

	s.assertDefaultPositionUnit(s.setToken, s.fixture.WETHAddress, precise.Ether(1))
	s.assertDefaultPositionUnit(s.setToken, s.fixture.DAIAddress, precise.Ether(100))

	multiplier, err := s.setToken.PositionMultiplier(nil)
	s.Require().NoError(err)
	s.Equal(precise.Unit.String(), multiplier.String())
}

func (s *SetTokenSuite) TestGetPositions() {
	positions, err := s.setToken.GetPositions(nil)
	s.Require().NoError(err)
	s.Require().Len(positions, 2)

	s.Equal(s.fixture.WETHAddress, positions[0].Component)
	s.Equal(precise.Ether(1).String(), positions[0].Unit.String())
	s.Equal(uint8(0), positions[0].PositionState) // default
	s.Equal(zeroAddress(), positions[0].Module)

	s.Equal(s.fixture.DAIAddress, positions[1].Component)
	s.Equal(precise.Ether(100).String(), positions[1].Unit.String())
}

func (s *SetTokenSuite) TestModuleLifecycle() {
	state, err := s.setToken.ModuleStates(nil, s.issuanceAddress)
	s.Require().NoError(err)
	s.Equal(uint8(moduleStatePending), state)

	pending, err := s.setToken.IsPendingModule(nil, s.issuanceAddress)
	s.Require().NoError(err)
	s.True(pending)

	// Initializing through the module flips the state and fires
	// ModuleInitialized from the Set.
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))(
		abi.SetTokenModuleInitialized{Module: s.issuanceAddress},
	)

	state, err = s.setToken.ModuleStates(nil, s.issuanceAddress)
	s.Require().NoError(err)
	s.Equal(uint8(moduleStateInitialized), state)

	initialized, err := s.setToken.IsInitializedModule(nil, s.issuanceAddress)
	s.Require().NoError(err)
	s.True(initialized)

	modules, err := s.setToken.GetModules(nil)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(modules, s.issuanceAddress))

	// A second initialize reverts: the module is no longer pending.
	s.requireTxFails(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))
}

func (s *SetTokenSuite) TestAddModule() {
	extra, extraAddress, err := s.fixture.Deployer.Modules.DeployStreamingFeeModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[extraAddress] = extra

	// Modules must be enabled on the controller before a Set accepts them.
	s.requireTxFails(s.setToken.AddModule(s.signer, extraAddress))

	s.requireTx(s.fixture.Controller.AddModule(s.signer, extraAddress))()
	s.requireTxWithStrictEvents(s.setToken.AddModule(s.signer, extraAddress))(
		abi.SetTokenModuleAdded{Module: extraAddress},
	)

	state, err := s.setToken.ModuleStates(nil, extraAddress)
	s.Require().NoError(err)
	s.Equal(uint8(moduleStatePending), state)

	// Only the manager can add modules.
	s.requireTxFails(s.setToken.AddModule(signer(s.account[3]), extraAddress))
}

func (s *SetTokenSuite) TestRemoveModule() {
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()

	s.requireTx(s.setToken.RemoveModule(s.signer, s.issuanceAddress))(
		abi.SetTokenModuleRemoved{Module: s.issuanceAddress},
	)

	state, err := s.setToken.ModuleStates(nil, s.issuanceAddress)
	s.Require().NoError(err)
	s.Equal(uint8(moduleStateNone), state)
}

func (s *SetTokenSuite) TestSetManager() {
	newManager := s.account[1].address()

	s.requireTxWithStrictEvents(s.setToken.SetManager(s.signer, newManager))(
		abi.SetTokenManagerEdited{NewManager: newManager, OldManager: s.account[0].address()},
	)

	manager, err := s.setToken.Manager(nil)
	s.Require().NoError(err)
	s.Equal(newManager, manager)

	// The old manager has no authority anymore.
	s.requireTxFails(s.setToken.SetManager(s.signer, s.account[0].address()))
}

func (s *SetTokenSuite) TestCreateRequiresValidInputs() {
	// Mismatched component/unit lengths revert.
	_, _, err := s.fixture.CreateSetToken(
		s.signer,
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{precise.Ether(1), precise.Ether(2)},
		[]common.Address{s.issuanceAddress},
		s.account[0].address(), "Bad", "BAD",
	)
	s.Error(err)

	// Non-positive units revert.
	_, _, err = s.fixture.CreateSetToken(
		s.signer,
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{bigInt(0)},
		[]common.Address{s.issuanceAddress},
		s.account[0].address(), "Bad", "BAD",
	)
	s.Error(err)

	// Unregistered modules revert.
	_, _, err = s.fixture.CreateSetToken(
		s.signer,
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{precise.Ether(1)},
		[]common.Address{ethutil.RandomAddress()},
		s.account[0].address(), "Bad", "BAD",
	)
	s.Error(err)
}

func (s *SetTokenSuite) TestControllerTracksSets() {
	isSet, err := s.fixture.Controller.IsSet(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(isSet)

	sets, err := s.fixture.Controller.GetSets(nil)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(sets, s.setTokenAddress))
}
