package tests

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/ethutil"
)

func TestIntegrationRegistry(t *testing.T) {
	suite.Run(t, new(IntegrationRegistrySuite))
}

type IntegrationRegistrySuite struct {
	TestSuite

	moduleAddress  common.Address
	adapterAddress common.Address
}

var (
	_ suite.BeforeTest    = &IntegrationRegistrySuite{}
	_ suite.SetupAllSuite = &IntegrationRegistrySuite{}
)

const uniswapAdapterName = "UniswapV2ExchangeAdapter"

func (s *IntegrationRegistrySuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *IntegrationRegistrySuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	module, moduleAddress, err := s.fixture.Deployer.Modules.DeployTradeModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[moduleAddress] = module
	s.moduleAddress = moduleAddress
	s.requireTx(s.fixture.Controller.AddModule(s.signer, moduleAddress))()

	// A plain address is enough for registry bookkeeping tests.
	s.adapterAddress = ethutil.RandomAddress()
}

func (s *IntegrationRegistrySuite) TestAddIntegration() {
	s.requireTxWithStrictEvents(
		s.fixture.IntegrationRegistry.AddIntegration(s.signer, s.moduleAddress, uniswapAdapterName, s.adapterAddress),
	)(
		abi.IntegrationRegistryIntegrationAdded{
			Module: s.moduleAddress, Adapter: s.adapterAddress, IntegrationName: uniswapAdapterName,
		},
	)

	valid, err := s.fixture.IntegrationRegistry.IsValidIntegration(nil, s.moduleAddress, uniswapAdapterName)
	s.Require().NoError(err)
	s.True(valid)

	adapter, err := s.fixture.IntegrationRegistry.GetIntegrationAdapter(nil, s.moduleAddress, uniswapAdapterName)
	s.Require().NoError(err)
	s.Equal(s.adapterAddress, adapter)

	// Registering the same name for the same module twice reverts.
	s.requireTxFails(
		s.fixture.IntegrationRegistry.AddIntegration(s.signer, s.moduleAddress, uniswapAdapterName, ethutil.RandomAddress()),
	)
}

func (s *IntegrationRegistrySuite) TestGetIntegrationAdapterWithHash() {
	s.requireTx(
		s.fixture.IntegrationRegistry.AddIntegration(s.signer, s.moduleAddress, uniswapAdapterName, s.adapterAddress),
	)()

	nameHash := crypto.Keccak256Hash([]byte(uniswapAdapterName))
	adapter, err := s.fixture.IntegrationRegistry.GetIntegrationAdapterWithHash(nil, s.moduleAddress, nameHash)
	s.Require().NoError(err)
	s.Equal(s.adapterAddress, adapter)
}

func (s *IntegrationRegistrySuite) TestEditIntegration() {
	s.requireTx(
		s.fixture.IntegrationRegistry.AddIntegration(s.signer, s.moduleAddress, uniswapAdapterName, s.adapterAddress),
	)()

	newAdapter := ethutil.RandomAddress()
	s.requireTxWithStrictEvents(
		s.fixture.IntegrationRegistry.EditIntegration(s.signer, s.moduleAddress, uniswapAdapterName, newAdapter),
	)(
		abi.IntegrationRegistryIntegrationEdited{
			Module: s.moduleAddress, NewAdapter: newAdapter, IntegrationName: uniswapAdapterName,
		},
	)

	adapter, err := s.fixture.IntegrationRegistry.GetIntegrationAdapter(nil, s.moduleAddress, uniswapAdapterName)
	s.Require().NoError(err)
	s.Equal(newAdapter, adapter)

	// Editing an unknown integration reverts.
	s.requireTxFails(
		s.fixture.IntegrationRegistry.EditIntegration(s.signer, s.moduleAddress, "NoSuchAdapter", newAdapter),
	)
}

func (s *IntegrationRegistrySuite) TestRemoveIntegration() {
	s.requireTx(
		s.fixture.IntegrationRegistry.AddIntegration(s.signer, s.moduleAddress, uniswapAdapterName, s.adapterAddress),
	)()

	s.requireTxWithStrictEvents(
		s.fixture.IntegrationRegistry.RemoveIntegration(s.signer, s.moduleAddress, uniswapAdapterName),
	)(
		abi.IntegrationRegistryIntegrationRemoved{
			Module: s.moduleAddress, Adapter: s.adapterAddress, IntegrationName: uniswapAdapterName,
		},
	)

	valid, err := s.fixture.IntegrationRegistry.IsValidIntegration(nil, s.moduleAddress, uniswapAdapterName)
	s.Require().NoError(err)
	s.False(valid)
}

func (s *IntegrationRegistrySuite) TestBatchAddIntegration() {
	other := ethutil.RandomAddress()
	s.requireTx(s.fixture.IntegrationRegistry.BatchAddIntegration(
		s.signer,
		[]common.Address{s.moduleAddress, s.moduleAddress},
		[]string{"AdapterOne", "AdapterTwo"},
		[]common.Address{s.adapterAddress, other},
	))(
		abi.IntegrationRegistryIntegrationAdded{
			Module: s.moduleAddress, Adapter: s.adapterAddress, IntegrationName: "AdapterOne",
		},
		abi.IntegrationRegistryIntegrationAdded{
			Module: s.moduleAddress, Adapter: other, IntegrationName: "AdapterTwo",
		},
	)

	// Mismatched argument lengths revert.
	s.requireTxFails(s.fixture.IntegrationRegistry.BatchAddIntegration(
		s.signer,
		[]common.Address{s.moduleAddress},
		[]string{"AdapterThree", "AdapterFour"},
		[]common.Address{other},
	))
}

func (s *IntegrationRegistrySuite) TestOnlyOwner() {
	attacker := signer(s.account[4])
	s.requireTxFails(
		s.fixture.IntegrationRegistry.AddIntegration(attacker, s.moduleAddress, uniswapAdapterName, s.adapterAddress),
	)
}
