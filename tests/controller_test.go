package tests

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/ethutil"
	"github.com/SetProtocol/set-protocol-v2-go/fixtures"
)

func TestController(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

type ControllerSuite struct {
	TestSuite
}

var (
	// Compile-time check that ControllerSuite implements the interfaces we
	// think it does. If it does not implement these interfaces, then the
	// corresponding setup and teardown functions will not actually run.
	_ suite.BeforeTest    = &ControllerSuite{}
	_ suite.SetupAllSuite = &ControllerSuite{}
)

// SetupSuite runs once, before all of the tests in the suite.
func (s *ControllerSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

// BeforeTest runs before each test in the suite.
func (s *ControllerSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()
}

func (s *ControllerSuite) TestDeploy() {}

func (s *ControllerSuite) TestInitialState() {
	initialized, err := s.fixture.Controller.IsInitialized(nil)
	s.Require().NoError(err)
	s.True(initialized)

	factories, err := s.fixture.Controller.GetFactories(nil)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(factories, s.fixture.CreatorAddress))

	feeRecipient, err := s.fixture.Controller.FeeRecipient(nil)
	s.Require().NoError(err)
	s.Equal(s.account[0].address(), feeRecipient)

	owner, err := s.fixture.Controller.Owner(nil)
	s.Require().NoError(err)
	s.Equal(s.account[0].address(), owner)
}

func (s *ControllerSuite) TestResourceLookup() {
	registry, err := s.fixture.Controller.ResourceId(nil, bigInt(fixtures.IntegrationRegistryResourceID))
	s.Require().NoError(err)
	s.Equal(s.fixture.IntegrationRegistryAddress, registry)

	oracle, err := s.fixture.Controller.ResourceId(nil, bigInt(fixtures.PriceOracleResourceID))
	s.Require().NoError(err)
	s.Equal(s.fixture.PriceOracleAddress, oracle)

	valuer, err := s.fixture.Controller.ResourceId(nil, bigInt(fixtures.SetValuerResourceID))
	s.Require().NoError(err)
	s.Equal(s.fixture.SetValuerAddress, valuer)

	s.True(s.isSystemContract(s.fixture.IntegrationRegistryAddress))
	s.True(s.isSystemContract(s.fixture.CreatorAddress))
	s.False(s.isSystemContract(ethutil.RandomAddress()))
}

func (s *ControllerSuite) isSystemContract(addr common.Address) bool {
	ok, err := s.fixture.Controller.IsSystemContract(nil, addr)
	s.Require().NoError(err)
	return ok
}

func (s *ControllerSuite) TestAddRemoveModule() {
	module, moduleAddress, err := s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[moduleAddress] = module

	s.requireTxWithStrictEvents(s.fixture.Controller.AddModule(s.signer, moduleAddress))(
		abi.ControllerModuleAdded{Module: moduleAddress},
	)

	isModule, err := s.fixture.Controller.IsModule(nil, moduleAddress)
	s.Require().NoError(err)
	s.True(isModule)

	// Adding the same module twice reverts.
	s.requireTxFails(s.fixture.Controller.AddModule(s.signer, moduleAddress))

	s.requireTxWithStrictEvents(s.fixture.Controller.RemoveModule(s.signer, moduleAddress))(
		abi.ControllerModuleRemoved{Module: moduleAddress},
	)

	isModule, err = s.fixture.Controller.IsModule(nil, moduleAddress)
	s.Require().NoError(err)
	s.False(isModule)
}

func (s *ControllerSuite) TestAddRemoveFactory() {
	factoryAddress := ethutil.RandomAddress()

	s.requireTxWithStrictEvents(s.fixture.Controller.AddFactory(s.signer, factoryAddress))(
		abi.ControllerFactoryAdded{Factory: factoryAddress},
	)

	factories, err := s.fixture.Controller.GetFactories(nil)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(factories, factoryAddress))

	s.requireTxWithStrictEvents(s.fixture.Controller.RemoveFactory(s.signer, factoryAddress))(
		abi.ControllerFactoryRemoved{Factory: factoryAddress},
	)

	factories, err = s.fixture.Controller.GetFactories(nil)
	s.Require().NoError(err)
	s.False(ethutil.ContainsAddress(factories, factoryAddress))
}

func (s *ControllerSuite) TestAddRemoveResource() {
	resourceAddress := ethutil.RandomAddress()
	id := bigInt(5)

	s.requireTxWithStrictEvents(s.fixture.Controller.AddResource(s.signer, resourceAddress, id))(
		abi.ControllerResourceAdded{Resource: resourceAddress, Id: id},
	)

	got, err := s.fixture.Controller.ResourceId(nil, id)
	s.Require().NoError(err)
	s.Equal(resourceAddress, got)

	// A resource id can only be bound once.
	s.requireTxFails(s.fixture.Controller.AddResource(s.signer, ethutil.RandomAddress(), id))

	s.requireTxWithStrictEvents(s.fixture.Controller.RemoveResource(s.signer, id))(
		abi.ControllerResourceRemoved{Resource: resourceAddress, Id: id},
	)
}

func (s *ControllerSuite) TestModuleFees() {
	module, moduleAddress, err := s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[moduleAddress] = module
	s.requireTx(s.fixture.Controller.AddModule(s.signer, moduleAddress))()

	feeType := bigInt(0)
	fee := bigInt(100) // 1 bp in precise units is fine for accounting tests

	s.requireTxWithStrictEvents(s.fixture.Controller.AddFee(s.signer, moduleAddress, feeType, fee))(
		abi.ControllerFeeEdited{Module: moduleAddress, FeeType: feeType, FeePercentage: fee},
	)

	got, err := s.fixture.Controller.GetModuleFee(nil, moduleAddress, feeType)
	s.Require().NoError(err)
	s.Equal(fee.String(), got.String())

	// addFee on an existing fee type reverts; editFee is the update path.
	s.requireTxFails(s.fixture.Controller.AddFee(s.signer, moduleAddress, feeType, bigInt(500)))

	newFee := bigInt(200)
	s.requireTxWithStrictEvents(s.fixture.Controller.EditFee(s.signer, moduleAddress, feeType, newFee))(
		abi.ControllerFeeEdited{Module: moduleAddress, FeeType: feeType, FeePercentage: newFee},
	)

	got, err = s.fixture.Controller.GetModuleFee(nil, moduleAddress, feeType)
	s.Require().NoError(err)
	s.Equal(newFee.String(), got.String())
}

func (s *ControllerSuite) TestEditFeeRecipient() {
	newRecipient := s.account[2].address()

	s.requireTxWithStrictEvents(s.fixture.Controller.EditFeeRecipient(s.signer, newRecipient))(
		abi.ControllerFeeRecipientChanged{NewFeeRecipient: newRecipient},
	)

	got, err := s.fixture.Controller.FeeRecipient(nil)
	s.Require().NoError(err)
	s.Equal(newRecipient, got)

	// The zero address is rejected.
	s.requireTxFails(s.fixture.Controller.EditFeeRecipient(s.signer, zeroAddress()))
}

func (s *ControllerSuite) TestOnlyOwner() {
	attacker := signer(s.account[3])

	s.requireTxFails(s.fixture.Controller.AddModule(attacker, ethutil.RandomAddress()))
	s.requireTxFails(s.fixture.Controller.AddFactory(attacker, ethutil.RandomAddress()))
	s.requireTxFails(s.fixture.Controller.AddResource(attacker, ethutil.RandomAddress(), bigInt(9)))
	s.requireTxFails(s.fixture.Controller.EditFeeRecipient(attacker, s.account[3].address()))
}

func (s *ControllerSuite) TestAddSetOnlyFactory() {
	// addSet is reserved for registered factories; direct calls revert
	// even from the owner.
	s.requireTxFails(s.fixture.Controller.AddSet(s.signer, ethutil.RandomAddress()))
}
