package tests

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/fixtures"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

const compoundWrapIntegration = "CompoundWrapAdapter"

func TestWrap(t *testing.T) {
	suite.Run(t, new(WrapSuite))
}

type WrapSuite struct {
	TestSuite

	compound *fixtures.CompoundFixture

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	wrap            *abi.WrapModule
	wrapAddress     common.Address
	adapter         *abi.CompoundWrapAdapter
	adapterAddress  common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	cDAI        *abi.CErc20
	cDAIAddress common.Address

	daiUnit      *big.Int
	exchangeRate *big.Int
}

var (
	_ suite.BeforeTest    = &WrapSuite{}
	_ suite.SetupAllSuite = &WrapSuite{}
)

func (s *WrapSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *WrapSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	s.compound = fixtures.NewCompoundFixture(s.signer, s.node)
	s.Require().NoError(s.compound.Setup())

	// cDAI at a fixed 0.02 underlying-per-cToken exchange rate, scaled for
	// 18 underlying decimals against 8 cToken decimals.
	var err error
	s.exchangeRate = precise.Units(2, 26)
	s.cDAI, s.cDAIAddress, err = s.compound.CreateAndEnableCToken(
		s.fixture.DAIAddress, s.exchangeRate,
		"Compound DAI", "cDAI", 8,
		new(big.Int).Div(precise.Ether(3), big.NewInt(4)), // 75% collateral factor
		precise.Ether(1),
	)
	s.Require().NoError(err)
	s.logParsers[s.cDAIAddress] = s.cDAI

	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	s.wrap, s.wrapAddress, err = s.fixture.Deployer.Modules.DeployWrapModule(s.fixture.ControllerAddress, s.fixture.WETHAddress)
	s.Require().NoError(err)
	s.logParsers[s.wrapAddress] = s.wrap
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.wrapAddress))()

	s.adapter, s.adapterAddress, err = s.fixture.Deployer.Adapters.DeployCompoundWrapAdapter()
	s.Require().NoError(err)
	s.Require().NoError(s.fixture.RegisterIntegration(s.wrapAddress, compoundWrapIntegration, s.adapterAddress))

	s.daiUnit = precise.Ether(100)
	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.DAIAddress},
		[]*big.Int{s.daiUnit},
		[]common.Address{s.issuanceAddress, s.wrapAddress},
		"Wrap Set", "WRAP",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()
	s.requireTx(s.wrap.Initialize(s.signer, s.setTokenAddress))(
		abi.SetTokenModuleInitialized{Module: s.wrapAddress},
	)

	s.approveToken(s.fixture.DAI.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, precise.Ether(1), s.account[0].address()))()
}

// wrappedFor converts an underlying quantity into cTokens at the fixed
// exchange rate.
func (s *WrapSuite) wrappedFor(underlying *big.Int) *big.Int {
	return new(big.Int).Div(new(big.Int).Mul(underlying, precise.Unit), s.exchangeRate)
}

func (s *WrapSuite) TestModuleState() {
	weth, err := s.wrap.Weth(nil)
	s.Require().NoError(err)
	s.Equal(s.fixture.WETHAddress, weth)

	spender, err := s.adapter.GetSpender(nil, s.fixture.DAIAddress, s.cDAIAddress)
	s.Require().NoError(err)
	s.Equal(s.cDAIAddress, spender)
}

func (s *WrapSuite) TestWrap() {
	wrappedQuantity := s.wrappedFor(s.daiUnit)

	s.requireTx(s.wrap.Wrap(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		s.daiUnit, compoundWrapIntegration,
	))(
		abi.WrapModuleComponentWrapped{
			SetToken:           s.setTokenAddress,
			UnderlyingToken:    s.fixture.DAIAddress,
			WrappedToken:       s.cDAIAddress,
			UnderlyingQuantity: s.daiUnit,
			WrappedQuantity:    wrappedQuantity,
			IntegrationName:    compoundWrapIntegration,
		},
	)

	// The DAI position is fully converted into cDAI.
	s.assertDefaultPositionUnit(s.setToken, s.fixture.DAIAddress, bigInt(0))
	s.assertDefaultPositionUnit(s.setToken, s.cDAIAddress, wrappedQuantity)
	s.assertBalance(s.fixture.DAI, s.setTokenAddress, bigInt(0))
	s.assertBalance(s.cDAI, s.setTokenAddress, wrappedQuantity)
}

func (s *WrapSuite) TestUnwrap() {
	s.requireTx(s.wrap.Wrap(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		s.daiUnit, compoundWrapIntegration,
	))()

	// Unwrap half of the cDAI position.
	wrappedUnit := s.wrappedFor(s.daiUnit)
	halfWrapped := new(big.Int).Div(wrappedUnit, big.NewInt(2))
	halfUnderlying := new(big.Int).Div(s.daiUnit, big.NewInt(2))

	s.requireTx(s.wrap.Unwrap(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		halfWrapped, compoundWrapIntegration,
	))(
		abi.WrapModuleComponentUnwrapped{
			SetToken:           s.setTokenAddress,
			UnderlyingToken:    s.fixture.DAIAddress,
			WrappedToken:       s.cDAIAddress,
			UnderlyingQuantity: halfUnderlying,
			WrappedQuantity:    halfWrapped,
			IntegrationName:    compoundWrapIntegration,
		},
	)

	s.assertDefaultPositionUnit(s.setToken, s.fixture.DAIAddress, halfUnderlying)
	s.assertDefaultPositionUnit(s.setToken, s.cDAIAddress, new(big.Int).Sub(wrappedUnit, halfWrapped))
}

func (s *WrapSuite) TestWrapRoundTrip() {
	wrappedUnit := s.wrappedFor(s.daiUnit)

	s.requireTx(s.wrap.Wrap(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		s.daiUnit, compoundWrapIntegration,
	))()
	s.requireTx(s.wrap.Unwrap(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		wrappedUnit, compoundWrapIntegration,
	))()

	// The fixed exchange rate makes the round trip exact.
	s.assertDefaultPositionUnit(s.setToken, s.fixture.DAIAddress, s.daiUnit)
	s.assertDefaultPositionUnit(s.setToken, s.cDAIAddress, bigInt(0))
}

func (s *WrapSuite) TestWrapUnknownIntegrationFails() {
	s.requireTxFails(s.wrap.Wrap(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		s.daiUnit, "NoSuchAdapter",
	))
}

func (s *WrapSuite) TestWrapOnlyManager() {
	s.requireTxFails(s.wrap.Wrap(
		signer(s.account[3]), s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		s.daiUnit, compoundWrapIntegration,
	))
}

func (s *WrapSuite) TestWrapMoreThanPositionFails() {
	s.requireTxFails(s.wrap.Wrap(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.cDAIAddress,
		new(big.Int).Mul(s.daiUnit, big.NewInt(2)), compoundWrapIntegration,
	))
}
