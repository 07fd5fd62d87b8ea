package tests

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

func TestBasicIssuance(t *testing.T) {
	suite.Run(t, new(BasicIssuanceSuite))
}

type BasicIssuanceSuite struct {
	TestSuite

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	wethUnit *big.Int
	daiUnit  *big.Int
}

var (
	_ suite.BeforeTest    = &BasicIssuanceSuite{}
	_ suite.SetupAllSuite = &BasicIssuanceSuite{}
)

func (s *BasicIssuanceSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *BasicIssuanceSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	var err error
	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	// 1 Set = 1 WETH + 100 DAI. The DAI unit is deliberately not a round
	// multiple of common issue quantities so rounding paths get exercised.
	s.wethUnit = precise.Ether(1)
	s.daiUnit = precise.Ether(100)
	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress},
		[]*big.Int{s.wethUnit, s.daiUnit},
		[]common.Address{s.issuanceAddress},
		"Basic Set", "BASIC",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()

	// Fund the issuance module allowances for the owner.
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.approveToken(s.fixture.DAI.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
}

func (s *BasicIssuanceSuite) TestInitializeState() {
	hook, err := s.issuance.ManagerIssuanceHook(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(zeroAddress(), hook)

	controller, err := s.issuance.Controller(nil)
	s.Require().NoError(err)
	s.Equal(s.fixture.ControllerAddress, controller)
}

func (s *BasicIssuanceSuite) TestInitializeOnlyManager() {
	other, otherAddress := s.createSetToken(
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{s.wethUnit},
		[]common.Address{s.issuanceAddress},
		"Other Set", "OTHER",
	)
	_ = other
	s.requireTxFails(s.issuance.Initialize(signer(s.account[2]), otherAddress, zeroAddress()))
}

func (s *BasicIssuanceSuite) TestGetRequiredComponentUnitsForIssue() {
	quantity := precise.Ether(3)

	components, units, err := s.issuance.GetRequiredComponentUnitsForIssue(nil, s.setTokenAddress, quantity)
	s.Require().NoError(err)
	s.Require().Equal([]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress}, components)
	s.Require().Len(units, 2)

	// Required collateral rounds up, against the issuer.
	s.Equal(precise.MulCeil(quantity, s.wethUnit).String(), units[0].String())
	s.Equal(precise.MulCeil(quantity, s.daiUnit).String(), units[1].String())
}

func (s *BasicIssuanceSuite) TestIssue() {
	quantity := precise.Ether(2)
	recipient := s.account[1].address()

	wethBefore, err := s.fixture.WETH.BalanceOf(nil, s.account[0].address())
	s.Require().NoError(err)
	daiBefore, err := s.fixture.DAI.BalanceOf(nil, s.account[0].address())
	s.Require().NoError(err)

	wethRequired := precise.MulCeil(quantity, s.wethUnit)
	daiRequired := precise.MulCeil(quantity, s.daiUnit)

	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, quantity, recipient))(
		abi.BasicIssuanceModuleSetTokenIssued{
			SetToken:     s.setTokenAddress,
			Issuer:       s.account[0].address(),
			To:           recipient,
			HookContract: zeroAddress(),
			Quantity:     quantity,
		},
	)

	// Collateral moved into the Set.
	s.assertBalance(s.fixture.WETH, s.setTokenAddress, wethRequired)
	s.assertBalance(s.fixture.DAI, s.setTokenAddress, daiRequired)
	s.assertBalance(s.fixture.WETH, s.account[0].address(), new(big.Int).Sub(wethBefore, wethRequired))
	s.assertBalance(s.fixture.DAI, s.account[0].address(), new(big.Int).Sub(daiBefore, daiRequired))

	// Sets minted to the recipient.
	s.assertBalance(s.setToken, recipient, quantity)
	s.assertTotalSupply(s.setToken, quantity)
}

func (s *BasicIssuanceSuite) TestIssueZeroQuantityFails() {
	s.requireTxFails(s.issuance.Issue(s.signer, s.setTokenAddress, bigInt(0), s.account[1].address()))
}

func (s *BasicIssuanceSuite) TestIssueWithoutAllowanceFails() {
	poor := signer(s.account[4])
	s.requireTxFails(s.issuance.Issue(poor, s.setTokenAddress, precise.Ether(1), s.account[4].address()))
}

func (s *BasicIssuanceSuite) TestRedeem() {
	quantity := precise.Ether(5)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, quantity, s.account[0].address()))()

	redeemQuantity := precise.Ether(2)
	wethExpected := precise.Mul(redeemQuantity, s.wethUnit)
	daiExpected := precise.Mul(redeemQuantity, s.daiUnit)

	recipient := s.account[2].address()
	s.requireTx(s.issuance.Redeem(s.signer, s.setTokenAddress, redeemQuantity, recipient))(
		abi.BasicIssuanceModuleSetTokenRedeemed{
			SetToken: s.setTokenAddress,
			Redeemer: s.account[0].address(),
			To:       recipient,
			Quantity: redeemQuantity,
		},
	)

	// Redemption pays out floor units to the recipient.
	s.assertBalance(s.fixture.WETH, recipient, wethExpected)
	s.assertBalance(s.fixture.DAI, recipient, daiExpected)
	s.assertTotalSupply(s.setToken, new(big.Int).Sub(quantity, redeemQuantity))
}

func (s *BasicIssuanceSuite) TestRedeemMoreThanBalanceFails() {
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, precise.Ether(1), s.account[0].address()))()
	s.requireTxFails(s.issuance.Redeem(s.signer, s.setTokenAddress, precise.Ether(2), s.account[0].address()))
}

func (s *BasicIssuanceSuite) TestIssueRoundTrip() {
	quantity := precise.Ether(7)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, quantity, s.account[0].address()))()
	s.requireTx(s.issuance.Redeem(s.signer, s.setTokenAddress, quantity, s.account[0].address()))()

	s.assertTotalSupply(s.setToken, bigInt(0))
	s.assertBalance(s.fixture.WETH, s.setTokenAddress, bigInt(0))
	s.assertBalance(s.fixture.DAI, s.setTokenAddress, bigInt(0))
}
