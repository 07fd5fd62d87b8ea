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

func TestNAVIssuance(t *testing.T) {
	suite.Run(t, new(NAVIssuanceSuite))
}

type NAVIssuanceSuite struct {
	TestSuite

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	nav             *abi.NAVIssuanceModule
	navAddress      common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	feeRecipient common.Address
	maxFee       *big.Int
	maxPremium   *big.Int
}

var (
	_ suite.BeforeTest    = &NAVIssuanceSuite{}
	_ suite.SetupAllSuite = &NAVIssuanceSuite{}
)

func (s *NAVIssuanceSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *NAVIssuanceSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	var err error
	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	s.nav, s.navAddress, err = s.fixture.Deployer.Modules.DeployNAVIssuanceModule(s.fixture.ControllerAddress, s.fixture.WETHAddress)
	s.Require().NoError(err)
	s.logParsers[s.navAddress] = s.nav
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.navAddress))()

	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{precise.Ether(1)},
		[]common.Address{s.issuanceAddress, s.navAddress},
		"NAV Set", "NAV",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()

	s.feeRecipient = s.account[2].address()
	s.maxFee = new(big.Int).Div(precise.Ether(2), big.NewInt(100))     // 2%
	s.maxPremium = new(big.Int).Div(precise.Ether(1), big.NewInt(100)) // 1%

	// Fees and premium start at zero so issue and redeem quantities match
	// the valuation views exactly.
	s.requireTx(s.nav.Initialize(s.signer, s.setTokenAddress, abi.NAVIssuanceModuleNAVIssuanceSettings{
		ManagerIssuanceHook:   zeroAddress(),
		ManagerRedemptionHook: zeroAddress(),
		ReserveAssets:         []common.Address{s.fixture.USDCAddress, s.fixture.WETHAddress},
		FeeRecipient:          s.feeRecipient,
		ManagerFees:           [2]*big.Int{bigInt(0), bigInt(0)},
		MaxManagerFee:         s.maxFee,
		PremiumPercentage:     bigInt(0),
		MaxPremiumPercentage:  s.maxPremium,
		MinSetTokenSupply:     precise.Ether(1),
	}))(
		abi.SetTokenModuleInitialized{Module: s.navAddress},
	)

	// Seed supply above minSetTokenSupply through basic issuance.
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, precise.Ether(100), s.account[0].address()))()

	s.approveToken(s.fixture.USDC.Approve, s.signer, s.navAddress, precise.MaxUint256)
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.navAddress, precise.MaxUint256)
}

func (s *NAVIssuanceSuite) TestInitializeState() {
	reserves, err := s.nav.GetReserveAssets(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal([]common.Address{s.fixture.USDCAddress, s.fixture.WETHAddress}, reserves)

	isReserve, err := s.nav.IsReserveAsset(nil, s.setTokenAddress, s.fixture.USDCAddress)
	s.Require().NoError(err)
	s.True(isReserve)

	isReserve, err = s.nav.IsReserveAsset(nil, s.setTokenAddress, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.False(isReserve)

	fee, err := s.nav.GetManagerFee(nil, s.setTokenAddress, bigInt(0))
	s.Require().NoError(err)
	s.Equal("0", fee.String())
}

func (s *NAVIssuanceSuite) TestIssueWithUSDC() {
	// 2300 USDC at 230 USDC per Set values out to 10 Sets.
	reserveQuantity := precise.Units(2300, 6)

	valid, err := s.nav.IsIssueValid(nil, s.setTokenAddress, s.fixture.USDCAddress, reserveQuantity)
	s.Require().NoError(err)
	s.True(valid)

	expected, err := s.nav.GetExpectedSetTokenIssueQuantity(nil, s.setTokenAddress, s.fixture.USDCAddress, reserveQuantity)
	s.Require().NoError(err)
	s.True(expected.Sign() > 0)

	recipient := s.account[1].address()
	supplyBefore, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)

	s.requireTx(s.nav.Issue(
		s.signer, s.setTokenAddress,
		s.fixture.USDCAddress, reserveQuantity,
		expected, recipient,
	))(
		abi.NAVIssuanceModuleSetTokenNAVIssued{
			SetToken:         s.setTokenAddress,
			Issuer:           s.account[0].address(),
			To:               recipient,
			ReserveAsset:     s.fixture.USDCAddress,
			HookContract:     zeroAddress(),
			SetTokenQuantity: expected,
			ManagerFee:       bigInt(0),
			Premium:          bigInt(0),
		},
	)

	s.assertBalance(s.setToken, recipient, expected)
	s.assertTotalSupply(s.setToken, new(big.Int).Add(supplyBefore, expected))
	// The reserve lands in the Set.
	s.assertBalance(s.fixture.USDC, s.setTokenAddress, reserveQuantity)
}

func (s *NAVIssuanceSuite) TestIssueBelowMinReceiveFails() {
	reserveQuantity := precise.Units(230, 6)
	expected, err := s.nav.GetExpectedSetTokenIssueQuantity(nil, s.setTokenAddress, s.fixture.USDCAddress, reserveQuantity)
	s.Require().NoError(err)

	tooMuch := new(big.Int).Add(expected, bigInt(1))
	s.requireTxFails(s.nav.Issue(
		s.signer, s.setTokenAddress,
		s.fixture.USDCAddress, reserveQuantity,
		tooMuch, s.account[1].address(),
	))
}

func (s *NAVIssuanceSuite) TestIssueNonReserveAssetFails() {
	s.requireTxFails(s.nav.Issue(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, precise.Ether(100),
		bigInt(1), s.account[1].address(),
	))
}

func (s *NAVIssuanceSuite) TestRedeemForUSDC() {
	setQuantity := precise.Ether(5)

	valid, err := s.nav.IsRedeemValid(nil, s.setTokenAddress, s.fixture.USDCAddress, setQuantity)
	s.Require().NoError(err)
	s.True(valid)

	expected, err := s.nav.GetExpectedReserveRedeemQuantity(nil, s.setTokenAddress, s.fixture.USDCAddress, setQuantity)
	s.Require().NoError(err)
	s.True(expected.Sign() > 0)

	// The Set needs USDC reserves to pay out, seeded via a NAV issue.
	s.requireTx(s.nav.Issue(
		s.signer, s.setTokenAddress,
		s.fixture.USDCAddress, precise.Units(10_000, 6),
		bigInt(1), s.account[0].address(),
	))()

	recipient := s.account[3].address()
	supplyBefore, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)

	s.requireTx(s.nav.Redeem(
		s.signer, s.setTokenAddress,
		s.fixture.USDCAddress, setQuantity,
		bigInt(1), recipient,
	))()

	balance, err := s.fixture.USDC.BalanceOf(nil, recipient)
	s.Require().NoError(err)
	s.True(balance.Sign() > 0)
	s.assertTotalSupply(s.setToken, new(big.Int).Sub(supplyBefore, setQuantity))
}

func (s *NAVIssuanceSuite) TestRedeemBelowMinReceiveFails() {
	s.requireTx(s.nav.Issue(
		s.signer, s.setTokenAddress,
		s.fixture.USDCAddress, precise.Units(10_000, 6),
		bigInt(1), s.account[0].address(),
	))()

	setQuantity := precise.Ether(1)
	expected, err := s.nav.GetExpectedReserveRedeemQuantity(nil, s.setTokenAddress, s.fixture.USDCAddress, setQuantity)
	s.Require().NoError(err)

	s.requireTxFails(s.nav.Redeem(
		s.signer, s.setTokenAddress,
		s.fixture.USDCAddress, setQuantity,
		new(big.Int).Add(expected, precise.Units(1, 6)), s.account[0].address(),
	))
}

func (s *NAVIssuanceSuite) TestAddRemoveReserveAsset() {
	s.requireTxWithStrictEvents(s.nav.AddReserveAsset(s.signer, s.setTokenAddress, s.fixture.DAIAddress))(
		abi.NAVIssuanceModuleReserveAssetAdded{SetToken: s.setTokenAddress, NewReserveAsset: s.fixture.DAIAddress},
	)

	reserves, err := s.nav.GetReserveAssets(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(reserves, s.fixture.DAIAddress))

	// Duplicates revert.
	s.requireTxFails(s.nav.AddReserveAsset(s.signer, s.setTokenAddress, s.fixture.DAIAddress))

	s.requireTxWithStrictEvents(s.nav.RemoveReserveAsset(s.signer, s.setTokenAddress, s.fixture.DAIAddress))(
		abi.NAVIssuanceModuleReserveAssetRemoved{SetToken: s.setTokenAddress, RemovedReserveAsset: s.fixture.DAIAddress},
	)

	isReserve, err := s.nav.IsReserveAsset(nil, s.setTokenAddress, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.False(isReserve)
}

func (s *NAVIssuanceSuite) TestEditPremium() {
	newPremium := new(big.Int).Div(precise.Ether(5), big.NewInt(1000)) // 0.5%

	s.requireTxWithStrictEvents(s.nav.EditPremium(s.signer, s.setTokenAddress, newPremium))(
		abi.NAVIssuanceModulePremiumEdited{SetToken: s.setTokenAddress, NewPremium: newPremium},
	)

	premium, err := s.nav.GetIssuePremium(nil, s.setTokenAddress, s.fixture.USDCAddress, precise.Units(100, 6))
	s.Require().NoError(err)
	s.Equal(newPremium.String(), premium.String())

	// Above the cap reverts.
	s.requireTxFails(s.nav.EditPremium(s.signer, s.setTokenAddress, new(big.Int).Mul(s.maxPremium, big.NewInt(2))))
}

func (s *NAVIssuanceSuite) TestEditManagerFee() {
	newFee := new(big.Int).Div(precise.Ether(1), big.NewInt(100)) // 1%

	s.requireTxWithStrictEvents(s.nav.EditManagerFee(s.signer, s.setTokenAddress, newFee, bigInt(0)))(
		abi.NAVIssuanceModuleManagerFeeEdited{SetToken: s.setTokenAddress, NewManagerFee: newFee, Index: bigInt(0)},
	)

	fee, err := s.nav.GetManagerFee(nil, s.setTokenAddress, bigInt(0))
	s.Require().NoError(err)
	s.Equal(newFee.String(), fee.String())

	// Above the cap reverts.
	s.requireTxFails(s.nav.EditManagerFee(s.signer, s.setTokenAddress, new(big.Int).Mul(s.maxFee, big.NewInt(2)), bigInt(0)))
}

func (s *NAVIssuanceSuite) TestEditFeeRecipient() {
	newRecipient := s.account[5].address()

	s.requireTxWithStrictEvents(s.nav.EditFeeRecipient(s.signer, s.setTokenAddress, newRecipient))(
		abi.NAVIssuanceModuleFeeRecipientEdited{SetToken: s.setTokenAddress, FeeRecipient: newRecipient},
	)

	s.requireTxFails(s.nav.EditFeeRecipient(s.signer, s.setTokenAddress, zeroAddress()))
}

func (s *NAVIssuanceSuite) TestOnlyManagerEdits() {
	attacker := signer(s.account[3])
	s.requireTxFails(s.nav.EditPremium(attacker, s.setTokenAddress, bigInt(0)))
	s.requireTxFails(s.nav.AddReserveAsset(attacker, s.setTokenAddress, s.fixture.DAIAddress))
	s.requireTxFails(s.nav.EditFeeRecipient(attacker, s.setTokenAddress, s.account[3].address()))
}
