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

func TestAirdrop(t *testing.T) {
	suite.Run(t, new(AirdropSuite))
}

type AirdropSuite struct {
	TestSuite

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	airdrop         *abi.AirdropModule
	airdropAddress  common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	feeRecipient common.Address
	airdropFee   *big.Int
}

var (
	_ suite.BeforeTest    = &AirdropSuite{}
	_ suite.SetupAllSuite = &AirdropSuite{}
)

func (s *AirdropSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *AirdropSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	var err error
	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	s.airdrop, s.airdropAddress, err = s.fixture.Deployer.Modules.DeployAirdropModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.airdropAddress] = s.airdrop
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.airdropAddress))()

	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{precise.Ether(1)},
		[]common.Address{s.issuanceAddress, s.airdropAddress},
		"Airdrop Set", "AIR",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()

	s.feeRecipient = s.account[2].address()
	s.airdropFee = new(big.Int).Div(precise.Ether(1), big.NewInt(10)) // 10%

	s.requireTx(s.airdrop.Initialize(s.signer, s.setTokenAddress, abi.AirdropModuleAirdropSettings{
		Airdrops:     []common.Address{s.fixture.DAIAddress},
		FeeRecipient: s.feeRecipient,
		AirdropFee:   s.airdropFee,
		AnyoneAbsorb: false,
	}))(
		abi.SetTokenModuleInitialized{Module: s.airdropAddress},
	)

	// Give the Set supply so absorbed units can be attributed.
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, precise.Ether(10), s.account[0].address()))()
}

func (s *AirdropSuite) TestInitializeState() {
	airdrops, err := s.airdrop.GetAirdrops(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal([]common.Address{s.fixture.DAIAddress}, airdrops)

	isAirdrop, err := s.airdrop.IsAirdropToken(nil, s.setTokenAddress, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.True(isAirdrop)

	settings, err := s.airdrop.AirdropSettings(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(s.feeRecipient, settings.FeeRecipient)
	s.Equal(s.airdropFee.String(), settings.AirdropFee.String())
	s.False(settings.AnyoneAbsorb)
}

func (s *AirdropSuite) TestAbsorb() {
	// Simulate an airdrop: DAI lands in the Set without accounting.
	airdropped := precise.Ether(500)
	s.requireTx(s.fixture.DAI.Transfer(s.signer, s.setTokenAddress, airdropped))()
	s.assertDefaultPositionUnit(s.setToken, s.fixture.DAIAddress, bigInt(0))

	fee := precise.Mul(airdropped, s.airdropFee)
	retained := new(big.Int).Sub(airdropped, fee)

	s.requireTx(s.airdrop.Absorb(s.signer, s.setTokenAddress, s.fixture.DAIAddress))(
		abi.AirdropModuleComponentAbsorbed{
			SetToken:         s.setTokenAddress,
			AbsorbedToken:    s.fixture.DAIAddress,
			AbsorbedQuantity: airdropped,
			ManagerFee:       fee,
			ProtocolFee:      bigInt(0),
		},
	)

	// Manager fee paid out in the airdropped token, remainder kept as a
	// new default position.
	s.assertBalance(s.fixture.DAI, s.feeRecipient, fee)
	s.assertBalance(s.fixture.DAI, s.setTokenAddress, retained)

	supply, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)
	s.assertDefaultPositionUnit(s.setToken, s.fixture.DAIAddress, precise.Div(retained, supply))
}

func (s *AirdropSuite) TestAbsorbRequiresManagerByDefault() {
	s.requireTx(s.fixture.DAI.Transfer(s.signer, s.setTokenAddress, precise.Ether(10)))()
	s.requireTxFails(s.airdrop.Absorb(signer(s.account[3]), s.setTokenAddress, s.fixture.DAIAddress))
}

func (s *AirdropSuite) TestAnyoneAbsorb() {
	s.requireTxWithStrictEvents(s.airdrop.UpdateAnyoneAbsorb(s.signer, s.setTokenAddress))(
		abi.AirdropModuleAnyoneAbsorbUpdated{SetToken: s.setTokenAddress, AnyoneAbsorb: true},
	)

	s.requireTx(s.fixture.DAI.Transfer(s.signer, s.setTokenAddress, precise.Ether(10)))()
	s.requireTx(s.airdrop.Absorb(signer(s.account[3]), s.setTokenAddress, s.fixture.DAIAddress))()
}

func (s *AirdropSuite) TestAbsorbNonAirdropTokenFails() {
	s.requireTx(s.fixture.WBTC.Transfer(s.signer, s.setTokenAddress, precise.Units(1, 8)))()
	s.requireTxFails(s.airdrop.Absorb(s.signer, s.setTokenAddress, s.fixture.WBTCAddress))
}

func (s *AirdropSuite) TestBatchAbsorb() {
	s.requireTx(s.airdrop.AddAirdrop(s.signer, s.setTokenAddress, s.fixture.USDCAddress))()

	s.requireTx(s.fixture.DAI.Transfer(s.signer, s.setTokenAddress, precise.Ether(100)))()
	s.requireTx(s.fixture.USDC.Transfer(s.signer, s.setTokenAddress, precise.Units(100, 6)))()

	s.requireTx(s.airdrop.BatchAbsorb(s.signer, s.setTokenAddress,
		[]common.Address{s.fixture.DAIAddress, s.fixture.USDCAddress},
	))()

	unit, err := s.setToken.GetDefaultPositionRealUnit(nil, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.True(unit.Sign() > 0)
	unit, err = s.setToken.GetDefaultPositionRealUnit(nil, s.fixture.USDCAddress)
	s.Require().NoError(err)
	s.True(unit.Sign() > 0)
}

func (s *AirdropSuite) TestAddRemoveAirdrop() {
	s.requireTxWithStrictEvents(s.airdrop.AddAirdrop(s.signer, s.setTokenAddress, s.fixture.WBTCAddress))(
		abi.AirdropModuleAirdropComponentAdded{SetToken: s.setTokenAddress, Component: s.fixture.WBTCAddress},
	)

	airdrops, err := s.airdrop.GetAirdrops(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(airdrops, s.fixture.WBTCAddress))

	// Duplicates revert.
	s.requireTxFails(s.airdrop.AddAirdrop(s.signer, s.setTokenAddress, s.fixture.WBTCAddress))

	s.requireTxWithStrictEvents(s.airdrop.RemoveAirdrop(s.signer, s.setTokenAddress, s.fixture.WBTCAddress))(
		abi.AirdropModuleAirdropComponentRemoved{SetToken: s.setTokenAddress, Component: s.fixture.WBTCAddress},
	)

	isAirdrop, err := s.airdrop.IsAirdropToken(nil, s.setTokenAddress, s.fixture.WBTCAddress)
	s.Require().NoError(err)
	s.False(isAirdrop)
}

func (s *AirdropSuite) TestUpdateAirdropFee() {
	newFee := new(big.Int).Div(precise.Ether(1), big.NewInt(4)) // 25%

	s.requireTx(s.airdrop.UpdateAirdropFee(s.signer, s.setTokenAddress, newFee))(
		abi.AirdropModuleAirdropFeeUpdated{SetToken: s.setTokenAddress, NewFee: newFee},
	)

	settings, err := s.airdrop.AirdropSettings(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(newFee.String(), settings.AirdropFee.String())

	// Fees above 100% revert.
	s.requireTxFails(s.airdrop.UpdateAirdropFee(s.signer, s.setTokenAddress, precise.Ether(2)))
}

func (s *AirdropSuite) TestUpdateFeeRecipient() {
	newRecipient := s.account[5].address()

	s.requireTxWithStrictEvents(s.airdrop.UpdateFeeRecipient(s.signer, s.setTokenAddress, newRecipient))(
		abi.AirdropModuleFeeRecipientUpdated{SetToken: s.setTokenAddress, NewFeeRecipient: newRecipient},
	)

	settings, err := s.airdrop.AirdropSettings(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(newRecipient, settings.FeeRecipient)
}
