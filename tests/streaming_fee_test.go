package tests

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

func TestStreamingFee(t *testing.T) {
	suite.Run(t, new(StreamingFeeSuite))
}

type StreamingFeeSuite struct {
	TestSuite

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	fees            *abi.StreamingFeeModule
	feesAddress     common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	feeRecipient common.Address
	feePct       *big.Int
	maxFeePct    *big.Int
}

var (
	_ suite.BeforeTest    = &StreamingFeeSuite{}
	_ suite.SetupAllSuite = &StreamingFeeSuite{}
)

func (s *StreamingFeeSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *StreamingFeeSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	var err error
	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	s.fees, s.feesAddress, err = s.fixture.Deployer.Modules.DeployStreamingFeeModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.feesAddress] = s.fees
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.feesAddress))()

	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{precise.Ether(1)},
		[]common.Address{s.issuanceAddress, s.feesAddress},
		"Fee Set", "FEE",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()

	s.feeRecipient = s.account[2].address()
	s.feePct = new(big.Int).Div(precise.Ether(2), big.NewInt(100))    // 2%
	s.maxFeePct = new(big.Int).Div(precise.Ether(40), big.NewInt(100)) // 40%

	s.requireTx(s.fees.Initialize(s.signer, s.setTokenAddress, abi.StreamingFeeModuleFeeState{
		FeeRecipient:              s.feeRecipient,
		MaxStreamingFeePercentage: s.maxFeePct,
		StreamingFeePercentage:    s.feePct,
		LastStreamingFeeTimestamp: bigInt(0),
	}))(
		abi.SetTokenModuleInitialized{Module: s.feesAddress},
	)

	// Give the Set supply so fee accrual has something to inflate.
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, precise.Ether(10), s.account[0].address()))()
}

func (s *StreamingFeeSuite) TestInitializeState() {
	state, err := s.fees.FeeStates(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(s.feeRecipient, state.FeeRecipient)
	s.Equal(s.feePct.String(), state.StreamingFeePercentage.String())
	s.Equal(s.maxFeePct.String(), state.MaxStreamingFeePercentage.String())
	// The module stamps the initialization time.
	s.True(state.LastStreamingFeeTimestamp.Sign() > 0)
}

func (s *StreamingFeeSuite) TestInitializeValidatesFee() {
	other, otherAddress := s.createSetToken(
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{precise.Ether(1)},
		[]common.Address{s.feesAddress},
		"Other", "OTH",
	)
	_ = other

	// Fee above the module's cap is rejected.
	s.requireTxFails(s.fees.Initialize(s.signer, otherAddress, abi.StreamingFeeModuleFeeState{
		FeeRecipient:              s.feeRecipient,
		MaxStreamingFeePercentage: s.maxFeePct,
		StreamingFeePercentage:    precise.Ether(1), // 100%
		LastStreamingFeeTimestamp: bigInt(0),
	}))

	// Zero fee recipient is rejected.
	s.requireTxFails(s.fees.Initialize(s.signer, otherAddress, abi.StreamingFeeModuleFeeState{
		FeeRecipient:              zeroAddress(),
		MaxStreamingFeePercentage: s.maxFeePct,
		StreamingFeePercentage:    s.feePct,
		LastStreamingFeeTimestamp: bigInt(0),
	}))
}

func (s *StreamingFeeSuite) TestGetFeeGrowsWithTime() {
	before, err := s.fees.GetFee(nil, s.setTokenAddress)
	s.Require().NoError(err)

	s.advanceTime(180 * 24 * time.Hour)

	after, err := s.fees.GetFee(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(after.Cmp(before) > 0, "fee should accrue over time")
}

func (s *StreamingFeeSuite) TestAccrueFee() {
	s.advanceTime(365 * 24 * time.Hour)

	supplyBefore, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)
	multiplierBefore, err := s.setToken.PositionMultiplier(nil)
	s.Require().NoError(err)

	// Anyone may poke fee accrual.
	s.requireTx(s.fees.AccrueFee(signer(s.account[3]), s.setTokenAddress))()

	supplyAfter, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)
	recipientBalance, err := s.setToken.BalanceOf(nil, s.feeRecipient)
	s.Require().NoError(err)
	multiplierAfter, err := s.setToken.PositionMultiplier(nil)
	s.Require().NoError(err)

	// The fee is paid by minting new Sets to the recipient, diluting
	// existing holders via the position multiplier.
	minted := new(big.Int).Sub(supplyAfter, supplyBefore)
	s.True(minted.Sign() > 0, "accrual should mint Sets")
	s.Equal(minted.String(), recipientBalance.String())
	s.True(multiplierAfter.Cmp(multiplierBefore) < 0, "accrual should dilute the multiplier")

	// Default position real units shrink proportionally.
	unit, err := s.setToken.GetDefaultPositionRealUnit(nil, s.fixture.WETHAddress)
	s.Require().NoError(err)
	s.True(unit.Cmp(precise.Ether(1)) < 0)
}

func (s *StreamingFeeSuite) TestUpdateStreamingFee() {
	newFee := new(big.Int).Div(precise.Ether(1), big.NewInt(100)) // 1%

	s.requireTx(s.fees.UpdateStreamingFee(s.signer, s.setTokenAddress, newFee))(
		abi.StreamingFeeModuleStreamingFeeUpdated{SetToken: s.setTokenAddress, NewStreamingFee: newFee},
	)

	state, err := s.fees.FeeStates(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(newFee.String(), state.StreamingFeePercentage.String())

	// Above the cap reverts; non-manager reverts.
	s.requireTxFails(s.fees.UpdateStreamingFee(s.signer, s.setTokenAddress, precise.Ether(1)))
	s.requireTxFails(s.fees.UpdateStreamingFee(signer(s.account[3]), s.setTokenAddress, newFee))
}

func (s *StreamingFeeSuite) TestUpdateFeeRecipient() {
	newRecipient := s.account[4].address()

	s.requireTxWithStrictEvents(s.fees.UpdateFeeRecipient(s.signer, s.setTokenAddress, newRecipient))(
		abi.StreamingFeeModuleFeeRecipientUpdated{SetToken: s.setTokenAddress, NewFeeRecipient: newRecipient},
	)

	state, err := s.fees.FeeStates(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(newRecipient, state.FeeRecipient)

	s.requireTxFails(s.fees.UpdateFeeRecipient(s.signer, s.setTokenAddress, zeroAddress()))
}

func (s *StreamingFeeSuite) TestAccrueEmitsFeeActualized() {
	s.advanceTime(30 * 24 * time.Hour)

	receiptCheck := s.requireTx(s.fees.AccrueFee(s.signer, s.setTokenAddress))
	// Protocol fee split is zero because the controller has no fee
	// configured for the module.
	recipientBalance, err := s.setToken.BalanceOf(nil, s.feeRecipient)
	s.Require().NoError(err)
	receiptCheck(
		abi.StreamingFeeModuleFeeActualized{
			SetToken:    s.setTokenAddress,
			ManagerFee:  recipientBalance,
			ProtocolFee: bigInt(0),
		},
	)
}
