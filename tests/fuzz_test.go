package tests

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

func TestIssuanceFuzz(t *testing.T) {
	suite.Run(t, new(IssuanceFuzzSuite))
}

// IssuanceFuzzSuite hammers a Set with random issues, redemptions, transfers
// and fee accruals, checking collateralization after every step.
type IssuanceFuzzSuite struct {
	TestSuite

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	fees            *abi.StreamingFeeModule
	feesAddress     common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	feeRecipient common.Address
	holders      []account
}

var fuzzDuration = 100

var (
	_ suite.BeforeTest    = &IssuanceFuzzSuite{}
	_ suite.SetupAllSuite = &IssuanceFuzzSuite{}
)

func (s *IssuanceFuzzSuite) SetupSuite() {
	s.setup()
	s.createNode()

	if durationStr := os.Getenv("FUZZ_DURATION"); durationStr != "" {
		if asInt, err := strconv.Atoi(durationStr); err == nil {
			fuzzDuration = asInt
		}
	}
	fmt.Printf("running with fuzz duration: %v\n", fuzzDuration)

	rand.Seed(time.Now().UnixNano())
}

func (s *IssuanceFuzzSuite) BeforeTest(suiteName, testName string) {
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
		[]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress},
		[]*big.Int{precise.Ether(1), precise.Ether(100)},
		[]common.Address{s.issuanceAddress, s.feesAddress},
		"Fuzzed Set", "FUZZ",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()

	s.feeRecipient = s.account[5].address()
	s.requireTx(s.fees.Initialize(s.signer, s.setTokenAddress, abi.StreamingFeeModuleFeeState{
		FeeRecipient:              s.feeRecipient,
		MaxStreamingFeePercentage: new(big.Int).Div(precise.Ether(40), big.NewInt(100)),
		StreamingFeePercentage:    new(big.Int).Div(precise.Ether(2), big.NewInt(100)),
		LastStreamingFeeTimestamp: bigInt(0),
	}))()

	s.approveToken(s.fixture.WETH.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.approveToken(s.fixture.DAI.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)

	s.holders = []account{s.account[0], s.account[1], s.account[2], s.account[3]}
}

func (s *IssuanceFuzzSuite) TestByFuzzing() {
	fmt.Print("\n")
	for i := 0; i < fuzzDuration; i++ {
		fmt.Printf("Run %v", i)

		choice := rand.Int31n(4)
		switch choice {
		case 0: // Issue to a random holder
			fmt.Print("| Issue")
			quantity := randAmountUpTo(precise.Ether(50))
			to := s.holders[rand.Intn(len(s.holders))]
			s.displayTxResult(s.issuance.Issue(s.signer, s.setTokenAddress, quantity, to.address()))
		case 1: // Redeem from the owner, possibly more than held
			fmt.Print("| Redeem")
			quantity := randAmountUpTo(precise.Ether(50))
			s.displayTxResult(s.issuance.Redeem(s.signer, s.setTokenAddress, quantity, s.account[0].address()))
		case 2: // Transfer Sets between holders
			fmt.Print("| Transfer")
			from := s.holders[rand.Intn(len(s.holders))]
			to := s.holders[rand.Intn(len(s.holders))]
			quantity := randAmountUpTo(precise.Ether(10))
			s.displayTxResult(s.setToken.Transfer(signer(from), to.address(), quantity))
		case 3: // Let time pass and accrue the streaming fee
			fmt.Print("| AccrueFee")
			s.advanceTime(time.Duration(1+rand.Intn(72)) * time.Hour)
			s.displayTxResult(s.fees.AccrueFee(s.signer, s.setTokenAddress))
		}
		fmt.Print("\n")

		s.assertFullyCollateralized()
		s.assertSupplyMatchesHoldings()
	}
}

// assertFullyCollateralized checks the Set holds at least the collateral its
// positions claim, for every component.
func (s *IssuanceFuzzSuite) assertFullyCollateralized() {
	supply, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)

	components, err := s.setToken.GetComponents(nil)
	s.Require().NoError(err)

	for _, component := range components {
		unit, err := s.setToken.GetDefaultPositionRealUnit(nil, component)
		s.Require().NoError(err)

		token, err := abi.NewStandardTokenMock(component, s.node)
		s.Require().NoError(err)
		held, err := token.BalanceOf(nil, s.setTokenAddress)
		s.Require().NoError(err)

		required := precise.Mul(supply, unit)
		s.True(held.Cmp(required) >= 0,
			"component %v undercollateralized: holds %v, needs %v", component.Hex(), held, required)
	}
}

// assertSupplyMatchesHoldings checks the tracked accounts plus the fee
// recipient hold exactly the total supply. No other account ever receives
// Sets in this suite.
func (s *IssuanceFuzzSuite) assertSupplyMatchesHoldings() {
	supply, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)

	sum := bigInt(0)
	seen := map[common.Address]bool{}
	for _, holder := range append(s.holders, s.account[5]) {
		if seen[holder.address()] {
			continue
		}
		seen[holder.address()] = true

		balance, err := s.setToken.BalanceOf(nil, holder.address())
		s.Require().NoError(err)
		sum = sum.Add(sum, balance)
	}
	s.Equal(supply.String(), sum.String())
}

func (s *IssuanceFuzzSuite) displayTxResult(tx *types.Transaction, err error) {
	if err != nil {
		fmt.Print("| Failure")
		return
	}
	receipt, err := bind.WaitMined(context.Background(), s.node, tx)
	s.Require().NoError(err)
	if receipt.Status == types.ReceiptStatusSuccessful {
		fmt.Print("| Success")
	} else {
		fmt.Print("| Failure")
	}
}

// randAmountUpTo returns a random wei amount in [0, n).
func randAmountUpTo(n *big.Int) *big.Int {
	bound := big.NewInt(1e18)
	digitsAboveBound := new(big.Int).Div(n, bound)

	toAdd := new(big.Int)
	if digitsAboveBound.Sign() > 0 {
		toAdd.Mul(randAmountUpTo(digitsAboveBound), bound)
	}
	return toAdd.Add(toAdd, big.NewInt(rand.Int63n(bound.Int64())))
}
