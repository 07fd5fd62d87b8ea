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

const uniswapAdapterIntegration = "UniswapV2ExchangeAdapter"

func TestTrade(t *testing.T) {
	suite.Run(t, new(TradeSuite))
}

type TradeSuite struct {
	TestSuite

	uniswap *fixtures.UniswapFixture

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	trade           *abi.TradeModule
	tradeAddress    common.Address
	adapter         *abi.UniswapV2ExchangeAdapter
	adapterAddress  common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	wethUnit *big.Int
}

var (
	_ suite.BeforeTest    = &TradeSuite{}
	_ suite.SetupAllSuite = &TradeSuite{}
)

func (s *TradeSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *TradeSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	s.uniswap = fixtures.NewUniswapFixture(s.signer, s.node, s.fixture.WETHAddress)
	s.Require().NoError(s.uniswap.Setup())

	// Seed a WETH/DAI pool at roughly the oracle price so trades clear
	// near quote.
	pair, pairAddress, err := s.uniswap.CreatePool(s.fixture.WETHAddress, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.logParsers[pairAddress] = pair
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.uniswap.RouterAddress, precise.MaxUint256)
	s.approveToken(s.fixture.DAI.Approve, s.signer, s.uniswap.RouterAddress, precise.MaxUint256)
	s.Require().NoError(s.uniswap.AddLiquidity(
		s.signer,
		s.fixture.WETHAddress, s.fixture.DAIAddress,
		precise.Ether(1000), precise.Ether(230_000),
		s.account[0].address(),
	))

	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	s.trade, s.tradeAddress, err = s.fixture.Deployer.Modules.DeployTradeModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.tradeAddress] = s.trade
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.tradeAddress))()

	s.adapter, s.adapterAddress, err = s.fixture.Deployer.Adapters.DeployUniswapV2ExchangeAdapter(s.uniswap.RouterAddress)
	s.Require().NoError(err)
	s.Require().NoError(s.fixture.RegisterIntegration(s.tradeAddress, uniswapAdapterIntegration, s.adapterAddress))

	s.wethUnit = precise.Ether(1)
	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{s.wethUnit},
		[]common.Address{s.issuanceAddress, s.tradeAddress},
		"Trade Set", "TRD",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()
	s.requireTx(s.trade.Initialize(s.signer, s.setTokenAddress))(
		abi.SetTokenModuleInitialized{Module: s.tradeAddress},
	)

	s.approveToken(s.fixture.WETH.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, precise.Ether(10), s.account[0].address()))()
}

func (s *TradeSuite) TestAdapterWiring() {
	router, err := s.adapter.Router(nil)
	s.Require().NoError(err)
	s.Equal(s.uniswap.RouterAddress, router)

	spender, err := s.adapter.GetSpender(nil)
	s.Require().NoError(err)
	s.Equal(s.uniswap.RouterAddress, spender)

	resolved, err := s.fixture.IntegrationRegistry.GetIntegrationAdapter(nil, s.tradeAddress, uniswapAdapterIntegration)
	s.Require().NoError(err)
	s.Equal(s.adapterAddress, resolved)
}

func (s *TradeSuite) TestTrade() {
	sendUnit := new(big.Int).Div(precise.Ether(1), big.NewInt(2)) // 0.5 WETH per Set
	supply, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)
	sendNotional := precise.Mul(sendUnit, supply)

	amounts, err := s.uniswap.Router.GetAmountsOut(nil, sendNotional,
		[]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress})
	s.Require().NoError(err)
	s.Require().Len(amounts, 2)
	receiveNotional := amounts[1]

	s.requireTx(s.trade.Trade(
		s.signer, s.setTokenAddress, uniswapAdapterIntegration,
		s.fixture.WETHAddress, sendUnit,
		s.fixture.DAIAddress, bigInt(1), nil,
	))(
		abi.TradeModuleComponentExchanged{
			SetToken:           s.setTokenAddress,
			SendToken:          s.fixture.WETHAddress,
			ReceiveToken:       s.fixture.DAIAddress,
			ExchangeAdapter:    s.adapterAddress,
			TotalSendAmount:    sendNotional,
			TotalReceiveAmount: receiveNotional,
			ProtocolFee:        bigInt(0),
		},
	)

	// WETH unit shrinks by the traded unit, DAI shows up as a new default
	// position sized from the swap proceeds.
	s.assertDefaultPositionUnit(s.setToken, s.fixture.WETHAddress, new(big.Int).Sub(s.wethUnit, sendUnit))
	s.assertDefaultPositionUnit(s.setToken, s.fixture.DAIAddress, precise.Div(receiveNotional, supply))

	s.assertBalance(s.fixture.DAI, s.setTokenAddress, receiveNotional)
	s.assertBalance(s.fixture.WETH, s.setTokenAddress, new(big.Int).Sub(precise.Ether(10), sendNotional))
}

func (s *TradeSuite) TestTradeEnforcesMinReceive() {
	// An impossible floor reverts the swap.
	s.requireTxFails(s.trade.Trade(
		s.signer, s.setTokenAddress, uniswapAdapterIntegration,
		s.fixture.WETHAddress, new(big.Int).Div(precise.Ether(1), big.NewInt(2)),
		s.fixture.DAIAddress, precise.Ether(1_000_000), nil,
	))
}

func (s *TradeSuite) TestTradeUnknownIntegrationFails() {
	s.requireTxFails(s.trade.Trade(
		s.signer, s.setTokenAddress, "NoSuchAdapter",
		s.fixture.WETHAddress, precise.Ether(1),
		s.fixture.DAIAddress, bigInt(1), nil,
	))
}

func (s *TradeSuite) TestTradeOnlyManager() {
	s.requireTxFails(s.trade.Trade(
		signer(s.account[3]), s.setTokenAddress, uniswapAdapterIntegration,
		s.fixture.WETHAddress, precise.Ether(1),
		s.fixture.DAIAddress, bigInt(1), nil,
	))
}

func (s *TradeSuite) TestTradeMoreThanPositionFails() {
	s.requireTxFails(s.trade.Trade(
		s.signer, s.setTokenAddress, uniswapAdapterIntegration,
		s.fixture.WETHAddress, precise.Ether(2), // only 1 WETH per Set held
		s.fixture.DAIAddress, bigInt(1), nil,
	))
}
