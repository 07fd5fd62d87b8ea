package tests

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/fixtures"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

func TestUniswapFixture(t *testing.T) {
	suite.Run(t, new(UniswapFixtureSuite))
}

type UniswapFixtureSuite struct {
	TestSuite

	uniswap *fixtures.UniswapFixture
}

var (
	_ suite.BeforeTest    = &UniswapFixtureSuite{}
	_ suite.SetupAllSuite = &UniswapFixtureSuite{}
)

func (s *UniswapFixtureSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *UniswapFixtureSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	s.uniswap = fixtures.NewUniswapFixture(s.signer, s.node, s.fixture.WETHAddress)
	s.Require().NoError(s.uniswap.Setup())
}

func (s *UniswapFixtureSuite) TestSetup() {
	factory, err := s.uniswap.Router.Factory(nil)
	s.Require().NoError(err)
	s.Equal(s.uniswap.FactoryAddress, factory)

	weth, err := s.uniswap.Router.WETH(nil)
	s.Require().NoError(err)
	s.Equal(s.fixture.WETHAddress, weth)
}

func (s *UniswapFixtureSuite) TestPoolLifecycle() {
	pair, pairAddress, err := s.uniswap.CreatePool(s.fixture.WETHAddress, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.NotEqual(zeroAddress(), pairAddress)

	token0, err := pair.Token0(nil)
	s.Require().NoError(err)
	token1, err := pair.Token1(nil)
	s.Require().NoError(err)
	s.ElementsMatch(
		[]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress},
		[]common.Address{token0, token1},
	)

	s.approveToken(s.fixture.WETH.Approve, s.signer, s.uniswap.RouterAddress, precise.MaxUint256)
	s.approveToken(s.fixture.DAI.Approve, s.signer, s.uniswap.RouterAddress, precise.MaxUint256)
	s.Require().NoError(s.uniswap.AddLiquidity(
		s.signer,
		s.fixture.WETHAddress, s.fixture.DAIAddress,
		precise.Ether(100), precise.Ether(23_000),
		s.account[0].address(),
	))

	reserves, err := pair.GetReserves(nil)
	s.Require().NoError(err)
	s.True(reserves.Reserve0.Sign() > 0)
	s.True(reserves.Reserve1.Sign() > 0)

	lpBalance, err := pair.BalanceOf(nil, s.account[0].address())
	s.Require().NoError(err)
	s.True(lpBalance.Sign() > 0, "liquidity provider should hold LP tokens")
}

func (s *UniswapFixtureSuite) TestSwap() {
	pair, pairAddress, err := s.uniswap.CreatePool(s.fixture.WETHAddress, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.logParsers[pairAddress] = pair
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.uniswap.RouterAddress, precise.MaxUint256)
	s.approveToken(s.fixture.DAI.Approve, s.signer, s.uniswap.RouterAddress, precise.MaxUint256)
	s.Require().NoError(s.uniswap.AddLiquidity(
		s.signer,
		s.fixture.WETHAddress, s.fixture.DAIAddress,
		precise.Ether(100), precise.Ether(23_000),
		s.account[0].address(),
	))

	amountIn := precise.Ether(1)
	path := []common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress}
	amounts, err := s.uniswap.Router.GetAmountsOut(nil, amountIn, path)
	s.Require().NoError(err)
	s.Require().Len(amounts, 2)

	recipient := s.account[1].address()
	deadline := big.NewInt(time.Now().Add(time.Hour).Unix())
	s.requireTx(s.uniswap.Router.SwapExactTokensForTokens(
		s.signer, amountIn, bigInt(1), path, recipient, deadline,
	))()

	s.assertBalance(s.fixture.DAI, recipient, amounts[1])
}

func TestCompoundFixture(t *testing.T) {
	suite.Run(t, new(CompoundFixtureSuite))
}

type CompoundFixtureSuite struct {
	TestSuite

	compound *fixtures.CompoundFixture
}

var (
	_ suite.BeforeTest    = &CompoundFixtureSuite{}
	_ suite.SetupAllSuite = &CompoundFixtureSuite{}
)

func (s *CompoundFixtureSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *CompoundFixtureSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	s.compound = fixtures.NewCompoundFixture(s.signer, s.node)
	s.Require().NoError(s.compound.Setup())
	s.logParsers[s.compound.ComptrollerAddress] = s.compound.Comptroller
}

func (s *CompoundFixtureSuite) TestSetup() {
	oracle, err := s.compound.Comptroller.Oracle(nil)
	s.Require().NoError(err)
	s.Equal(s.compound.PriceOracleAddress, oracle)
}

func (s *CompoundFixtureSuite) TestMoneyMarket() {
	rate := precise.Units(2, 26)
	collateralFactor := new(big.Int).Div(precise.Ether(3), big.NewInt(4))

	cDAI, cDAIAddress, err := s.compound.CreateAndEnableCToken(
		s.fixture.DAIAddress, rate, "Compound DAI", "cDAI", 8,
		collateralFactor, precise.Ether(1),
	)
	s.Require().NoError(err)
	s.logParsers[cDAIAddress] = cDAI

	market, err := s.compound.Comptroller.Markets(nil, cDAIAddress)
	s.Require().NoError(err)
	s.True(market.IsListed)
	s.Equal(collateralFactor.String(), market.CollateralFactorMantissa.String())

	price, err := s.compound.PriceOracle.GetUnderlyingPrice(nil, cDAIAddress)
	s.Require().NoError(err)
	s.Equal(precise.Ether(1).String(), price.String())

	// Mint: 1000 DAI at a 0.02 rate comes back as 50,000 cDAI.
	supplied := precise.Ether(1000)
	s.approveToken(s.fixture.DAI.Approve, s.signer, cDAIAddress, precise.MaxUint256)
	s.requireTx(cDAI.Mint(s.signer, supplied))()

	expectedCTokens := new(big.Int).Div(new(big.Int).Mul(supplied, precise.Unit), rate)
	s.assertBalance(cDAI, s.account[0].address(), expectedCTokens)

	cash, err := cDAI.GetCash(nil)
	s.Require().NoError(err)
	s.Equal(supplied.String(), cash.String())

	// Enter the market and borrow against the supplied collateral.
	s.requireTx(s.compound.Comptroller.EnterMarkets(s.signer, []common.Address{cDAIAddress}))()

	daiBefore, err := s.fixture.DAI.BalanceOf(nil, s.account[0].address())
	s.Require().NoError(err)

	borrowed := precise.Ether(100)
	s.requireTx(cDAI.Borrow(s.signer, borrowed))()

	s.assertBalance(s.fixture.DAI, s.account[0].address(), new(big.Int).Add(daiBefore, borrowed))
	debt, err := cDAI.BorrowBalanceStored(nil, s.account[0].address())
	s.Require().NoError(err)
	s.Equal(borrowed.String(), debt.String())

	// Repay and redeem everything.
	s.requireTx(cDAI.RepayBorrow(s.signer, borrowed))()
	debt, err = cDAI.BorrowBalanceStored(nil, s.account[0].address())
	s.Require().NoError(err)
	s.Equal("0", debt.String())

	s.requireTx(cDAI.Redeem(s.signer, expectedCTokens))()
	s.assertBalance(cDAI, s.account[0].address(), bigInt(0))
}

func TestAaveFixture(t *testing.T) {
	suite.Run(t, new(AaveFixtureSuite))
}

type AaveFixtureSuite struct {
	TestSuite

	aave *fixtures.AaveV2Fixture
}

var (
	_ suite.BeforeTest    = &AaveFixtureSuite{}
	_ suite.SetupAllSuite = &AaveFixtureSuite{}
)

func (s *AaveFixtureSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *AaveFixtureSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	s.aave = fixtures.NewAaveV2Fixture(s.signer, s.node)
	s.Require().NoError(s.aave.Setup())
	s.logParsers[s.aave.PoolAddress] = s.aave.LendingPool
}

func (s *AaveFixtureSuite) TestSetup() {
	pool, err := s.aave.Provider.GetLendingPool(nil)
	s.Require().NoError(err)
	s.Equal(s.aave.PoolAddress, pool)

	marketID, err := s.aave.Provider.GetMarketId(nil)
	s.Require().NoError(err)
	s.Equal("Commons", marketID)
}

func (s *AaveFixtureSuite) TestDepositWithdraw() {
	aDAI, aDAIAddress, err := s.aave.CreateReserve(s.fixture.DAIAddress, "Aave DAI", "aDAI")
	s.Require().NoError(err)
	s.logParsers[aDAIAddress] = aDAI

	resolved, err := s.aave.LendingPool.GetReserveAToken(nil, s.fixture.DAIAddress)
	s.Require().NoError(err)
	s.Equal(aDAIAddress, resolved)

	underlying, err := aDAI.UNDERLYINGASSETADDRESS(nil)
	s.Require().NoError(err)
	s.Equal(s.fixture.DAIAddress, underlying)

	// Deposits mint aTokens one to one with the underlying.
	deposited := precise.Ether(500)
	s.approveToken(s.fixture.DAI.Approve, s.signer, s.aave.PoolAddress, precise.MaxUint256)
	s.requireTx(s.aave.LendingPool.Deposit(s.signer, s.fixture.DAIAddress, deposited, s.account[0].address(), 0))()
	s.assertBalance(aDAI, s.account[0].address(), deposited)

	daiBefore, err := s.fixture.DAI.BalanceOf(nil, s.account[0].address())
	s.Require().NoError(err)

	withdrawn := precise.Ether(200)
	s.requireTx(s.aave.LendingPool.Withdraw(s.signer, s.fixture.DAIAddress, withdrawn, s.account[0].address()))()
	s.assertBalance(aDAI, s.account[0].address(), new(big.Int).Sub(deposited, withdrawn))
	s.assertBalance(s.fixture.DAI, s.account[0].address(), new(big.Int).Add(daiBefore, withdrawn))
}
