package tests

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/ethutil"
	"github.com/SetProtocol/set-protocol-v2-go/fixtures"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

func TestCompoundLeverage(t *testing.T) {
	suite.Run(t, new(CompoundLeverageSuite))
}

type CompoundLeverageSuite struct {
	TestSuite

	compound *fixtures.CompoundFixture
	uniswap  *fixtures.UniswapFixture

	leverage        *abi.CompoundLeverageModule
	leverageAddress common.Address
	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address

	comp           *abi.StandardTokenMock
	compAddress    common.Address
	adapterAddress common.Address
	cWETH       *abi.CErc20
	cWETHAddress common.Address
	cDAI        *abi.CErc20
	cDAIAddress common.Address

	exchangeRate *big.Int
	cWETHUnit    *big.Int
}

var (
	_ suite.BeforeTest    = &CompoundLeverageSuite{}
	_ suite.SetupAllSuite = &CompoundLeverageSuite{}
)

func (s *CompoundLeverageSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *CompoundLeverageSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	s.compound = fixtures.NewCompoundFixture(s.signer, s.node)
	s.Require().NoError(s.compound.Setup())
	s.logParsers[s.compound.ComptrollerAddress] = s.compound.Comptroller

	var err error
	s.comp, s.compAddress, err = s.fixture.Deployer.Mocks.DeployTokenMock(
		s.account[0].address(), precise.Ether(1_000_000), "Compound", "COMP", 18)
	s.Require().NoError(err)

	collateralFactor := new(big.Int).Div(precise.Ether(3), big.NewInt(4)) // 75%
	s.exchangeRate = precise.Units(2, 26)
	s.cWETH, s.cWETHAddress, err = s.compound.CreateAndEnableCToken(
		s.fixture.WETHAddress, s.exchangeRate,
		"Compound WETH", "cWETH", 8,
		collateralFactor, precise.Ether(230),
	)
	s.Require().NoError(err)
	s.logParsers[s.cWETHAddress] = s.cWETH
	s.cDAI, s.cDAIAddress, err = s.compound.CreateAndEnableCToken(
		s.fixture.DAIAddress, s.exchangeRate,
		"Compound DAI", "cDAI", 8,
		collateralFactor, precise.Ether(1),
	)
	s.Require().NoError(err)
	s.logParsers[s.cDAIAddress] = s.cDAI

	// The cDAI market needs cash for the Set to borrow against.
	s.approveToken(s.fixture.DAI.Approve, s.signer, s.cDAIAddress, precise.MaxUint256)
	s.requireTx(s.cDAI.Mint(s.signer, precise.Ether(500_000)))()

	// Uniswap pool to swap borrowed DAI back into WETH.
	s.uniswap = fixtures.NewUniswapFixture(s.signer, s.node, s.fixture.WETHAddress)
	s.Require().NoError(s.uniswap.Setup())
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

	s.leverage, s.leverageAddress, err = s.fixture.Deployer.Modules.DeployCompoundLeverageModule(
		s.fixture.ControllerAddress, s.compAddress,
		s.compound.ComptrollerAddress, s.cWETHAddress, s.fixture.WETHAddress,
	)
	s.Require().NoError(err)
	s.logParsers[s.leverageAddress] = s.leverage
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.leverageAddress))()

	_, s.adapterAddress, err = s.fixture.Deployer.Adapters.DeployUniswapV2ExchangeAdapter(s.uniswap.RouterAddress)
	s.Require().NoError(err)
	s.Require().NoError(s.fixture.RegisterIntegration(s.leverageAddress, uniswapAdapterIntegration, s.adapterAddress))

	// 1 Set = 50 cWETH, one WETH of collateral at the fixed exchange rate.
	s.cWETHUnit = precise.Units(50, 8)
	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.cWETHAddress},
		[]*big.Int{s.cWETHUnit},
		[]common.Address{s.issuanceAddress, s.leverageAddress},
		"Leveraged ETH", "LEV",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()
	s.requireTx(s.leverage.Initialize(
		s.signer, s.setTokenAddress,
		[]common.Address{s.fixture.WETHAddress},
		[]common.Address{s.fixture.DAIAddress},
	))(
		abi.SetTokenModuleInitialized{Module: s.leverageAddress},
	)

	// Mint cWETH for the issuer and issue one Set.
	s.approveToken(s.fixture.WETH.Approve, s.signer, s.cWETHAddress, precise.MaxUint256)
	s.requireTx(s.cWETH.Mint(s.signer, precise.Ether(100)))()
	s.approveToken(s.cWETH.Approve, s.signer, s.issuanceAddress, precise.MaxUint256)
	s.requireTx(s.issuance.Issue(s.signer, s.setTokenAddress, precise.Ether(1), s.account[0].address()))()
}

// cTokensFor converts an underlying quantity into cTokens at the fixed
// exchange rate.
func (s *CompoundLeverageSuite) cTokensFor(underlying *big.Int) *big.Int {
	return new(big.Int).Div(new(big.Int).Mul(underlying, precise.Unit), s.exchangeRate)
}

func (s *CompoundLeverageSuite) TestInitializeState() {
	collateral, borrow, err := s.leverage.GetEnabledAssets(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal([]common.Address{s.fixture.WETHAddress}, collateral)
	s.Equal([]common.Address{s.fixture.DAIAddress}, borrow)
}

func (s *CompoundLeverageSuite) TestLever() {
	borrowUnit := precise.Ether(100) // 100 DAI per Set
	supply, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)
	borrowNotional := precise.Mul(borrowUnit, supply)

	amounts, err := s.uniswap.Router.GetAmountsOut(nil, borrowNotional,
		[]common.Address{s.fixture.DAIAddress, s.fixture.WETHAddress})
	s.Require().NoError(err)
	receiveNotional := amounts[1]

	s.requireTx(s.leverage.Lever(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.fixture.WETHAddress,
		borrowUnit, bigInt(1),
		uniswapAdapterIntegration, nil,
	))(
		abi.CompoundLeverageModuleLeverageIncreased{
			SetToken:           s.setTokenAddress,
			BorrowAsset:        s.fixture.DAIAddress,
			CollateralAsset:    s.fixture.WETHAddress,
			ExchangeAdapter:    s.adapterAddress,
			TotalBorrowAmount:  borrowNotional,
			TotalReceiveAmount: receiveNotional,
			ProtocolFee:        bigInt(0),
		},
	)

	// Collateral grew by the swapped WETH, now held as extra cWETH.
	expectedCWETH := new(big.Int).Add(s.cWETHUnit, s.cTokensFor(receiveNotional))
	s.assertDefaultPositionUnit(s.setToken, s.cWETHAddress, expectedCWETH)

	// The DAI debt shows up as a negative external position owned by the
	// leverage module.
	debtUnit, err := s.setToken.GetExternalPositionRealUnit(nil, s.fixture.DAIAddress, s.leverageAddress)
	s.Require().NoError(err)
	s.True(debtUnit.Sign() < 0)
	s.Equal(new(big.Int).Neg(borrowUnit).String(), debtUnit.String())

	borrowed, err := s.cDAI.BorrowBalanceStored(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(borrowNotional.String(), borrowed.String())
}

func (s *CompoundLeverageSuite) TestDelever() {
	borrowUnit := precise.Ether(100)
	s.requireTx(s.leverage.Lever(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.fixture.WETHAddress,
		borrowUnit, bigInt(1),
		uniswapAdapterIntegration, nil,
	))()

	supply, err := s.setToken.TotalSupply(nil)
	s.Require().NoError(err)

	// Redeem enough collateral to cover the whole debt after slippage.
	redeemUnit := new(big.Int).Div(precise.Ether(1), big.NewInt(2)) // 0.5 WETH
	redeemNotional := precise.Mul(redeemUnit, supply)
	amounts, err := s.uniswap.Router.GetAmountsOut(nil, redeemNotional,
		[]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress})
	s.Require().NoError(err)
	repayNotional := amounts[1]

	debtBefore, err := s.cDAI.BorrowBalanceStored(nil, s.setTokenAddress)
	s.Require().NoError(err)

	s.requireTx(s.leverage.Delever(
		s.signer, s.setTokenAddress,
		s.fixture.WETHAddress, s.fixture.DAIAddress,
		redeemUnit, bigInt(1),
		uniswapAdapterIntegration, nil,
	))(
		abi.CompoundLeverageModuleLeverageDecreased{
			SetToken:          s.setTokenAddress,
			CollateralAsset:   s.fixture.WETHAddress,
			RepayAsset:        s.fixture.DAIAddress,
			ExchangeAdapter:   s.adapterAddress,
			TotalRedeemAmount: redeemNotional,
			TotalRepayAmount:  repayNotional,
			ProtocolFee:       bigInt(0),
		},
	)

	debtAfter, err := s.cDAI.BorrowBalanceStored(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(debtAfter.Cmp(debtBefore) < 0, "deleveraging should repay debt")
}

func (s *CompoundLeverageSuite) TestSync() {
	s.requireTx(s.leverage.Lever(
		s.signer, s.setTokenAddress,
		s.fixture.DAIAddress, s.fixture.WETHAddress,
		precise.Ether(50), bigInt(1),
		uniswapAdapterIntegration, nil,
	))()

	s.requireTx(s.leverage.Sync(s.signer, s.setTokenAddress, true))()

	// Positions still reflect the books after syncing.
	debtUnit, err := s.setToken.GetExternalPositionRealUnit(nil, s.fixture.DAIAddress, s.leverageAddress)
	s.Require().NoError(err)
	s.True(debtUnit.Sign() < 0)
	collateralUnit, err := s.setToken.GetDefaultPositionRealUnit(nil, s.cWETHAddress)
	s.Require().NoError(err)
	s.True(collateralUnit.Cmp(s.cWETHUnit) > 0)
}

func (s *CompoundLeverageSuite) TestAddRemoveCollateralAssets() {
	s.requireTx(s.leverage.AddCollateralAssets(s.signer, s.setTokenAddress,
		[]common.Address{s.fixture.DAIAddress},
	))(
		abi.CompoundLeverageModuleCollateralAssetsUpdated{
			SetToken: s.setTokenAddress,
			Added:    true,
			Assets:   []common.Address{s.fixture.DAIAddress},
		},
	)

	collateral, _, err := s.leverage.GetEnabledAssets(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(collateral, s.fixture.DAIAddress))

	s.requireTx(s.leverage.RemoveCollateralAssets(s.signer, s.setTokenAddress,
		[]common.Address{s.fixture.DAIAddress},
	))(
		abi.CompoundLeverageModuleCollateralAssetsUpdated{
			SetToken: s.setTokenAddress,
			Added:    false,
			Assets:   []common.Address{s.fixture.DAIAddress},
		},
	)

	collateral, _, err = s.leverage.GetEnabledAssets(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.False(ethutil.ContainsAddress(collateral, s.fixture.DAIAddress))
}

func (s *CompoundLeverageSuite) TestAddRemoveBorrowAssets() {
	s.requireTx(s.leverage.AddBorrowAssets(s.signer, s.setTokenAddress,
		[]common.Address{s.fixture.USDCAddress},
	))(
		abi.CompoundLeverageModuleBorrowAssetsUpdated{
			SetToken: s.setTokenAddress,
			Added:    true,
			Assets:   []common.Address{s.fixture.USDCAddress},
		},
	)

	_, borrow, err := s.leverage.GetEnabledAssets(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(ethutil.ContainsAddress(borrow, s.fixture.USDCAddress))

	s.requireTx(s.leverage.RemoveBorrowAssets(s.signer, s.setTokenAddress,
		[]common.Address{s.fixture.USDCAddress},
	))(
		abi.CompoundLeverageModuleBorrowAssetsUpdated{
			SetToken: s.setTokenAddress,
			Added:    false,
			Assets:   []common.Address{s.fixture.USDCAddress},
		},
	)
}

func (s *CompoundLeverageSuite) TestLeverOnlyManager() {
	s.requireTxFails(s.leverage.Lever(
		signer(s.account[3]), s.setTokenAddress,
		s.fixture.DAIAddress, s.fixture.WETHAddress,
		precise.Ether(100), bigInt(1),
		uniswapAdapterIntegration, nil,
	))
}

func (s *CompoundLeverageSuite) TestLeverUnregisteredBorrowAssetFails() {
	s.requireTxFails(s.leverage.Lever(
		s.signer, s.setTokenAddress,
		s.fixture.USDCAddress, s.fixture.WETHAddress,
		precise.Units(100, 6), bigInt(1),
		uniswapAdapterIntegration, nil,
	))
}
