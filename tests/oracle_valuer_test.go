package tests

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

func TestOracleAndValuer(t *testing.T) {
	suite.Run(t, new(OracleValuerSuite))
}

type OracleValuerSuite struct {
	TestSuite

	issuance        *abi.BasicIssuanceModule
	issuanceAddress common.Address
	setToken        *abi.SetToken
	setTokenAddress common.Address
}

var (
	_ suite.BeforeTest    = &OracleValuerSuite{}
	_ suite.SetupAllSuite = &OracleValuerSuite{}
)

func (s *OracleValuerSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *OracleValuerSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	var err error
	s.issuance, s.issuanceAddress, err = s.fixture.Deployer.Modules.DeployBasicIssuanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.issuanceAddress] = s.issuance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.issuanceAddress))()

	// 1 Set = 1 WETH + 100 DAI, worth 330 USDC at the fixture prices.
	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress, s.fixture.DAIAddress},
		[]*big.Int{precise.Ether(1), precise.Ether(100)},
		[]common.Address{s.issuanceAddress},
		"Valued Set", "VAL",
	)
	s.requireTx(s.issuance.Initialize(s.signer, s.setTokenAddress, zeroAddress()))()
}

func (s *OracleValuerSuite) TestGetPrice() {
	price, err := s.fixture.PriceOracle.GetPrice(nil, s.fixture.WETHAddress, s.fixture.USDCAddress)
	s.Require().NoError(err)
	s.Equal(precise.Ether(230).String(), price.String())

	price, err = s.fixture.PriceOracle.GetPrice(nil, s.fixture.DAIAddress, s.fixture.USDCAddress)
	s.Require().NoError(err)
	s.Equal(precise.Ether(1).String(), price.String())

	// No oracle pair registered for this asset.
	_, err = s.fixture.PriceOracle.GetPrice(nil, s.setTokenAddress, s.fixture.USDCAddress)
	s.Error(err)
}

func (s *OracleValuerSuite) TestMasterQuoteAsset() {
	master, err := s.fixture.PriceOracle.MasterQuoteAsset(nil)
	s.Require().NoError(err)
	s.Equal(s.fixture.USDCAddress, master)
}

func (s *OracleValuerSuite) TestPairManagement() {
	oracle, oracleAddress, err := s.fixture.Deployer.Mocks.DeployOracleMock(precise.Ether(42))
	s.Require().NoError(err)
	_ = oracle

	pairOne := s.fixture.WBTCAddress
	pairTwo := s.fixture.DAIAddress

	s.requireTxWithStrictEvents(s.fixture.PriceOracle.AddPair(s.signer, pairOne, pairTwo, oracleAddress))(
		abi.PriceOraclePairAdded{AssetOne: pairOne, AssetTwo: pairTwo, Oracle: oracleAddress},
	)

	price, err := s.fixture.PriceOracle.GetPrice(nil, pairOne, pairTwo)
	s.Require().NoError(err)
	s.Equal(precise.Ether(42).String(), price.String())

	// Duplicate pairs revert.
	s.requireTxFails(s.fixture.PriceOracle.AddPair(s.signer, pairOne, pairTwo, oracleAddress))

	_, otherOracleAddress, err := s.fixture.Deployer.Mocks.DeployOracleMock(precise.Ether(43))
	s.Require().NoError(err)
	s.requireTxWithStrictEvents(s.fixture.PriceOracle.EditPair(s.signer, pairOne, pairTwo, otherOracleAddress))(
		abi.PriceOraclePairEdited{AssetOne: pairOne, AssetTwo: pairTwo, NewOracle: otherOracleAddress},
	)

	s.requireTxWithStrictEvents(s.fixture.PriceOracle.RemovePair(s.signer, pairOne, pairTwo))(
		abi.PriceOraclePairRemoved{AssetOne: pairOne, AssetTwo: pairTwo, Oracle: otherOracleAddress},
	)

	_, err = s.fixture.PriceOracle.GetPrice(nil, pairOne, pairTwo)
	s.Error(err)
}

func (s *OracleValuerSuite) TestEditMasterQuoteAsset() {
	s.requireTxWithStrictEvents(s.fixture.PriceOracle.EditMasterQuoteAsset(s.signer, s.fixture.DAIAddress))(
		abi.PriceOracleMasterQuoteAssetEdited{NewMasterQuote: s.fixture.DAIAddress},
	)

	master, err := s.fixture.PriceOracle.MasterQuoteAsset(nil)
	s.Require().NoError(err)
	s.Equal(s.fixture.DAIAddress, master)
}

func (s *OracleValuerSuite) TestOracleOnlyOwner() {
	_, oracleAddress, err := s.fixture.Deployer.Mocks.DeployOracleMock(precise.Ether(1))
	s.Require().NoError(err)
	s.requireTxFails(s.fixture.PriceOracle.AddPair(signer(s.account[3]), s.fixture.WBTCAddress, s.fixture.DAIAddress, oracleAddress))
}

func (s *OracleValuerSuite) TestSetTokenValuation() {
	value, err := s.fixture.SetValuer.CalculateSetTokenValuation(nil, s.setTokenAddress, s.fixture.USDCAddress)
	s.Require().NoError(err)

	// 1 WETH at 230 plus 100 DAI at 1, quoted with 18 decimals.
	expected := new(big.Int).Add(
		precise.Mul(precise.Ether(1), precise.Ether(230)),
		precise.Mul(precise.Ether(100), precise.Ether(1)),
	)
	s.Equal(expected.String(), value.String())
}

func (s *OracleValuerSuite) TestValuationTracksOraclePrice() {
	before, err := s.fixture.SetValuer.CalculateSetTokenValuation(nil, s.setTokenAddress, s.fixture.USDCAddress)
	s.Require().NoError(err)

	s.logParsers[s.fixture.ETHOracleAddress] = s.fixture.ETHOracle
	s.requireTx(s.fixture.ETHOracle.UpdatePrice(s.signer, precise.Ether(460)))(
		abi.OracleMockPriceUpdated{NewPrice: precise.Ether(460)},
	)

	after, err := s.fixture.SetValuer.CalculateSetTokenValuation(nil, s.setTokenAddress, s.fixture.USDCAddress)
	s.Require().NoError(err)
	s.True(after.Cmp(before) > 0, "valuation should follow the oracle")
}
