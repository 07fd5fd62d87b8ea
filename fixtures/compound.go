package fixtures

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/deployer"
)

// CompoundFixture deploys a Compound money market: a comptroller with a
// price oracle mock, plus cTokens created on demand.
type CompoundFixture struct {
	Owner *bind.TransactOpts

	Comptroller        *abi.Comptroller
	ComptrollerAddress common.Address
	PriceOracle        *abi.CompoundPriceOracleMock
	PriceOracleAddress common.Address

	helper  *deployer.DeployHelper
	backend deployer.Backend
}

func NewCompoundFixture(owner *bind.TransactOpts, backend deployer.Backend) *CompoundFixture {
	return &CompoundFixture{
		Owner:   owner,
		helper:  deployer.New(owner, backend),
		backend: backend,
	}
}

// Setup deploys the comptroller and wires in the price oracle mock.
func (f *CompoundFixture) Setup() error {
	var err error

	f.Comptroller, f.ComptrollerAddress, err = f.helper.External.DeployComptroller()
	if err != nil {
		return err
	}
	f.PriceOracle, f.PriceOracleAddress, err = f.helper.External.DeployCompoundPriceOracleMock()
	if err != nil {
		return err
	}

	tx, err := f.Comptroller.SetPriceOracle(f.Owner, f.PriceOracleAddress)
	return waitSuccess(f.backend, tx, err, "setting comptroller price oracle")
}

// CreateAndEnableCToken deploys a cToken over underlying, lists it as a
// market, and seeds its oracle price and collateral factor. price and
// collateralFactor are 18-decimal mantissas.
func (f *CompoundFixture) CreateAndEnableCToken(
	underlying common.Address,
	initialExchangeRate *big.Int,
	name string,
	symbol string,
	decimals uint8,
	collateralFactor *big.Int,
	price *big.Int,
) (*abi.CErc20, common.Address, error) {
	cToken, cTokenAddress, err := f.helper.External.DeployCErc20(
		underlying, f.ComptrollerAddress, initialExchangeRate, name, symbol, decimals,
	)
	if err != nil {
		return nil, common.Address{}, err
	}

	tx, err := f.Comptroller.SupportMarket(f.Owner, cTokenAddress)
	if err := waitSuccess(f.backend, tx, err, "listing market "+symbol); err != nil {
		return nil, common.Address{}, err
	}
	tx, err = f.PriceOracle.SetUnderlyingPrice(f.Owner, cTokenAddress, price)
	if err := waitSuccess(f.backend, tx, err, "setting price for "+symbol); err != nil {
		return nil, common.Address{}, err
	}
	tx, err = f.Comptroller.SetCollateralFactor(f.Owner, cTokenAddress, collateralFactor)
	if err := waitSuccess(f.backend, tx, err, "setting collateral factor for "+symbol); err != nil {
		return nil, common.Address{}, err
	}
	return cToken, cTokenAddress, nil
}
