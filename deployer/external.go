package deployer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
)

// ExternalDeployer deploys the third-party protocols the modules integrate
// with: UniswapV2, Compound and Aave V2.
type ExternalDeployer struct {
	deps
}

func (d ExternalDeployer) DeployUniswapV2Factory(feeToSetter common.Address) (*abi.UniswapV2Factory, common.Address, error) {
	addr, tx, factory, err := abi.DeployUniswapV2Factory(d.opts, d.backend, feeToSetter)
	if err := d.confirm(tx, err, "UniswapV2Factory"); err != nil {
		return nil, common.Address{}, err
	}
	return factory, addr, nil
}

func (d ExternalDeployer) DeployUniswapV2Router(factory, weth common.Address) (*abi.UniswapV2Router02, common.Address, error) {
	addr, tx, router, err := abi.DeployUniswapV2Router02(d.opts, d.backend, factory, weth)
	if err := d.confirm(tx, err, "UniswapV2Router02"); err != nil {
		return nil, common.Address{}, err
	}
	return router, addr, nil
}

// GetUniswapV2Pair attaches to a pair created by the factory.
func (d ExternalDeployer) GetUniswapV2Pair(addr common.Address) (*abi.UniswapV2Pair, error) {
	pair, err := abi.NewUniswapV2Pair(addr, d.backend)
	return pair, errors.Wrap(err, "attaching UniswapV2Pair")
}

func (d ExternalDeployer) DeployComptroller() (*abi.Comptroller, common.Address, error) {
	addr, tx, comptroller, err := abi.DeployComptroller(d.opts, d.backend)
	if err := d.confirm(tx, err, "Comptroller"); err != nil {
		return nil, common.Address{}, err
	}
	return comptroller, addr, nil
}

func (d ExternalDeployer) DeployCErc20(
	underlying common.Address,
	comptroller common.Address,
	initialExchangeRate *big.Int,
	name string,
	symbol string,
	decimals uint8,
) (*abi.CErc20, common.Address, error) {
	addr, tx, cToken, err := abi.DeployCErc20(
		d.opts, d.backend, underlying, comptroller, initialExchangeRate, name, symbol, decimals,
	)
	if err := d.confirm(tx, err, "CErc20"); err != nil {
		return nil, common.Address{}, err
	}
	return cToken, addr, nil
}

func (d ExternalDeployer) DeployCompoundPriceOracleMock() (*abi.CompoundPriceOracleMock, common.Address, error) {
	addr, tx, oracle, err := abi.DeployCompoundPriceOracleMock(d.opts, d.backend)
	if err := d.confirm(tx, err, "CompoundPriceOracleMock"); err != nil {
		return nil, common.Address{}, err
	}
	return oracle, addr, nil
}

func (d ExternalDeployer) DeployLendingPoolAddressesProvider(marketID string) (*abi.LendingPoolAddressesProvider, common.Address, error) {
	addr, tx, provider, err := abi.DeployLendingPoolAddressesProvider(d.opts, d.backend, marketID)
	if err := d.confirm(tx, err, "LendingPoolAddressesProvider"); err != nil {
		return nil, common.Address{}, err
	}
	return provider, addr, nil
}

func (d ExternalDeployer) DeployAaveLendingPool(provider common.Address) (*abi.AaveLendingPool, common.Address, error) {
	addr, tx, pool, err := abi.DeployAaveLendingPool(d.opts, d.backend, provider)
	if err := d.confirm(tx, err, "AaveLendingPool"); err != nil {
		return nil, common.Address{}, err
	}
	return pool, addr, nil
}

func (d ExternalDeployer) DeployAaveAToken(
	pool common.Address,
	underlying common.Address,
	name string,
	symbol string,
) (*abi.AaveAToken, common.Address, error) {
	addr, tx, aToken, err := abi.DeployAaveAToken(d.opts, d.backend, pool, underlying, name, symbol)
	if err := d.confirm(tx, err, "AaveAToken"); err != nil {
		return nil, common.Address{}, err
	}
	return aToken, addr, nil
}

// GetAaveAToken attaches to an aToken the lending pool reports for a
// reserve.
func (d ExternalDeployer) GetAaveAToken(addr common.Address) (*abi.AaveAToken, error) {
	aToken, err := abi.NewAaveAToken(addr, d.backend)
	return aToken, errors.Wrap(err, "attaching AaveAToken")
}
