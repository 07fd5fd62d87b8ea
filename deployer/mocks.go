package deployer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
)

// MockDeployer deploys the mock tokens, oracles and governors the suites
// use as protocol collateral and integration targets.
type MockDeployer struct {
	deps
}

// DeployTokenMock deploys a mintable ERC20 with initialBalance credited to
// initialAccount.
func (d MockDeployer) DeployTokenMock(
	initialAccount common.Address,
	initialBalance *big.Int,
	name string,
	symbol string,
	decimals uint8,
) (*abi.StandardTokenMock, common.Address, error) {
	addr, tx, token, err := abi.DeployStandardTokenMock(
		d.opts, d.backend, initialAccount, initialBalance, name, symbol, decimals,
	)
	if err := d.confirm(tx, err, "StandardTokenMock"); err != nil {
		return nil, common.Address{}, err
	}
	return token, addr, nil
}

func (d MockDeployer) DeployWETH() (*abi.WETH9, common.Address, error) {
	addr, tx, weth, err := abi.DeployWETH9(d.opts, d.backend)
	if err := d.confirm(tx, err, "WETH9"); err != nil {
		return nil, common.Address{}, err
	}
	return weth, addr, nil
}

// DeployOracleMock deploys a price oracle mock reporting initialPrice, an
// 18-decimal fixed-point price.
func (d MockDeployer) DeployOracleMock(initialPrice *big.Int) (*abi.OracleMock, common.Address, error) {
	addr, tx, oracle, err := abi.DeployOracleMock(d.opts, d.backend, initialPrice)
	if err := d.confirm(tx, err, "OracleMock"); err != nil {
		return nil, common.Address{}, err
	}
	return oracle, addr, nil
}

func (d MockDeployer) DeployGovernorMock() (*abi.GovernorMock, common.Address, error) {
	addr, tx, governor, err := abi.DeployGovernorMock(d.opts, d.backend)
	if err := d.confirm(tx, err, "GovernorMock"); err != nil {
		return nil, common.Address{}, err
	}
	return governor, addr, nil
}
