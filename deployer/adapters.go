package deployer

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
)

// AdapterDeployer deploys the integration adapters registered with the
// IntegrationRegistry.
type AdapterDeployer struct {
	deps
}

func (d AdapterDeployer) DeployUniswapV2ExchangeAdapter(router common.Address) (*abi.UniswapV2ExchangeAdapter, common.Address, error) {
	addr, tx, adapter, err := abi.DeployUniswapV2ExchangeAdapter(d.opts, d.backend, router)
	if err := d.confirm(tx, err, "UniswapV2ExchangeAdapter"); err != nil {
		return nil, common.Address{}, err
	}
	return adapter, addr, nil
}

func (d AdapterDeployer) DeployCompoundWrapAdapter() (*abi.CompoundWrapAdapter, common.Address, error) {
	addr, tx, adapter, err := abi.DeployCompoundWrapAdapter(d.opts, d.backend)
	if err := d.confirm(tx, err, "CompoundWrapAdapter"); err != nil {
		return nil, common.Address{}, err
	}
	return adapter, addr, nil
}

func (d AdapterDeployer) DeployGovernorMockAdapter(governor common.Address) (*abi.GovernorMockAdapter, common.Address, error) {
	addr, tx, adapter, err := abi.DeployGovernorMockAdapter(d.opts, d.backend, governor)
	if err := d.confirm(tx, err, "GovernorMockAdapter"); err != nil {
		return nil, common.Address{}, err
	}
	return adapter, addr, nil
}
