package deployer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
)

// CoreDeployer deploys the system contracts: the Controller, its resources
// and the SetToken factory.
type CoreDeployer struct {
	deps
}

func (d CoreDeployer) DeployController(feeRecipient common.Address) (*abi.Controller, common.Address, error) {
	addr, tx, controller, err := abi.DeployController(d.opts, d.backend, feeRecipient)
	if err := d.confirm(tx, err, "Controller"); err != nil {
		return nil, common.Address{}, err
	}
	return controller, addr, nil
}

func (d CoreDeployer) DeployIntegrationRegistry(controller common.Address) (*abi.IntegrationRegistry, common.Address, error) {
	addr, tx, registry, err := abi.DeployIntegrationRegistry(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "IntegrationRegistry"); err != nil {
		return nil, common.Address{}, err
	}
	return registry, addr, nil
}

func (d CoreDeployer) DeploySetTokenCreator(controller common.Address) (*abi.SetTokenCreator, common.Address, error) {
	addr, tx, creator, err := abi.DeploySetTokenCreator(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "SetTokenCreator"); err != nil {
		return nil, common.Address{}, err
	}
	return creator, addr, nil
}

func (d CoreDeployer) DeployPriceOracle(
	controller common.Address,
	masterQuoteAsset common.Address,
	adapters []common.Address,
	assetOnes []common.Address,
	assetTwos []common.Address,
	oracles []common.Address,
) (*abi.PriceOracle, common.Address, error) {
	addr, tx, oracle, err := abi.DeployPriceOracle(
		d.opts, d.backend, controller, masterQuoteAsset, adapters, assetOnes, assetTwos, oracles,
	)
	if err := d.confirm(tx, err, "PriceOracle"); err != nil {
		return nil, common.Address{}, err
	}
	return oracle, addr, nil
}

func (d CoreDeployer) DeploySetValuer(controller common.Address) (*abi.SetValuer, common.Address, error) {
	addr, tx, valuer, err := abi.DeploySetValuer(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "SetValuer"); err != nil {
		return nil, common.Address{}, err
	}
	return valuer, addr, nil
}

// DeploySetToken deploys a SetToken directly, bypassing the factory. Tests
// use this for token-level behavior that does not need Controller
// accounting.
func (d CoreDeployer) DeploySetToken(
	components []common.Address,
	units []*big.Int,
	modules []common.Address,
	controller common.Address,
	manager common.Address,
	name string,
	symbol string,
) (*abi.SetToken, common.Address, error) {
	addr, tx, setToken, err := abi.DeploySetToken(
		d.opts, d.backend, components, units, modules, controller, manager, name, symbol,
	)
	if err := d.confirm(tx, err, "SetToken"); err != nil {
		return nil, common.Address{}, err
	}
	return setToken, addr, nil
}

// GetSetToken attaches to a SetToken at addr, typically one created through
// the SetTokenCreator.
func (d CoreDeployer) GetSetToken(addr common.Address) (*abi.SetToken, error) {
	setToken, err := abi.NewSetToken(addr, d.backend)
	return setToken, errors.Wrap(err, "attaching SetToken")
}

func (d CoreDeployer) GetController(addr common.Address) (*abi.Controller, error) {
	controller, err := abi.NewController(addr, d.backend)
	return controller, errors.Wrap(err, "attaching Controller")
}

func (d CoreDeployer) GetIntegrationRegistry(addr common.Address) (*abi.IntegrationRegistry, error) {
	registry, err := abi.NewIntegrationRegistry(addr, d.backend)
	return registry, errors.Wrap(err, "attaching IntegrationRegistry")
}

func (d CoreDeployer) GetPriceOracle(addr common.Address) (*abi.PriceOracle, error) {
	oracle, err := abi.NewPriceOracle(addr, d.backend)
	return oracle, errors.Wrap(err, "attaching PriceOracle")
}

func (d CoreDeployer) GetSetValuer(addr common.Address) (*abi.SetValuer, error) {
	valuer, err := abi.NewSetValuer(addr, d.backend)
	return valuer, errors.Wrap(err, "attaching SetValuer")
}

func (d CoreDeployer) GetSetTokenCreator(addr common.Address) (*abi.SetTokenCreator, error) {
	creator, err := abi.NewSetTokenCreator(addr, d.backend)
	return creator, errors.Wrap(err, "attaching SetTokenCreator")
}
