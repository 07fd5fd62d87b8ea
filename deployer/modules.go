package deployer

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
)

// ModuleDeployer deploys the protocol modules.
type ModuleDeployer struct {
	deps
}

func (d ModuleDeployer) DeployBasicIssuanceModule(controller common.Address) (*abi.BasicIssuanceModule, common.Address, error) {
	addr, tx, module, err := abi.DeployBasicIssuanceModule(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "BasicIssuanceModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}

func (d ModuleDeployer) DeployNAVIssuanceModule(controller, weth common.Address) (*abi.NAVIssuanceModule, common.Address, error) {
	addr, tx, module, err := abi.DeployNAVIssuanceModule(d.opts, d.backend, controller, weth)
	if err := d.confirm(tx, err, "NAVIssuanceModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}

func (d ModuleDeployer) DeployStreamingFeeModule(controller common.Address) (*abi.StreamingFeeModule, common.Address, error) {
	addr, tx, module, err := abi.DeployStreamingFeeModule(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "StreamingFeeModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}

func (d ModuleDeployer) DeployAirdropModule(controller common.Address) (*abi.AirdropModule, common.Address, error) {
	addr, tx, module, err := abi.DeployAirdropModule(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "AirdropModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}

func (d ModuleDeployer) DeployTradeModule(controller common.Address) (*abi.TradeModule, common.Address, error) {
	addr, tx, module, err := abi.DeployTradeModule(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "TradeModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}

func (d ModuleDeployer) DeployWrapModule(controller, weth common.Address) (*abi.WrapModule, common.Address, error) {
	addr, tx, module, err := abi.DeployWrapModule(d.opts, d.backend, controller, weth)
	if err := d.confirm(tx, err, "WrapModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}

func (d ModuleDeployer) DeployGovernanceModule(controller common.Address) (*abi.GovernanceModule, common.Address, error) {
	addr, tx, module, err := abi.DeployGovernanceModule(d.opts, d.backend, controller)
	if err := d.confirm(tx, err, "GovernanceModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}

func (d ModuleDeployer) DeployCompoundLeverageModule(
	controller, compToken, comptroller, cEther, weth common.Address,
) (*abi.CompoundLeverageModule, common.Address, error) {
	addr, tx, module, err := abi.DeployCompoundLeverageModule(
		d.opts, d.backend, controller, compToken, comptroller, cEther, weth,
	)
	if err := d.confirm(tx, err, "CompoundLeverageModule"); err != nil {
		return nil, common.Address{}, err
	}
	return module, addr, nil
}
