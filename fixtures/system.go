package fixtures

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/deployer"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

// Resource IDs under which the Controller tracks its system resources.
const (
	IntegrationRegistryResourceID = 0
	PriceOracleResourceID         = 1
	SetValuerResourceID           = 2
)

// SystemFixture deploys and wires the core system: the Controller with its
// three resources, the SetTokenCreator, and a stable of mock component
// tokens with USD price oracles.
type SystemFixture struct {
	Deployer *deployer.DeployHelper
	Owner    *bind.TransactOpts

	Controller                 *abi.Controller
	ControllerAddress          common.Address
	IntegrationRegistry        *abi.IntegrationRegistry
	IntegrationRegistryAddress common.Address
	PriceOracle                *abi.PriceOracle
	PriceOracleAddress         common.Address
	SetValuer                  *abi.SetValuer
	SetValuerAddress           common.Address
	Creator                    *abi.SetTokenCreator
	CreatorAddress             common.Address

	WETH        *abi.WETH9
	WETHAddress common.Address
	USDC        *abi.StandardTokenMock
	USDCAddress common.Address
	DAI         *abi.StandardTokenMock
	DAIAddress  common.Address
	WBTC        *abi.StandardTokenMock
	WBTCAddress common.Address

	ETHOracle         *abi.OracleMock
	ETHOracleAddress  common.Address
	USDCOracle        *abi.OracleMock
	USDCOracleAddress common.Address
	DAIOracle         *abi.OracleMock
	DAIOracleAddress  common.Address
	BTCOracle         *abi.OracleMock
	BTCOracleAddress  common.Address

	backend deployer.Backend
}

// NewSystemFixture prepares a fixture whose transactions are signed by
// owner. Call Setup to deploy everything.
func NewSystemFixture(owner *bind.TransactOpts, backend deployer.Backend) *SystemFixture {
	return &SystemFixture{
		Deployer: deployer.New(owner, backend),
		Owner:    owner,
		backend:  backend,
	}
}

// Setup deploys the core system. The owner account ends up holding the mock
// token supplies and 5000 WETH.
func (f *SystemFixture) Setup() error {
	var err error

	f.Controller, f.ControllerAddress, err = f.Deployer.Core.DeployController(f.Owner.From)
	if err != nil {
		return err
	}
	f.IntegrationRegistry, f.IntegrationRegistryAddress, err = f.Deployer.Core.DeployIntegrationRegistry(f.ControllerAddress)
	if err != nil {
		return err
	}
	f.SetValuer, f.SetValuerAddress, err = f.Deployer.Core.DeploySetValuer(f.ControllerAddress)
	if err != nil {
		return err
	}
	f.Creator, f.CreatorAddress, err = f.Deployer.Core.DeploySetTokenCreator(f.ControllerAddress)
	if err != nil {
		return err
	}

	if err := f.deployTokens(); err != nil {
		return err
	}
	if err := f.deployOracles(); err != nil {
		return err
	}

	// The controller must know every resource before modules that look
	// them up can initialize.
	tx, err := f.Controller.Initialize(f.Owner,
		[]common.Address{f.CreatorAddress},
		nil,
		[]common.Address{f.IntegrationRegistryAddress, f.PriceOracleAddress, f.SetValuerAddress},
		[]*big.Int{
			big.NewInt(IntegrationRegistryResourceID),
			big.NewInt(PriceOracleResourceID),
			big.NewInt(SetValuerResourceID),
		},
	)
	return waitSuccess(f.backend, tx, err, "initializing controller")
}

func (f *SystemFixture) deployTokens() error {
	var err error

	f.WETH, f.WETHAddress, err = f.Deployer.Mocks.DeployWETH()
	if err != nil {
		return err
	}

	// Seed the owner with WETH so suites can fund pools and reserves.
	deposit := *f.Owner
	deposit.Value = precise.Ether(5000)
	tx, err := f.WETH.Deposit(&deposit)
	if err := waitSuccess(f.backend, tx, err, "depositing initial WETH"); err != nil {
		return err
	}

	f.USDC, f.USDCAddress, err = f.Deployer.Mocks.DeployTokenMock(
		f.Owner.From, precise.Units(2_000_000, 6), "USD Coin", "USDC", 6,
	)
	if err != nil {
		return err
	}
	f.DAI, f.DAIAddress, err = f.Deployer.Mocks.DeployTokenMock(
		f.Owner.From, precise.Ether(1_000_000), "Dai Stablecoin", "DAI", 18,
	)
	if err != nil {
		return err
	}
	f.WBTC, f.WBTCAddress, err = f.Deployer.Mocks.DeployTokenMock(
		f.Owner.From, precise.Units(10_000, 8), "Wrapped BTC", "WBTC", 8,
	)
	return err
}

func (f *SystemFixture) deployOracles() error {
	var err error

	f.ETHOracle, f.ETHOracleAddress, err = f.Deployer.Mocks.DeployOracleMock(precise.Ether(230))
	if err != nil {
		return err
	}
	f.USDCOracle, f.USDCOracleAddress, err = f.Deployer.Mocks.DeployOracleMock(precise.Ether(1))
	if err != nil {
		return err
	}
	f.DAIOracle, f.DAIOracleAddress, err = f.Deployer.Mocks.DeployOracleMock(precise.Ether(1))
	if err != nil {
		return err
	}
	f.BTCOracle, f.BTCOracleAddress, err = f.Deployer.Mocks.DeployOracleMock(precise.Ether(9000))
	if err != nil {
		return err
	}

	// USDC is the master quote asset; every component is priced against it.
	f.PriceOracle, f.PriceOracleAddress, err = f.Deployer.Core.DeployPriceOracle(
		f.ControllerAddress,
		f.USDCAddress,
		nil,
		[]common.Address{f.WETHAddress, f.USDCAddress, f.DAIAddress, f.WBTCAddress},
		[]common.Address{f.USDCAddress, f.USDCAddress, f.USDCAddress, f.USDCAddress},
		[]common.Address{f.ETHOracleAddress, f.USDCOracleAddress, f.DAIOracleAddress, f.BTCOracleAddress},
	)
	return err
}

// CreateSetToken creates a SetToken through the factory and returns a typed
// handle, resolving the new address from the SetTokenCreated event.
func (f *SystemFixture) CreateSetToken(
	opts *bind.TransactOpts,
	components []common.Address,
	units []*big.Int,
	modules []common.Address,
	manager common.Address,
	name string,
	symbol string,
) (*abi.SetToken, common.Address, error) {
	tx, err := f.Creator.Create(opts, components, units, modules, manager, name, symbol)
	if err != nil {
		return nil, common.Address{}, errors.Wrap(err, "creating SetToken")
	}
	receipt, err := bind.WaitMined(context.Background(), f.backend, tx)
	if err != nil {
		return nil, common.Address{}, errors.Wrap(err, "waiting for SetToken creation")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, common.Address{}, errors.Errorf("SetToken creation reverted (tx %v)", tx.Hash().Hex())
	}

	for _, log := range receipt.Logs {
		if log.Address != f.CreatorAddress {
			continue
		}
		created, err := f.Creator.ParseSetTokenCreated(*log)
		if err != nil {
			continue
		}
		setToken, err := f.Deployer.Core.GetSetToken(created.SetToken)
		if err != nil {
			return nil, common.Address{}, err
		}
		return setToken, created.SetToken, nil
	}
	return nil, common.Address{}, errors.New("SetTokenCreated event not found in receipt")
}

// AddModule registers a module with the controller so Sets can add it.
func (f *SystemFixture) AddModule(module common.Address) error {
	tx, err := f.Controller.AddModule(f.Owner, module)
	return waitSuccess(f.backend, tx, err, "adding module to controller")
}

// RegisterIntegration records an adapter under name for module in the
// integration registry.
func (f *SystemFixture) RegisterIntegration(module common.Address, name string, adapter common.Address) error {
	tx, err := f.IntegrationRegistry.AddIntegration(f.Owner, module, name, adapter)
	return waitSuccess(f.backend, tx, err, "registering integration "+name)
}
