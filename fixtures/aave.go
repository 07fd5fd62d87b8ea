package fixtures

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/deployer"
)

// AaveV2Fixture deploys an Aave V2 market: the addresses provider and the
// lending pool, with reserves initialized on demand.
type AaveV2Fixture struct {
	Owner *bind.TransactOpts

	Provider        *abi.LendingPoolAddressesProvider
	ProviderAddress common.Address
	LendingPool     *abi.AaveLendingPool
	PoolAddress     common.Address

	helper  *deployer.DeployHelper
	backend deployer.Backend
}

func NewAaveV2Fixture(owner *bind.TransactOpts, backend deployer.Backend) *AaveV2Fixture {
	return &AaveV2Fixture{
		Owner:   owner,
		helper:  deployer.New(owner, backend),
		backend: backend,
	}
}

// Setup deploys the addresses provider and lending pool and registers the
// pool with the provider.
func (f *AaveV2Fixture) Setup() error {
	var err error

	f.Provider, f.ProviderAddress, err = f.helper.External.DeployLendingPoolAddressesProvider("Commons")
	if err != nil {
		return err
	}
	f.LendingPool, f.PoolAddress, err = f.helper.External.DeployAaveLendingPool(f.ProviderAddress)
	if err != nil {
		return err
	}

	tx, err := f.Provider.SetLendingPoolImpl(f.Owner, f.PoolAddress)
	return waitSuccess(f.backend, tx, err, "registering lending pool")
}

// CreateReserve deploys the aToken for underlying and initializes the
// reserve in the pool.
func (f *AaveV2Fixture) CreateReserve(underlying common.Address, name, symbol string) (*abi.AaveAToken, common.Address, error) {
	aToken, aTokenAddress, err := f.helper.External.DeployAaveAToken(f.PoolAddress, underlying, name, symbol)
	if err != nil {
		return nil, common.Address{}, err
	}

	tx, err := f.LendingPool.InitReserve(f.Owner, underlying, aTokenAddress)
	if err := waitSuccess(f.backend, tx, err, "initializing reserve "+symbol); err != nil {
		return nil, common.Address{}, err
	}
	return aToken, aTokenAddress, nil
}
