package fixtures

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/deployer"
)

// UniswapFixture deploys a UniswapV2 factory and router for the trade
// suites.
type UniswapFixture struct {
	Owner *bind.TransactOpts

	Factory        *abi.UniswapV2Factory
	FactoryAddress common.Address
	Router         *abi.UniswapV2Router02
	RouterAddress  common.Address
	WETHAddress    common.Address

	helper  *deployer.DeployHelper
	backend deployer.Backend
}

// NewUniswapFixture prepares the fixture; weth is the WETH the router pairs
// against, usually SystemFixture.WETHAddress.
func NewUniswapFixture(owner *bind.TransactOpts, backend deployer.Backend, weth common.Address) *UniswapFixture {
	return &UniswapFixture{
		Owner:       owner,
		WETHAddress: weth,
		helper:      deployer.New(owner, backend),
		backend:     backend,
	}
}

// Setup deploys the factory and router.
func (f *UniswapFixture) Setup() error {
	var err error

	f.Factory, f.FactoryAddress, err = f.helper.External.DeployUniswapV2Factory(f.Owner.From)
	if err != nil {
		return err
	}
	f.Router, f.RouterAddress, err = f.helper.External.DeployUniswapV2Router(f.FactoryAddress, f.WETHAddress)
	return err
}

// CreatePool creates the pair for tokenA/tokenB and returns a handle to it.
func (f *UniswapFixture) CreatePool(tokenA, tokenB common.Address) (*abi.UniswapV2Pair, common.Address, error) {
	tx, err := f.Factory.CreatePair(f.Owner, tokenA, tokenB)
	if err := waitSuccess(f.backend, tx, err, "creating pair"); err != nil {
		return nil, common.Address{}, err
	}

	pairAddress, err := f.Factory.GetPair(nil, tokenA, tokenB)
	if err != nil {
		return nil, common.Address{}, errors.Wrap(err, "looking up pair")
	}
	pair, err := f.helper.External.GetUniswapV2Pair(pairAddress)
	if err != nil {
		return nil, common.Address{}, err
	}
	return pair, pairAddress, nil
}

// AddLiquidity supplies amountA of tokenA and amountB of tokenB from the
// opts signer, who must have approved the router first.
func (f *UniswapFixture) AddLiquidity(
	opts *bind.TransactOpts,
	tokenA, tokenB common.Address,
	amountA, amountB *big.Int,
	to common.Address,
) error {
	deadline := big.NewInt(time.Now().Add(time.Hour).Unix())
	tx, err := f.Router.AddLiquidity(
		opts, tokenA, tokenB, amountA, amountB,
		new(big.Int), new(big.Int), to, deadline,
	)
	return waitSuccess(f.backend, tx, err, "adding liquidity")
}
