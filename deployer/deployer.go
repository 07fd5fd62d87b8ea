// Package deployer deploys the protocol contracts and returns typed handles
// to them. It is shared by the test suites, the fixtures and the deploy CLI.
package deployer

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Backend is the chain connection the deploy helpers need. Both the
// simulated backend wrapper used in tests and rpcbackend.Backend satisfy it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// DeployHelper aggregates the per-concern deployers. All of them share the
// same transactor and backend.
type DeployHelper struct {
	Core     CoreDeployer
	Modules  ModuleDeployer
	Mocks    MockDeployer
	Adapters AdapterDeployer
	External ExternalDeployer
}

// New returns a DeployHelper whose deployments are signed by opts and sent
// through backend.
func New(opts *bind.TransactOpts, backend Backend) *DeployHelper {
	d := deps{opts: opts, backend: backend}
	return &DeployHelper{
		Core:     CoreDeployer{d},
		Modules:  ModuleDeployer{d},
		Mocks:    MockDeployer{d},
		Adapters: AdapterDeployer{d},
		External: ExternalDeployer{d},
	}
}

type deps struct {
	opts    *bind.TransactOpts
	backend Backend
}

// confirm waits for a deployment transaction to be mined and fails if it
// reverted. name identifies the contract in error messages.
func (d deps) confirm(tx *types.Transaction, err error, name string) error {
	if err != nil {
		return errors.Wrapf(err, "deploying %v", name)
	}
	receipt, err := bind.WaitMined(context.Background(), d.backend, tx)
	if err != nil {
		return errors.Wrapf(err, "waiting for %v deployment", name)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.Errorf("%v deployment reverted (tx %v)", name, tx.Hash().Hex())
	}
	return nil
}
