// Package fixtures brings up reusable protocol environments for the test
// suites: the core system plus mock UniswapV2, Compound and Aave V2
// deployments. Bring-up is order-dependent and the first failing step aborts
// with the step name in the error.
package fixtures

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"github.com/SetProtocol/set-protocol-v2-go/deployer"
)

// waitSuccess waits for tx to be mined and fails if the transaction
// reverted. step names the bring-up step for error context.
func waitSuccess(backend deployer.Backend, tx *types.Transaction, err error, step string) error {
	if err != nil {
		return errors.Wrap(err, step)
	}
	receipt, err := bind.WaitMined(context.Background(), backend, tx)
	if err != nil {
		return errors.Wrap(err, step)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.Errorf("%v: transaction reverted (tx %v)", step, tx.Hash().Hex())
	}
	return nil
}
