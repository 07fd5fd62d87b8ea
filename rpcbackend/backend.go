// Package rpcbackend wraps an *ethclient.Client for running the test suites
// and the deploy CLI against an external Ethereum node.
//
// The wrapper adds two things over a bare client: dialing with exponential
// backoff, so suites can start before a local node finishes booting, and
// receipt polling with backoff, so WaitMined-style helpers work against
// nodes of varying block times.
package rpcbackend

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Backend is a replacement for a raw *ethclient.Client with retrying
// connection setup and receipt polling. It satisfies bind.ContractBackend
// and bind.DeployBackend.
type Backend struct {
	*ethclient.Client
	log *zap.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger makes the backend log dial retries and receipt polls.
func WithLogger(log *zap.Logger) Option {
	return func(b *Backend) { b.log = log }
}

// Dial connects to the node at url, retrying with exponential backoff for up
// to a minute before giving up.
func Dial(ctx context.Context, url string, opts ...Option) (*Backend, error) {
	b := &Backend{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}

	policy := backoff.WithContext(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Minute),
	), ctx)

	err := backoff.Retry(func() error {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			b.log.Debug("dial failed, retrying", zap.String("url", url), zap.Error(err))
			return err
		}
		// DialContext succeeds without talking to the node over HTTP, so
		// probe it before declaring victory.
		if _, err := client.ChainID(ctx); err != nil {
			client.Close()
			b.log.Debug("node not ready, retrying", zap.String("url", url), zap.Error(err))
			return err
		}
		b.Client = client
		return nil
	}, policy)
	if err != nil {
		return nil, errors.Wrapf(err, "dialing ethereum node at %v", url)
	}
	return b, nil
}

// TransactionReceipt polls for the receipt of txHash, retrying while the
// transaction is still pending. It returns once the transaction is mined or
// the context is done.
func (b *Backend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	policy := backoff.WithContext(newReceiptBackOff(), ctx)
	err := backoff.Retry(func() error {
		var err error
		receipt, err = b.Client.TransactionReceipt(ctx, txHash)
		if err != nil {
			b.log.Debug("receipt not available yet", zap.String("tx", txHash.Hex()), zap.Error(err))
		}
		return err
	}, policy)
	if err != nil {
		return nil, errors.Wrapf(err, "waiting for receipt of %v", txHash.Hex())
	}
	return receipt, nil
}

// WaitDeployed polls until the contract created by tx has code at its
// address, then returns that address.
func (b *Backend) WaitDeployed(ctx context.Context, tx *types.Transaction) (common.Address, error) {
	if tx.To() != nil {
		return common.Address{}, errors.New("transaction is not a contract creation")
	}
	receipt, err := b.TransactionReceipt(ctx, tx.Hash())
	if err != nil {
		return common.Address{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, errors.Errorf("deployment of %v reverted", tx.Hash().Hex())
	}

	policy := backoff.WithContext(newReceiptBackOff(), ctx)
	err = backoff.Retry(func() error {
		code, err := b.CodeAt(ctx, receipt.ContractAddress, nil)
		if err != nil {
			return err
		}
		if len(code) == 0 {
			return errors.New("no code at contract address yet")
		}
		return nil
	}, policy)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "waiting for code at %v", receipt.ContractAddress.Hex())
	}
	return receipt.ContractAddress, nil
}

func newReceiptBackOff() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(250*time.Millisecond),
		backoff.WithMaxInterval(5*time.Second),
		backoff.WithMaxElapsedTime(2*time.Minute),
	)
}
