package tests

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/fixtures"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
	"github.com/SetProtocol/set-protocol-v2-go/rpcbackend"
)

// setNodeURL selects an external node for the suites. When unset, tests run
// against an in-process simulated backend, which is much faster.
var setNodeURL = os.Getenv("SET_NODE_URL")

// chainID must match the simulated backend's chain configuration.
var chainID = big.NewInt(1337)

type logParser interface {
	ParseLog(*types.Log) (fmt.Stringer, error)
}

// erc20 is the read surface shared by every generated token binding.
type erc20 interface {
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)
	TotalSupply(opts *bind.CallOpts) (*big.Int, error)
}

// TestSuite holds functionality common to all of the module suites.
//
// It knows how to create a connection to an Ethereum node, it holds a list
// of accounts to use with that node, and it implements common assertions.
type TestSuite struct {
	suite.Suite

	account []account
	signer  *bind.TransactOpts
	node    interface {
		bind.ContractBackend
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	}
	fixture *fixtures.SystemFixture

	logParsers map[common.Address]logParser
}

// requireTx requires that a transaction is successfully mined and does not
// revert. It also takes an extra error argument, and checks that the error
// is nil. This signature allows the function to directly wrap our abigen'd
// mutator calls.
//
// requireTx returns a closure that asserts that each of the given events was
// emitted during the transaction, in order, possibly interleaved with other
// events. Use requireTxWithStrictEvents to assert the exact event list.
func (s *TestSuite) requireTx(tx *types.Transaction, err error) func(assertEvent ...fmt.Stringer) {
	receipt := s._requireTxStatus(tx, err, types.ReceiptStatusSuccessful)

	return func(assertEvent ...fmt.Stringer) {
		got := s.parsedEvents(receipt)
		i := 0
		for _, want := range assertEvent {
			found := false
			for ; i < len(got); i++ {
				if got[i] == want.String() {
					found = true
					i++
					break
				}
			}
			s.True(found, "expected event not emitted: "+want.String())
		}
	}
}

// requireTxWithStrictEvents is like requireTx, but the returned closure
// asserts that the transaction emitted exactly the given events, in order.
func (s *TestSuite) requireTxWithStrictEvents(tx *types.Transaction, err error) func(assertEvent ...fmt.Stringer) {
	receipt := s._requireTxStatus(tx, err, types.ReceiptStatusSuccessful)

	return func(assertEvent ...fmt.Stringer) {
		if s.Equal(len(assertEvent), len(receipt.Logs), "did not get the expected number of events") {
			got := s.parsedEvents(receipt)
			for i, want := range assertEvent {
				s.Equal(want.String(), got[i])
			}
		}
	}
}

// requireTxFails is like requireTx, but it requires that the transaction
// either reverts or is not successfully made in the first place due to gas
// estimation failing.
func (s *TestSuite) requireTxFails(tx *types.Transaction, err error) {
	if err != nil {
		// Gas estimation runs the transaction and surfaces the revert
		// before anything is sent.
		return
	}

	receipt := s._requireTxStatus(tx, err, types.ReceiptStatusFailed)
	s.Equal(0, len(receipt.Logs), "zero logs should be generated for a failed transaction")
}

func (s *TestSuite) _requireTxStatus(tx *types.Transaction, err error, status uint64) *types.Receipt {
	s.Require().NoError(err)
	s.Require().NotNil(tx)
	receipt, err := bind.WaitMined(context.Background(), s.node, tx)
	s.Require().NoError(err)
	s.Require().Equal(status, receipt.Status)
	return receipt
}

// parsedEvents renders every log in the receipt through the registered
// parsers. Logs from contracts without a registered parser fail the test:
// they mean the test forgot to register a deployment.
func (s *TestSuite) parsedEvents(receipt *types.Receipt) []string {
	events := make([]string, 0, len(receipt.Logs))
	for i, log := range receipt.Logs {
		parser := s.logParsers[log.Address]
		if !s.NotNil(parser, "got an event from an unexpected contract address: "+log.Address.Hex()) {
			continue
		}
		event, err := parser.ParseLog(log)
		if s.NoErrorf(err, "parsing event %v", i) {
			events = append(events, event.String())
		}
	}
	return events
}

// assertBalance asserts that token balance of `address` is `amount`.
func (s *TestSuite) assertBalance(token erc20, address common.Address, amount *big.Int) {
	balance, err := token.BalanceOf(nil, address)
	s.NoError(err)
	s.Equal(amount.String(), balance.String()) // assert.Equal can mis-compare big.Ints, so compare strings instead
}

// assertTotalSupply asserts that the total supply of token is `amount`.
func (s *TestSuite) assertTotalSupply(token erc20, amount *big.Int) {
	totalSupply, err := token.TotalSupply(nil)
	s.NoError(err)
	s.Equal(amount.String(), totalSupply.String())
}

// assertDefaultPositionUnit asserts the default position real unit that
// setToken reports for component.
func (s *TestSuite) assertDefaultPositionUnit(setToken *abi.SetToken, component common.Address, unit *big.Int) {
	got, err := setToken.GetDefaultPositionRealUnit(nil, component)
	s.NoError(err)
	s.Equal(unit.String(), got.String())
}

// assertExternalPositionUnit asserts the external position real unit that
// setToken reports for component under module.
func (s *TestSuite) assertExternalPositionUnit(setToken *abi.SetToken, component, module common.Address, unit *big.Int) {
	got, err := setToken.GetExternalPositionRealUnit(nil, component, module)
	s.NoError(err)
	s.Equal(unit.String(), got.String())
}

// createSystemFixture deploys a fresh core system and registers its
// contracts with the suite's log parsers. Suites call this from BeforeTest
// so every test starts from clean chain state.
func (s *TestSuite) createSystemFixture() {
	s.fixture = fixtures.NewSystemFixture(s.signer, s.node)
	s.Require().NoError(s.fixture.Setup())

	s.logParsers = map[common.Address]logParser{
		s.fixture.ControllerAddress:          s.fixture.Controller,
		s.fixture.IntegrationRegistryAddress: s.fixture.IntegrationRegistry,
		s.fixture.PriceOracleAddress:         s.fixture.PriceOracle,
		s.fixture.CreatorAddress:             s.fixture.Creator,
		s.fixture.WETHAddress:                s.fixture.WETH,
		s.fixture.USDCAddress:                s.fixture.USDC,
		s.fixture.DAIAddress:                 s.fixture.DAI,
		s.fixture.WBTCAddress:                s.fixture.WBTC,
	}
}

// createSetToken creates a Set through the fixture's factory with
// s.account[0] as manager and registers it with the log parsers.
func (s *TestSuite) createSetToken(
	components []common.Address,
	units []*big.Int,
	modules []common.Address,
	name string,
	symbol string,
) (*abi.SetToken, common.Address) {
	setToken, setTokenAddress, err := s.fixture.CreateSetToken(
		s.signer, components, units, modules, s.account[0].address(), name, symbol,
	)
	s.Require().NoError(err)
	s.logParsers[setTokenAddress] = setToken
	return setToken, setTokenAddress
}

// approveToken lets spender move amount of the owner's tokens. The token
// must be one of the generated bindings exposing Approve.
func (s *TestSuite) approveToken(
	approve func(*bind.TransactOpts, common.Address, *big.Int) (*types.Transaction, error),
	opts *bind.TransactOpts,
	spender common.Address,
	amount *big.Int,
) {
	s.requireTx(approve(opts, spender, amount))()
}

// createNode connects the suite to a chain: an external node when
// SET_NODE_URL is set, the in-process simulated backend otherwise.
func (s *TestSuite) createNode() {
	if setNodeURL != "" {
		s.createRPCNode()
	} else {
		s.createFastNode()
	}
}

// createRPCNode creates a connection to the node at $SET_NODE_URL. Runs are
// slower than the in-process node but exercise a real RPC stack.
func (s *TestSuite) createRPCNode() {
	node, err := rpcbackend.Dial(context.Background(), setNodeURL)
	s.Require().NoError(err)
	s.node = node
}

// createFastNode creates a fast in-process Ethereum node. It is then
// available as `s.node`.
func (s *TestSuite) createFastNode() {
	genesisAlloc := core.GenesisAlloc{}
	for _, account := range s.account {
		genesisAlloc[account.address()] = core.GenesisAccount{
			// Enough for thousands of deployments plus the WETH the
			// fixtures deposit.
			Balance: precise.Ether(1_000_000),
		}
	}
	s.node = backend{
		backends.NewSimulatedBackend(
			genesisAlloc,
			// Block gas limit. Each transaction gets its own block because
			// of auto-commit, so this only has to cover the largest single
			// deployment.
			12e6,
		),
	}
}

// setup sets up the TestSuite. It must be called before using s.account or
// s.signer.
func (s *TestSuite) setup() {
	// The first few keys from the following well-known mnemonic used by 0x:
	//	concert load couple harbor equip island argue ramp clarify fence smart topic
	keys := []string{
		"f2f48ee19680706196e2e339e5da3491186e0c4c5030670656b0e0164837257d",
		"5d862464fe9303452126c8bc94274b8c5f9874cbd219789b3eb2128075a76f72",
		"df02719c4df8b9b8ac7f551fcb5d9ef48fa27eef7a66453879f4d8fdc6e78fb1",
		"ff12e391b79415e941a94de3bf3a9aee577aed0731e297d5cfa0b8a1e02fa1d0",
		"752dd9cf65e68cfaba7d60225cbdbc1f4729dd5e5507def72815ed0d8abc6249",
		"efb595a0178eb79a8df953f87c5148402a224cdf725e88c0146727c6aceadccd",
	}
	s.account = make([]account, len(keys))
	for i, key := range keys {
		b, err := hex.DecodeString(key)
		s.Require().NoError(err)
		s.account[i].key, err = crypto.ToECDSA(b)
		s.Require().NoError(err)
	}
	s.signer = signer(s.account[0])
}

// backend is a wrapper around *backends.SimulatedBackend.
//
// *backends.SimulatedBackend requires blocks to be mined manually -- they
// are not automatically mined on every transaction. We want them to be
// automatically mined on every transaction, though, so we use this wrapper
// to do so.
type backend struct {
	*backends.SimulatedBackend
}

// SendTransaction overrides the function by the same name in
// *backends.SimulatedBackend, adding auto-mining for each transaction.
func (b backend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	defer b.Commit()
	return b.SimulatedBackend.SendTransaction(ctx, tx)
}

// AdjustTime overrides the function by the same name in
// *backends.SimulatedBackend, adding auto-committing.
func (b backend) AdjustTime(delta time.Duration) error {
	defer b.Commit()
	return b.SimulatedBackend.AdjustTime(delta)
}

// advanceTime moves the chain clock forward. Only supported on the
// in-process node.
func (s *TestSuite) advanceTime(delta time.Duration) {
	node, ok := s.node.(backend)
	if !ok {
		s.T().Skip("advancing time requires the in-process node")
	}
	s.Require().NoError(node.AdjustTime(delta))
}

// signer returns a *bind.TransactOpts that uses a's private key to sign
// transactions.
func signer(a account) *bind.TransactOpts {
	opts, err := bind.NewKeyedTransactorWithChainID(a.key, chainID)
	if err != nil {
		panic(err)
	}
	return opts
}

// account is a utility type to make it easier to convert from a private key
// to an address.
type account struct {
	key *ecdsa.PrivateKey
}

// address returns the address corresponding to `a.key`.
func (a account) address() common.Address {
	return crypto.PubkeyToAddress(a.key.PublicKey)
}

func bigInt(n uint32) *big.Int {
	return big.NewInt(int64(n))
}

func zeroAddress() common.Address {
	return common.Address{}
}
