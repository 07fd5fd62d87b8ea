// Command setdeploy deploys the Set Protocol core system against an RPC
// node and records the resulting addresses in a TOML manifest.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/deployer"
	"github.com/SetProtocol/set-protocol-v2-go/fixtures"
	"github.com/SetProtocol/set-protocol-v2-go/rpcbackend"
)

type config struct {
	NodeURL      string `env:"SET_NODE_URL"`
	DeployerKey  string `env:"SET_DEPLOYER_KEY"`
	FeeRecipient string `env:"SET_FEE_RECIPIENT"`
	ManifestPath string `env:"SET_MANIFEST" envDefault:"setprotocol.toml"`
}

// manifest is the TOML document written after a deploy and read by status.
type manifest struct {
	ChainID string `toml:"chain_id"`

	Core struct {
		Controller          string `toml:"controller"`
		IntegrationRegistry string `toml:"integration_registry"`
		PriceOracle         string `toml:"price_oracle"`
		SetValuer           string `toml:"set_valuer"`
		SetTokenCreator     string `toml:"set_token_creator"`
	} `toml:"core"`

	Modules struct {
		BasicIssuance string `toml:"basic_issuance"`
		NAVIssuance   string `toml:"nav_issuance"`
		StreamingFee  string `toml:"streaming_fee"`
		Airdrop       string `toml:"airdrop"`
		Trade         string `toml:"trade"`
		Governance    string `toml:"governance"`
	} `toml:"modules"`
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal("parsing environment", zap.Error(err))
	}

	app := cli.NewApp()
	app.Name = "setdeploy"
	app.Usage = "deploy and inspect the Set Protocol core system"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "node",
			Usage:       "RPC node URL",
			Value:       cfg.NodeURL,
			Destination: &cfg.NodeURL,
		},
		cli.StringFlag{
			Name:        "key",
			Usage:       "hex private key of the deployer account",
			Value:       cfg.DeployerKey,
			Destination: &cfg.DeployerKey,
		},
		cli.StringFlag{
			Name:        "manifest",
			Usage:       "path of the TOML address manifest",
			Value:       cfg.ManifestPath,
			Destination: &cfg.ManifestPath,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "deploy",
			Usage: "deploy the core contracts and the standard module set",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "fee-recipient",
					Usage:       "protocol fee recipient (defaults to the deployer)",
					Value:       cfg.FeeRecipient,
					Destination: &cfg.FeeRecipient,
				},
			},
			Action: func(c *cli.Context) error {
				return deploy(log, &cfg)
			},
		},
		{
			Name:  "status",
			Usage: "read a manifest and print the deployed system's wiring",
			Action: func(c *cli.Context) error {
				return status(log, &cfg)
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal("command failed", zap.Error(err))
	}
}

func deploy(log *zap.Logger, cfg *config) error {
	if cfg.NodeURL == "" {
		return errors.New("no node URL: set --node or SET_NODE_URL")
	}
	if cfg.DeployerKey == "" {
		return errors.New("no deployer key: set --key or SET_DEPLOYER_KEY")
	}

	ctx := context.Background()
	node, err := rpcbackend.Dial(ctx, cfg.NodeURL, rpcbackend.WithLogger(log))
	if err != nil {
		return err
	}

	key, err := crypto.HexToECDSA(cfg.DeployerKey)
	if err != nil {
		return errors.Wrap(err, "parsing deployer key")
	}
	chainID, err := node.ChainID(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching chain id")
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return errors.Wrap(err, "building transactor")
	}

	feeRecipient := opts.From
	if cfg.FeeRecipient != "" {
		if !common.IsHexAddress(cfg.FeeRecipient) {
			return errors.Errorf("invalid fee recipient %q", cfg.FeeRecipient)
		}
		feeRecipient = common.HexToAddress(cfg.FeeRecipient)
	}

	log.Info("deploying core system",
		zap.String("node", cfg.NodeURL),
		zap.String("deployer", opts.From.Hex()),
		zap.String("chainID", chainID.String()),
	)

	helper := deployer.New(opts, node)
	var m manifest
	m.ChainID = chainID.String()

	controller, controllerAddress, err := helper.Core.DeployController(feeRecipient)
	if err != nil {
		return err
	}
	m.Core.Controller = controllerAddress.Hex()
	log.Info("deployed", zap.String("contract", "Controller"), zap.String("address", controllerAddress.Hex()))

	_, registryAddress, err := helper.Core.DeployIntegrationRegistry(controllerAddress)
	if err != nil {
		return err
	}
	m.Core.IntegrationRegistry = registryAddress.Hex()
	log.Info("deployed", zap.String("contract", "IntegrationRegistry"), zap.String("address", registryAddress.Hex()))

	_, creatorAddress, err := helper.Core.DeploySetTokenCreator(controllerAddress)
	if err != nil {
		return err
	}
	m.Core.SetTokenCreator = creatorAddress.Hex()
	log.Info("deployed", zap.String("contract", "SetTokenCreator"), zap.String("address", creatorAddress.Hex()))

	// An empty oracle: pairs are added operationally once asset oracles
	// exist on the target chain.
	_, oracleAddress, err := helper.Core.DeployPriceOracle(
		controllerAddress, common.Address{}, nil, nil, nil, nil,
	)
	if err != nil {
		return err
	}
	m.Core.PriceOracle = oracleAddress.Hex()
	log.Info("deployed", zap.String("contract", "PriceOracle"), zap.String("address", oracleAddress.Hex()))

	_, valuerAddress, err := helper.Core.DeploySetValuer(controllerAddress)
	if err != nil {
		return err
	}
	m.Core.SetValuer = valuerAddress.Hex()
	log.Info("deployed", zap.String("contract", "SetValuer"), zap.String("address", valuerAddress.Hex()))

	moduleAddresses := make([]common.Address, 0, 6)
	deployModule := func(name string, deployFn func() (common.Address, error), dst *string) error {
		address, err := deployFn()
		if err != nil {
			return err
		}
		*dst = address.Hex()
		moduleAddresses = append(moduleAddresses, address)
		log.Info("deployed", zap.String("contract", name), zap.String("address", address.Hex()))
		return nil
	}

	weth, err := wethAddressFor(chainID.String())
	if err != nil {
		return err
	}

	if err := deployModule("BasicIssuanceModule", func() (common.Address, error) {
		_, address, err := helper.Modules.DeployBasicIssuanceModule(controllerAddress)
		return address, err
	}, &m.Modules.BasicIssuance); err != nil {
		return err
	}
	if err := deployModule("NAVIssuanceModule", func() (common.Address, error) {
		_, address, err := helper.Modules.DeployNAVIssuanceModule(controllerAddress, weth)
		return address, err
	}, &m.Modules.NAVIssuance); err != nil {
		return err
	}
	if err := deployModule("StreamingFeeModule", func() (common.Address, error) {
		_, address, err := helper.Modules.DeployStreamingFeeModule(controllerAddress)
		return address, err
	}, &m.Modules.StreamingFee); err != nil {
		return err
	}
	if err := deployModule("AirdropModule", func() (common.Address, error) {
		_, address, err := helper.Modules.DeployAirdropModule(controllerAddress)
		return address, err
	}, &m.Modules.Airdrop); err != nil {
		return err
	}
	if err := deployModule("TradeModule", func() (common.Address, error) {
		_, address, err := helper.Modules.DeployTradeModule(controllerAddress)
		return address, err
	}, &m.Modules.Trade); err != nil {
		return err
	}
	if err := deployModule("GovernanceModule", func() (common.Address, error) {
		_, address, err := helper.Modules.DeployGovernanceModule(controllerAddress)
		return address, err
	}, &m.Modules.Governance); err != nil {
		return err
	}

	// Initialize the controller with the factory, modules, and resources.
	tx, err := controller.Initialize(
		opts,
		[]common.Address{creatorAddress},
		moduleAddresses,
		[]common.Address{registryAddress, oracleAddress, valuerAddress},
		[]*big.Int{
			big.NewInt(fixtures.IntegrationRegistryResourceID),
			big.NewInt(fixtures.PriceOracleResourceID),
			big.NewInt(fixtures.SetValuerResourceID),
		},
	)
	if err != nil {
		return errors.Wrap(err, "initializing controller")
	}
	receipt, err := bind.WaitMined(ctx, node, tx)
	if err != nil {
		return errors.Wrap(err, "waiting for controller initialization")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return errors.New("controller initialization reverted")
	}
	log.Info("controller initialized", zap.String("tx", tx.Hash().Hex()))

	if err := writeManifest(cfg.ManifestPath, &m); err != nil {
		return err
	}
	log.Info("wrote manifest", zap.String("path", cfg.ManifestPath))
	return nil
}

func status(log *zap.Logger, cfg *config) error {
	if cfg.NodeURL == "" {
		return errors.New("no node URL: set --node or SET_NODE_URL")
	}

	var m manifest
	if _, err := toml.DecodeFile(cfg.ManifestPath, &m); err != nil {
		return errors.Wrapf(err, "reading manifest %v", cfg.ManifestPath)
	}

	ctx := context.Background()
	node, err := rpcbackend.Dial(ctx, cfg.NodeURL, rpcbackend.WithLogger(log))
	if err != nil {
		return err
	}

	controller, err := abi.NewController(common.HexToAddress(m.Core.Controller), node)
	if err != nil {
		return errors.Wrap(err, "attaching controller")
	}

	initialized, err := controller.IsInitialized(nil)
	if err != nil {
		return errors.Wrap(err, "querying controller")
	}
	feeRecipient, err := controller.FeeRecipient(nil)
	if err != nil {
		return errors.Wrap(err, "querying fee recipient")
	}
	modules, err := controller.GetModules(nil)
	if err != nil {
		return errors.Wrap(err, "querying modules")
	}
	factories, err := controller.GetFactories(nil)
	if err != nil {
		return errors.Wrap(err, "querying factories")
	}
	sets, err := controller.GetSets(nil)
	if err != nil {
		return errors.Wrap(err, "querying sets")
	}

	fmt.Printf("controller:     %v\n", m.Core.Controller)
	fmt.Printf("initialized:    %v\n", initialized)
	fmt.Printf("fee recipient:  %v\n", feeRecipient.Hex())
	fmt.Printf("factories:      %v\n", len(factories))
	for _, factory := range factories {
		fmt.Printf("  %v\n", factory.Hex())
	}
	fmt.Printf("modules:        %v\n", len(modules))
	for _, module := range modules {
		fmt.Printf("  %v\n", module.Hex())
	}
	fmt.Printf("sets:           %v\n", len(sets))
	for _, set := range sets {
		fmt.Printf("  %v\n", set.Hex())
	}
	return nil
}

func writeManifest(path string, m *manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating manifest %v", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(m); err != nil {
		return errors.Wrap(err, "encoding manifest")
	}
	return nil
}

// wethAddressFor resolves the canonical WETH for chains the tool knows
// about. Other chains must wrap a native asset themselves first.
func wethAddressFor(chainID string) (common.Address, error) {
	switch chainID {
	case "1":
		return common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), nil
	case "42":
		return common.HexToAddress("0xd0A1E359811322d97991E03f863a0C30C2cF029C"), nil
	case "1337":
		// Local development chains deploy their own WETH9.
		return common.Address{}, nil
	default:
		return common.Address{}, errors.Errorf("no known WETH for chain %v", chainID)
	}
}
