//go:build ignore

// genbindings regenerates the checked-in contract bindings under abi/ from
// Hardhat build artifacts.
//
// Usage:
//
//	go run genbindings.go <artifact dir>
//
// The artifact directory is the contract repo's artifacts/ output, produced
// by `yarn compile`. For every known contract this tool writes two files:
// abi/<Name>.go with the abigen bindings, and abi/<Name>Events.go with a
// ParseLog dispatcher and a String() method per event, which the test
// suites use for event assertions.
package main

import (
	"bytes"
	"encoding/json"
	"go/format"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// contracts lists every binding the harness depends on. Artifact lookup is
// by contract name, wherever the artifact sits under the artifact dir.
var contracts = []string{
	"Controller",
	"IntegrationRegistry",
	"SetTokenCreator",
	"SetToken",
	"PriceOracle",
	"SetValuer",
	"BasicIssuanceModule",
	"NAVIssuanceModule",
	"StreamingFeeModule",
	"AirdropModule",
	"TradeModule",
	"WrapModule",
	"GovernanceModule",
	"CompoundLeverageModule",
	"StandardTokenMock",
	"WETH9",
	"OracleMock",
	"GovernorMock",
	"UniswapV2ExchangeAdapter",
	"CompoundWrapAdapter",
	"GovernorMockAdapter",
	"UniswapV2Factory",
	"UniswapV2Router02",
	"UniswapV2Pair",
	"Comptroller",
	"CErc20",
	"CompoundPriceOracleMock",
	"LendingPoolAddressesProvider",
	"AaveLendingPool",
	"AaveAToken",
}

// artifact is the subset of a Hardhat build artifact we consume.
type artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("genbindings: requires the artifact directory as its only argument")
	}
	artifactDir := os.Args[1]

	artifacts, err := loadArtifacts(artifactDir)
	check(err, "loading artifacts from "+artifactDir)

	check(os.MkdirAll("abi", 0755), "creating abi directory")

	for _, name := range contracts {
		a, ok := artifacts[name]
		if !ok {
			log.Fatalf("no artifact for %v under %v", name, artifactDir)
		}

		code, err := bind.Bind(
			[]string{name},
			[]string{string(a.ABI)},
			[]string{strings.TrimPrefix(a.Bytecode, "0x")},
			nil,
			"abi",
			bind.LangGo,
			nil, nil,
		)
		check(err, "generating bindings for "+name)
		check(os.WriteFile(filepath.Join("abi", name+".go"), []byte(code), 0644), "writing bindings for "+name)

		check(writeEventsFile(name, a.ABI), "writing event bindings for "+name)
		log.Printf("%v: wrote abi/%v.go and abi/%vEvents.go", name, name, name)
	}
}

// loadArtifacts walks dir and indexes every .json artifact by contract
// name. Debug artifacts (*.dbg.json) are skipped.
func loadArtifacts(dir string) (map[string]artifact, error) {
	artifacts := make(map[string]artifact)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var a artifact
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil // not a build artifact
		}
		if a.ContractName == "" || len(a.ABI) == 0 {
			return nil
		}
		artifacts[a.ContractName] = a
		return nil
	})
	return artifacts, err
}

// writeEventsFile generates abi/<Name>Events.go: a ParseLog dispatcher on
// the Filterer plus a String() method per event, used by the suites to
// assert emitted events by value.
func writeEventsFile(contractName string, rawABI json.RawMessage) error {
	parsedABI, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	err = template.Must(template.New("").Funcs(
		template.FuncMap{
			"flags": func(inputs abi.Arguments) string {
				result := make([]string, len(inputs))
				for i := range result {
					switch inputs[i].Type.String() {
					case "string":
						result[i] = "%q"
					default:
						result[i] = "%v"
					}
				}
				return strings.Join(result, ", ")
			},
			"format": func(inputs abi.Arguments) string {
				result := make([]string, len(inputs))
				for i := range result {
					arg := "e." + abi.ToCamelCase(inputs[i].Name)
					switch inputs[i].Type.String() {
					case "address":
						arg = arg + ".Hex()"
					}
					result[i] = arg
				}
				return strings.Join(result, ",")
			},
		},
	).Parse(`
        // This file is auto-generated. Do not edit.

        package abi

        import (
            "fmt"

            "github.com/ethereum/go-ethereum/core/types"
        )

        {{$contract := .Contract}}

        func (c *{{$contract}}Filterer) ParseLog(log *types.Log) (fmt.Stringer, error) {
            var event fmt.Stringer
            var eventName string
            switch log.Topics[0].Hex() {
            {{- range .Events}}
            case {{with .ID}}{{printf "%q" .Hex}}{{end}}: // {{.Name}}
                event = new({{$contract}}{{.Name}})
                eventName = "{{.Name}}"
            {{- end}}
            default:
                return nil, fmt.Errorf("no such event hash for {{$contract}}: %v", log.Topics[0])
            }

            err := c.contract.UnpackLog(event, eventName, *log)
            if err != nil {
                return nil, err
            }
            return event, nil
        }

        {{range .Events}}
        func (e {{$contract}}{{.Name}}) String() string {
            return fmt.Sprintf("{{$contract}}.{{.Name}}({{flags .Inputs}})",{{format .Inputs}})
        }
        {{end}}
    `)).Execute(buf, map[string]interface{}{
		"Contract": contractName,
		"Events":   parsedABI.Events,
	})
	if err != nil {
		return err
	}

	eventCode, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join("abi", contractName+"Events.go"), eventCode, 0644)
}

func check(err error, msg string) {
	if err != nil {
		log.Fatal(msg, ": ", err)
	}
}
