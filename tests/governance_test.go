package tests

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/SetProtocol/set-protocol-v2-go/abi"
	"github.com/SetProtocol/set-protocol-v2-go/precise"
)

const governorMockIntegration = "GovernorMockAdapter"

func TestGovernance(t *testing.T) {
	suite.Run(t, new(GovernanceSuite))
}

type GovernanceSuite struct {
	TestSuite

	governance        *abi.GovernanceModule
	governanceAddress common.Address
	governor          *abi.GovernorMock
	governorAddress   common.Address
	adapter           *abi.GovernorMockAdapter
	adapterAddress    common.Address
	setToken          *abi.SetToken
	setTokenAddress   common.Address
}

var (
	_ suite.BeforeTest    = &GovernanceSuite{}
	_ suite.SetupAllSuite = &GovernanceSuite{}
)

func (s *GovernanceSuite) SetupSuite() {
	s.setup()
	s.createNode()
}

func (s *GovernanceSuite) BeforeTest(suiteName, testName string) {
	s.createSystemFixture()

	var err error
	s.governor, s.governorAddress, err = s.fixture.Deployer.Mocks.DeployGovernorMock()
	s.Require().NoError(err)
	s.logParsers[s.governorAddress] = s.governor

	s.governance, s.governanceAddress, err = s.fixture.Deployer.Modules.DeployGovernanceModule(s.fixture.ControllerAddress)
	s.Require().NoError(err)
	s.logParsers[s.governanceAddress] = s.governance
	s.requireTx(s.fixture.Controller.AddModule(s.signer, s.governanceAddress))()

	s.adapter, s.adapterAddress, err = s.fixture.Deployer.Adapters.DeployGovernorMockAdapter(s.governorAddress)
	s.Require().NoError(err)
	s.Require().NoError(s.fixture.RegisterIntegration(s.governanceAddress, governorMockIntegration, s.adapterAddress))

	s.setToken, s.setTokenAddress = s.createSetToken(
		[]common.Address{s.fixture.WETHAddress},
		[]*big.Int{precise.Ether(1)},
		[]common.Address{s.governanceAddress},
		"Governance Set", "GOV",
	)
	s.requireTx(s.governance.Initialize(s.signer, s.setTokenAddress))(
		abi.SetTokenModuleInitialized{Module: s.governanceAddress},
	)
}

func (s *GovernanceSuite) TestDelegate() {
	delegatee := s.account[2].address()

	s.requireTx(s.governance.Delegate(s.signer, s.setTokenAddress, governorMockIntegration, delegatee))(
		abi.GovernanceModuleDelegated{
			SetToken:          s.setTokenAddress,
			GovernanceAdapter: s.adapterAddress,
			Delegatee:         delegatee,
		},
	)

	// The governor sees the Set as the delegator.
	resolved, err := s.governor.DelegateeOf(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.Equal(delegatee, resolved)
}

func (s *GovernanceSuite) TestPropose() {
	proposalData := []byte("raise the parameter")

	s.requireTx(s.governance.Propose(s.signer, s.setTokenAddress, governorMockIntegration, proposalData))(
		abi.GovernanceModuleProposalCreated{
			SetToken:          s.setTokenAddress,
			GovernanceAdapter: s.adapterAddress,
			ProposalId:        bigInt(1),
		},
	)

	count, err := s.governor.ProposalCount(nil)
	s.Require().NoError(err)
	s.Equal("1", count.String())
}

func (s *GovernanceSuite) TestVote() {
	s.requireTx(s.governance.Propose(s.signer, s.setTokenAddress, governorMockIntegration, []byte("x")))()

	s.requireTx(s.governance.Vote(s.signer, s.setTokenAddress, governorMockIntegration, bigInt(1), true, nil))(
		abi.GovernanceModuleProposalVoted{
			SetToken:          s.setTokenAddress,
			GovernanceAdapter: s.adapterAddress,
			ProposalId:        bigInt(1),
			Support:           true,
		},
	)

	lastVoter, err := s.governor.LastVoter(nil)
	s.Require().NoError(err)
	s.Equal(s.setTokenAddress, lastVoter)

	lastSupport, err := s.governor.LastSupport(nil)
	s.Require().NoError(err)
	s.True(lastSupport)
}

func (s *GovernanceSuite) TestRegisterRevoke() {
	s.requireTx(s.governance.Register(s.signer, s.setTokenAddress, governorMockIntegration))(
		abi.GovernanceModuleRegistrationSubmitted{
			SetToken:          s.setTokenAddress,
			GovernanceAdapter: s.adapterAddress,
		},
	)

	registered, err := s.governor.IsRegistered(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.True(registered)

	s.requireTx(s.governance.Revoke(s.signer, s.setTokenAddress, governorMockIntegration))(
		abi.GovernanceModuleRegistrationRevoked{
			SetToken:          s.setTokenAddress,
			GovernanceAdapter: s.adapterAddress,
		},
	)

	registered, err = s.governor.IsRegistered(nil, s.setTokenAddress)
	s.Require().NoError(err)
	s.False(registered)
}

func (s *GovernanceSuite) TestUnknownIntegrationFails() {
	s.requireTxFails(s.governance.Delegate(s.signer, s.setTokenAddress, "NoSuchGovernor", s.account[2].address()))
}

func (s *GovernanceSuite) TestOnlyManager() {
	attacker := signer(s.account[3])
	s.requireTxFails(s.governance.Delegate(attacker, s.setTokenAddress, governorMockIntegration, s.account[3].address()))
	s.requireTxFails(s.governance.Propose(attacker, s.setTokenAddress, governorMockIntegration, []byte("x")))
	s.requireTxFails(s.governance.Vote(attacker, s.setTokenAddress, governorMockIntegration, bigInt(1), true, nil))
}
