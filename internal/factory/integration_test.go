package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pokearch/registry/internal/model"
)

const (
	testMinter = model.Principal("arch1mntrq2tvdw0s3jn54khce6mua")
	testSender = model.Principal("arch1sender0q2tvdw0s3jn54khce6")
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: the whole registry flow from bootstrap to a healed roster
func (s *IntegrationSuite) TestCompleteRegistryFlow() {
	// Bootstrap bound the owner and auto-allowed it
	owner, err := s.app.AccessService.Owner(s.ctx)
	s.Require().NoError(err)
	s.Equal(TestOwner, owner)

	allowed, err := s.app.AccessService.IsAllowed(s.ctx, TestOwner)
	s.Require().NoError(err)
	s.True(allowed)

	// Step 1: the owner binds the minter contract
	mint, err := s.app.RegistryService.BindMinter(s.ctx, TestOwner, testMinter, "ipfs://minter")
	s.Require().NoError(err)
	s.Equal(int64(0), mint.TokenID)
	s.Equal(TestOwner, mint.Owner)

	// Step 2: a player registers and gets the starter
	player, err := s.app.RegistryService.Register(s.ctx, "ash")
	s.Require().NoError(err)
	s.Require().Len(player.Pokemons, 1)
	s.Equal(s.app.MockClock.Now(), player.CreatedAt)

	// Step 3: catch a pokemon, wounding the starter in the process
	s.app.MockClock.Advance(time.Minute)
	player, mint, err = s.app.RegistryService.CatchPokemon(s.ctx, testSender, "ash", "ipfs://1", 32, 0)
	s.Require().NoError(err)
	s.Require().Len(player.Pokemons, 2)
	s.Equal(32, player.Pokemons[0].Health)
	s.Equal(int64(1), mint.TokenID)
	s.Equal(testSender, mint.Owner)
	s.Equal(testMinter, mint.Minter)

	count, err := s.app.RegistryService.TokenCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	// Step 4: heal the starter back to full
	player, err = s.app.RegistryService.RestoreHealth(s.ctx, "ash", 0)
	s.Require().NoError(err)
	s.Equal(model.FullHealth, player.Pokemons[0].Health)

	// Step 5: the sender's grants validate once allowed
	grant := &model.GrantRequest{
		Msgs: []model.GrantMsg{{
			Sender:  testSender,
			TypeURL: "/cosmwasm.wasm.v1.MsgExecuteContract",
		}},
	}
	err = s.app.GrantsService.Validate(s.ctx, grant)
	s.Require().ErrorIs(err, model.ErrUnauthorized)

	s.Require().NoError(s.app.AccessService.Grant(s.ctx, testSender))
	s.Require().NoError(s.app.GrantsService.Validate(s.ctx, grant))
}

func (s *IntegrationSuite) TestNewRequiresOwner() {
	_, err := New(Config{})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewDefaultsSelfToOwner() {
	app, err := New(Config{Owner: TestOwner})
	s.Require().NoError(err)

	mint, err := app.RegistryService.BindMinter(s.ctx, TestOwner, testMinter, "")
	s.Require().NoError(err)
	s.Equal(TestOwner, mint.Owner)
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorageType() {
	_, err := New(Config{Owner: TestOwner, StorageType: "cassette"})
	s.Error(err)
}
