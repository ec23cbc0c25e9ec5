package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/pokearch/registry/internal/model"
)

const (
	testOwner  = model.Principal("arch1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqsxvnwg")
	testMinter = model.Principal("arch1mntrq2tvdw0s3jn54khce6mua")
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Owner tests

func (s *StorageSuite) TestGetOwnerUnbound() {
	_, err := s.storage.GetOwner(s.ctx)
	s.ErrorIs(err, model.ErrOwnerNotBound)
}

func (s *StorageSuite) TestSetAndGetOwner() {
	s.Require().NoError(s.storage.SetOwner(s.ctx, testOwner))

	owner, err := s.storage.GetOwner(s.ctx)
	s.Require().NoError(err)
	s.Equal(testOwner, owner)
}

// Allow-list tests

func (s *StorageSuite) TestAllowanceLifecycle() {
	p := model.Principal("arch1relayerq2tvdw0s3jn54khce6")

	allowed, err := s.storage.HasAllowance(s.ctx, p)
	s.Require().NoError(err)
	s.False(allowed)

	s.Require().NoError(s.storage.AddAllowance(s.ctx, p))

	allowed, err = s.storage.HasAllowance(s.ctx, p)
	s.Require().NoError(err)
	s.True(allowed)

	s.Require().NoError(s.storage.RemoveAllowance(s.ctx, p))

	allowed, err = s.storage.HasAllowance(s.ctx, p)
	s.Require().NoError(err)
	s.False(allowed)
}

// Minter tests

func (s *StorageSuite) TestGetMinterUnbound() {
	_, err := s.storage.GetMinter(s.ctx)
	s.ErrorIs(err, model.ErrMinterNotBound)
}

func (s *StorageSuite) TestBindMinterResetsCounter() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("ash", time.Now())))
	_, _, err := s.storage.UpdatePlayerWithToken(s.ctx, "ash", func(p *model.Player, tokenID int64) error {
		return nil
	})
	s.Require().NoError(err)

	s.Require().NoError(s.storage.BindMinter(s.ctx, testMinter))

	minter, err := s.storage.GetMinter(s.ctx)
	s.Require().NoError(err)
	s.Equal(testMinter, minter)

	count, err := s.storage.GetTokenCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

// Token counter tests

func (s *StorageSuite) TestTokenCountDefaultsToZero() {
	count, err := s.storage.GetTokenCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}

// Player tests

func (s *StorageSuite) TestCreateAndGetPlayer() {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	player := model.NewPlayer("ash", created)

	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "ash")
	s.Require().NoError(err)
	s.Equal("ash", retrieved.ID)
	s.Equal(created, retrieved.CreatedAt.UTC())
	s.Len(retrieved.Pokemons, 1)
	s.Equal(model.Pokemon{TokenID: 0, Index: 0, Health: model.FullHealth}, retrieved.Pokemons[0])
}

func (s *StorageSuite) TestCreatePlayerTwiceFails() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("ash", time.Now())))

	err := s.storage.CreatePlayer(s.ctx, model.NewPlayer("ash", time.Now()))
	s.ErrorIs(err, model.ErrPlayerExists)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdatePlayer() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("ash", time.Now())))

	updated, err := s.storage.UpdatePlayer(s.ctx, "ash", func(p *model.Player) error {
		p.Berries = 3
		return nil
	})
	s.Require().NoError(err)
	s.Equal(3, updated.Berries)

	retrieved, err := s.storage.GetPlayer(s.ctx, "ash")
	s.Require().NoError(err)
	s.Equal(3, retrieved.Berries)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	_, err := s.storage.UpdatePlayer(s.ctx, "nonexistent", func(p *model.Player) error {
		return nil
	})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdatePlayerErrorAbortsWrite() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("ash", time.Now())))

	boom := errors.New("boom")
	_, err := s.storage.UpdatePlayer(s.ctx, "ash", func(p *model.Player) error {
		p.Berries = 99
		return boom
	})
	s.ErrorIs(err, boom)

	retrieved, err := s.storage.GetPlayer(s.ctx, "ash")
	s.Require().NoError(err)
	s.Equal(0, retrieved.Berries)
}

func (s *StorageSuite) TestUpdatePlayerWithTokenAllocatesSequentially() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("ash", time.Now())))

	for want := int64(1); want <= 3; want++ {
		_, tokenID, err := s.storage.UpdatePlayerWithToken(s.ctx, "ash", func(p *model.Player, tokenID int64) error {
			p.Pokemons = append(p.Pokemons, model.Pokemon{TokenID: tokenID, Index: len(p.Pokemons), Health: model.FullHealth})
			return nil
		})
		s.Require().NoError(err)
		s.Equal(want, tokenID)
	}

	count, err := s.storage.GetTokenCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), count)

	retrieved, err := s.storage.GetPlayer(s.ctx, "ash")
	s.Require().NoError(err)
	s.Len(retrieved.Pokemons, 4)
}

func (s *StorageSuite) TestUpdatePlayerWithTokenErrorConsumesNothing() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, model.NewPlayer("ash", time.Now())))

	boom := errors.New("boom")
	_, _, err := s.storage.UpdatePlayerWithToken(s.ctx, "ash", func(p *model.Player, tokenID int64) error {
		return boom
	})
	s.ErrorIs(err, boom)

	count, err := s.storage.GetTokenCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}
