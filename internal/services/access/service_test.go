package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/storage/memory"
	"github.com/pokearch/registry/internal/testutil"
)

const (
	testOwner   = model.Principal("arch1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqsxvnwg")
	testRelayer = model.Principal("arch1relayerq2tvdw0s3jn54khce6")
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

// Bootstrap tests

func (s *ServiceSuite) TestBootstrapBindsOwner() {
	s.Require().NoError(s.service.Bootstrap(s.ctx, testOwner))

	owner, err := s.service.Owner(s.ctx)
	s.Require().NoError(err)
	s.Equal(testOwner, owner)
}

func (s *ServiceSuite) TestBootstrapAllowsOwner() {
	s.Require().NoError(s.service.Bootstrap(s.ctx, testOwner))

	allowed, err := s.service.IsAllowed(s.ctx, testOwner)
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *ServiceSuite) TestBootstrapKeepsExistingOwner() {
	s.Require().NoError(s.service.Bootstrap(s.ctx, testOwner))
	s.Require().NoError(s.service.Bootstrap(s.ctx, testRelayer))

	owner, err := s.service.Owner(s.ctx)
	s.Require().NoError(err)
	s.Equal(testOwner, owner)
}

func (s *ServiceSuite) TestOwnerUnbound() {
	_, err := s.service.Owner(s.ctx)
	s.ErrorIs(err, model.ErrOwnerNotBound)
}

// Allow-list tests

func (s *ServiceSuite) TestGrantAllowsPrincipal() {
	s.Require().NoError(s.service.Grant(s.ctx, testRelayer))

	allowed, err := s.service.IsAllowed(s.ctx, testRelayer)
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *ServiceSuite) TestGrantIsIdempotent() {
	s.Require().NoError(s.service.Grant(s.ctx, testRelayer))
	s.Require().NoError(s.service.Grant(s.ctx, testRelayer))

	allowed, err := s.service.IsAllowed(s.ctx, testRelayer)
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *ServiceSuite) TestRevokeRemovesAllowance() {
	s.Require().NoError(s.service.Grant(s.ctx, testRelayer))
	s.Require().NoError(s.service.Revoke(s.ctx, testRelayer))

	allowed, err := s.service.IsAllowed(s.ctx, testRelayer)
	s.Require().NoError(err)
	s.False(allowed)
}

func (s *ServiceSuite) TestRevokeAbsentPrincipalIsNoError() {
	s.NoError(s.service.Revoke(s.ctx, testRelayer))
}

func (s *ServiceSuite) TestIsAllowedDefaultsToFalse() {
	allowed, err := s.service.IsAllowed(s.ctx, testRelayer)
	s.Require().NoError(err)
	s.False(allowed)
}
