package masters

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	ctx        context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestAdd() {
	s.mock.ExpectSAdd("masters", "user-1").SetVal(1)

	added, err := s.repo.Add(s.ctx, "user-1")
	s.NoError(err)
	s.True(added)
}

func (s *RedisRepoTestSuite) TestAddAlreadyPresent() {
	s.mock.ExpectSAdd("masters", "user-1").SetVal(0)

	added, err := s.repo.Add(s.ctx, "user-1")
	s.NoError(err)
	s.False(added)
}

func (s *RedisRepoTestSuite) TestAddDependencyError() {
	s.mock.ExpectSAdd("masters", "user-1").SetErr(errors.New("redis error"))

	_, err := s.repo.Add(s.ctx, "user-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestRemove() {
	s.mock.ExpectSRem("masters", "user-1").SetVal(1)

	removed, err := s.repo.Remove(s.ctx, "user-1")
	s.NoError(err)
	s.True(removed)
}

func (s *RedisRepoTestSuite) TestRemoveAbsent() {
	s.mock.ExpectSRem("masters", "user-1").SetVal(0)

	removed, err := s.repo.Remove(s.ctx, "user-1")
	s.NoError(err)
	s.False(removed)
}

func (s *RedisRepoTestSuite) TestContains() {
	s.mock.ExpectSIsMember("masters", "user-1").SetVal(true)

	member, err := s.repo.Contains(s.ctx, "user-1")
	s.NoError(err)
	s.True(member)
}

func (s *RedisRepoTestSuite) TestList() {
	s.mock.ExpectSMembers("masters").SetVal([]string{"user-1", "user-2"})

	ids, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.ElementsMatch([]string{"user-1", "user-2"}, ids)
}

func (s *RedisRepoTestSuite) TestEmptyUserID() {
	_, err := s.repo.Add(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.repo.Remove(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.repo.Contains(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}
