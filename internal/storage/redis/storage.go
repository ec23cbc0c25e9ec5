package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pokearch/registry/internal/model"
	"github.com/pokearch/registry/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Registry state is durable game state, so no key carries a TTL.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Owner operations

func (s *Storage) SetOwner(ctx context.Context, owner model.Principal) error {
	return s.client.Set(ctx, ownerKey(), owner.String(), 0).Err()
}

func (s *Storage) GetOwner(ctx context.Context) (model.Principal, error) {
	val, err := s.client.Get(ctx, ownerKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrOwnerNotBound
		}
		return "", err
	}
	return model.Principal(val), nil
}

// Allow-list operations

func (s *Storage) AddAllowance(ctx context.Context, p model.Principal) error {
	return s.client.Set(ctx, allowanceKey(p), "1", 0).Err()
}

func (s *Storage) RemoveAllowance(ctx context.Context, p model.Principal) error {
	return s.client.Del(ctx, allowanceKey(p)).Err()
}

func (s *Storage) HasAllowance(ctx context.Context, p model.Principal) (bool, error) {
	exists, err := s.client.Exists(ctx, allowanceKey(p)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Minter operations

func (s *Storage) BindMinter(ctx context.Context, minter model.Principal) error {
	// Minter reference and counter reset must land together
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, minterKey(), minter.String(), 0)
	pipe.Set(ctx, tokenCountKey(), "0", 0)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMinter(ctx context.Context) (model.Principal, error) {
	val, err := s.client.Get(ctx, minterKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrMinterNotBound
		}
		return "", err
	}
	return model.Principal(val), nil
}

// Token counter operations

func (s *Storage) GetTokenCount(ctx context.Context) (int64, error) {
	val, err := s.client.Get(ctx, tokenCountKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	set, err := s.client.SetNX(ctx, playerKey(player.ID), data, 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return model.ErrPlayerExists
	}
	return nil
}

// updateRetries bounds the optimistic retry loop when a watched key
// changes under a concurrent writer.
const updateRetries = 16

func (s *Storage) UpdatePlayer(ctx context.Context, id string, update func(*model.Player) error) (*model.Player, error) {
	key := playerKey(id)

	var updated *model.Player
	txf := func(tx *redis.Tx) error {
		player, err := getPlayerTx(ctx, tx, key)
		if err != nil {
			return err
		}

		if err := update(player); err != nil {
			return err
		}

		data, err := json.Marshal(player)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = player
		return nil
	}

	for i := 0; i < updateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, redis.TxFailedErr
}

func (s *Storage) UpdatePlayerWithToken(ctx context.Context, id string, update func(player *model.Player, tokenID int64) error) (*model.Player, int64, error) {
	key := playerKey(id)

	var updated *model.Player
	var tokenID int64
	txf := func(tx *redis.Tx) error {
		player, err := getPlayerTx(ctx, tx, key)
		if err != nil {
			return err
		}

		count, err := getTokenCountTx(ctx, tx)
		if err != nil {
			return err
		}

		tokenID = count + 1
		if err := update(player, tokenID); err != nil {
			return err
		}

		data, err := json.Marshal(player)
		if err != nil {
			return err
		}

		// The counter advance lands with the player write that
		// claimed the id, or not at all
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.Set(ctx, tokenCountKey(), strconv.FormatInt(tokenID, 10), 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = player
		return nil
	}

	for i := 0; i < updateRetries; i++ {
		err := s.client.Watch(ctx, txf, key, tokenCountKey())
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		return updated, tokenID, nil
	}
	return nil, 0, redis.TxFailedErr
}

// getPlayerTx reads and unmarshals a player inside a watched transaction
func getPlayerTx(ctx context.Context, tx *redis.Tx, key string) (*model.Player, error) {
	data, err := tx.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// getTokenCountTx reads the counter inside a watched transaction
func getTokenCountTx(ctx context.Context, tx *redis.Tx) (int64, error) {
	val, err := tx.Get(ctx, tokenCountKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s *Storage) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}
