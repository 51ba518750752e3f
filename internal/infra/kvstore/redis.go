package kvstore

import (
	"context"
	"strconv"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const (
	challengeKeyPrefix = "otp:challenge:"
	revokedKeyPrefix   = "auth:revoked:"

	fieldPhone     = "phone"
	fieldCodeHash  = "code_hash"
	fieldAttempts  = "attempts"
	fieldExpiresAt = "expires_at"
)

// incrementAttemptsScript bumps the counter only while the challenge exists,
// so an expired challenge is never resurrected.
var incrementAttemptsScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], ARGV[1], 1)
`)

// takeChallengeScript reads and deletes a challenge atomically. The call that
// deletes the key is the only one to see its fields.
var takeChallengeScript = redis.NewScript(`
local fields = redis.call('HGETALL', KEYS[1])
if #fields > 0 then
	redis.call('DEL', KEYS[1])
end
return fields
`)

// redisStore implements OTPStore and TokenRevocationStore on Redis. Entries
// carry a TTL so Redis purges them once they no longer matter.
type redisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func newRedisStore(client redis.UniversalClient) *redisStore {
	return &redisStore{client: client, now: time.Now}
}

func challengeKey(handle string) string {
	return challengeKeyPrefix + handle
}

func revokedKey(tokenID string) string {
	return revokedKeyPrefix + tokenID
}

func (s *redisStore) Save(ctx context.Context, challenge *entity.OTPChallenge) error {
	key := challengeKey(challenge.Handle)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldPhone, challenge.Phone,
			fieldCodeHash, challenge.CodeHash,
			fieldAttempts, challenge.Attempts,
			fieldExpiresAt, challenge.ExpiresAt.UnixMilli(),
		)
		pipe.PExpireAt(ctx, key, challenge.ExpiresAt)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to save otp challenge")
	}

	return nil
}

func (s *redisStore) Find(ctx context.Context, handle string) (*entity.OTPChallenge, error) {
	fields, err := s.client.HGetAll(ctx, challengeKey(handle)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load otp challenge")
	}
	if len(fields) == 0 {
		return nil, repository.ErrChallengeNotFound
	}

	return decodeChallenge(handle, fields)
}

func (s *redisStore) IncrementAttempts(ctx context.Context, handle string) (int, error) {
	attempts, err := incrementAttemptsScript.Run(ctx, s.client, []string{challengeKey(handle)}, fieldAttempts).Int()
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment otp attempts")
	}
	if attempts < 0 {
		return 0, repository.ErrChallengeNotFound
	}

	return attempts, nil
}

func (s *redisStore) Take(ctx context.Context, handle string) (*entity.OTPChallenge, error) {
	values, err := takeChallengeScript.Run(ctx, s.client, []string{challengeKey(handle)}).StringSlice()
	if err != nil {
		return nil, errors.Wrap(err, "failed to take otp challenge")
	}
	if len(values) == 0 {
		return nil, repository.ErrChallengeNotFound
	}

	fields := make(map[string]string, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		fields[values[i]] = values[i+1]
	}

	return decodeChallenge(handle, fields)
}

func (s *redisStore) Delete(ctx context.Context, handle string) error {
	if err := s.client.Del(ctx, challengeKey(handle)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete otp challenge")
	}

	return nil
}

func (s *redisStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

func (s *redisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return n > 0, nil
}

func decodeChallenge(handle string, fields map[string]string) (*entity.OTPChallenge, error) {
	attempts, err := strconv.Atoi(fields[fieldAttempts])
	if err != nil {
		return nil, errors.Wrap(err, "corrupt otp attempts")
	}
	expiresAt, err := strconv.ParseInt(fields[fieldExpiresAt], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "corrupt otp expiry")
	}

	return &entity.OTPChallenge{
		Handle:    handle,
		Phone:     fields[fieldPhone],
		CodeHash:  fields[fieldCodeHash],
		Attempts:  attempts,
		ExpiresAt: time.UnixMilli(expiresAt),
	}, nil
}
