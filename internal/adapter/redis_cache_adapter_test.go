package adapter

import (
	"context"
	"errors"
	"quiz-forge/internal/domain"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verdictKey = "quizforge:topicgate:verdict:5f2b"

var errRedisDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

func TestRedisCacheAdapter(t *testing.T) {
	ctx := context.Background()
	verdict := `{"isValid":false,"reason":"Football is not a property topic."}`

	tests := []struct {
		name    string
		expect  func(mock redismock.ClientMock)
		run     func(c domain.Cache) (string, error)
		want    string
		wantErr error
	}{
		{
			name:   "get hit",
			expect: func(m redismock.ClientMock) { m.ExpectGet(verdictKey).SetVal(verdict) },
			run:    func(c domain.Cache) (string, error) { return c.Get(ctx, verdictKey) },
			want:   verdict,
		},
		{
			name:    "get miss maps redis.Nil",
			expect:  func(m redismock.ClientMock) { m.ExpectGet(verdictKey).SetErr(redis.Nil) },
			run:     func(c domain.Cache) (string, error) { return c.Get(ctx, verdictKey) },
			wantErr: domain.ErrCacheMiss,
		},
		{
			name:    "get failure",
			expect:  func(m redismock.ClientMock) { m.ExpectGet(verdictKey).SetErr(errRedisDown) },
			run:     func(c domain.Cache) (string, error) { return c.Get(ctx, verdictKey) },
			wantErr: errRedisDown,
		},
		{
			name:   "set with ttl",
			expect: func(m redismock.ClientMock) { m.ExpectSet(verdictKey, verdict, time.Hour).SetVal("OK") },
			run:    func(c domain.Cache) (string, error) { return "", c.Set(ctx, verdictKey, verdict, time.Hour) },
		},
		{
			name:    "set failure",
			expect:  func(m redismock.ClientMock) { m.ExpectSet(verdictKey, verdict, time.Hour).SetErr(errRedisDown) },
			run:     func(c domain.Cache) (string, error) { return "", c.Set(ctx, verdictKey, verdict, time.Hour) },
			wantErr: errRedisDown,
		},
		{
			name:   "delete absent key",
			expect: func(m redismock.ClientMock) { m.ExpectDel(verdictKey).SetVal(0) },
			run:    func(c domain.Cache) (string, error) { return "", c.Delete(ctx, verdictKey) },
		},
		{
			name:    "delete failure",
			expect:  func(m redismock.ClientMock) { m.ExpectDel(verdictKey).SetErr(errRedisDown) },
			run:     func(c domain.Cache) (string, error) { return "", c.Delete(ctx, verdictKey) },
			wantErr: errRedisDown,
		},
		{
			name:   "ping",
			expect: func(m redismock.ClientMock) { m.ExpectPing().SetVal("PONG") },
			run:    func(c domain.Cache) (string, error) { return "", c.Ping(ctx) },
		},
		{
			name:    "ping failure",
			expect:  func(m redismock.ClientMock) { m.ExpectPing().SetErr(errRedisDown) },
			run:     func(c domain.Cache) (string, error) { return "", c.Ping(ctx) },
			wantErr: errRedisDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.expect(mock)

			got, err := tt.run(NewRedisCacheAdapter(client))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
