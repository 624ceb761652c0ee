package broker

import (
	"context"

	"github.com/redis/go-redis/v9"

	"diskrelay/pkg/logger"
)

type Client struct {
	redis  *redis.Client
	stream string
	group  string
}

// NewClient connects to redis and makes sure the event stream and its
// consumer group exist.
func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	logger.Info("connecting to broker", "addr", opt.Addr, "stream", cfg.StreamName)

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
	if err != nil && !isBusyGroup(err) {
		_ = rdb.Close()

		return nil, err
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
		group:  cfg.GroupName,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists"
}
