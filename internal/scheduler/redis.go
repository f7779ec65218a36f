package scheduler

import (
	"crypto/tls"
	"errors"

	"salesspark_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

var errNoRedis = errors.New("redis url not configured")

// connection turns REDIS_URL into asynq options. REDIS_TLS_INSECURE skips
// certificate checks for rediss:// URLs and forces TLS for plain ones.
func connection(cfg config.SchedulerConfig) (asynq.RedisClientOpt, error) {
	if cfg.GetRedisURL() == "" {
		return asynq.RedisClientOpt{}, errNoRedis
	}
	parsed, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	tlsConfig := parsed.TLSConfig
	if cfg.GetRedisTLSInsecure() {
		if tlsConfig == nil {
			tlsConfig = &tls.Config{}
		} else {
			tlsConfig = tlsConfig.Clone()
		}
		tlsConfig.InsecureSkipVerify = true
	}

	return asynq.RedisClientOpt{
		Addr:      parsed.Addr,
		Username:  parsed.Username,
		Password:  parsed.Password,
		DB:        parsed.DB,
		TLSConfig: tlsConfig,
	}, nil
}

func queueName(cfg config.SchedulerConfig) string {
	if queue := cfg.GetAsynqQueueName(); queue != "" {
		return queue
	}
	return "default"
}
