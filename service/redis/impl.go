package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/base/metrics"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New creates a redis service backed by the given pool
func New(name string, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  metrics.New("redis." + name),
		pool: pool,
	}
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	defer r.met.BumpTime("latency", "command", commandName).End()

	conn, err := r.pool.GetContext(context)
	if err != nil {
		r.met.BumpSum("conn.err", 1)
		context.WithFields(log.Fields{"err": err, "command": commandName}).Error("pool.GetContext failed")
		return nil, err
	}
	defer conn.Close()

	return conn.Do(commandName, args...)
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		context.WithFields(log.Fields{"err": err, "key": key}).Error("GET failed")
		return nil, err
	}
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	var err error
	if expire > 0 {
		_, err = r.connDo(context, "SET", key, val, "PX", int64(expire/time.Millisecond))
	} else {
		_, err = r.connDo(context, "SET", key, val)
	}
	if err != nil {
		context.WithFields(log.Fields{"err": err, "key": key}).Error("SET failed")
		return err
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, keys ...string) (int, error) {
	args := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		args = append(args, k)
	}
	n, err := redis.Int(r.connDo(context, "DEL", args...))
	if err != nil {
		context.WithFields(log.Fields{"err": err, "keys": keys}).Error("DEL failed")
		return 0, err
	}
	return n, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	ttl, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithFields(log.Fields{"err": err, "key": key}).Error("TTL failed")
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	n, err := redis.Int(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithFields(log.Fields{"err": err, "key": key}).Error("EXISTS failed")
		return false, err
	}
	return n == 1, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	n, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithFields(log.Fields{"err": err, "key": key}).Error("INCRBY failed")
		return 0, err
	}
	return n, nil
}

func (r *redImpl) Ping(context ctx.Ctx) error {
	_, err := r.connDo(context, "PING")
	return err
}
