package compoundcache

import (
	"reflect"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/service/cache"
)

// CompoundCache layers cache services: Get walks the layers in order and
// back-fills the faster layers on a hit, Set/Del write through every layer
type CompoundCache struct {
	caches []cache.Service
}

func NewCompoundCache(caches []cache.Service) cache.Service {
	return &CompoundCache{caches}
}

func (c *CompoundCache) GetByFunc(ctx ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	err := c.Get(ctx, key, container)
	if err != nil && err != cache.ErrNotFound {
		ctx.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	} else if err == nil {
		return nil
	}

	val, err := getter()
	if err != nil {
		ctx.WithField("err", err).WithField("key", key).Error("getter failed")
		return err
	}

	if err := c.setValue(ctx, key, val, container); err != nil {
		ctx.WithField("err", err).WithField("key", key).Error("setValue failed")
		return err
	}

	return nil
}

func (c *CompoundCache) Get(ctx ctx.Ctx, key string, container interface{}) error {
	hitIdx := -1
	for i, layer := range c.caches {
		err := layer.Get(ctx, key, container)
		if err == nil {
			hitIdx = i
			break
		}
		if err != cache.ErrNotFound {
			ctx.WithField("err", err).WithField("key", key).Error("layer.Get failed")
			return err
		}
	}

	if hitIdx < 0 {
		return cache.ErrNotFound
	}

	// back-fill the layers in front of the hit
	for i := 0; i < hitIdx; i++ {
		if err := c.caches[i].Set(ctx, key, container); err != nil {
			ctx.WithField("err", err).WithField("key", key).Error("back-fill Set failed")
		}
	}
	return nil
}

func (c *CompoundCache) Set(ctx ctx.Ctx, key string, value interface{}) error {
	for _, layer := range c.caches {
		if err := layer.Set(ctx, key, value); err != nil {
			ctx.WithField("err", err).WithField("key", key).Error("layer.Set failed")
			return err
		}
	}
	return nil
}

func (c *CompoundCache) Del(ctx ctx.Ctx, key string) error {
	for _, layer := range c.caches {
		if err := layer.Del(ctx, key); err != nil {
			ctx.WithField("err", err).WithField("key", key).Error("layer.Del failed")
			return err
		}
	}
	return nil
}

func (c *CompoundCache) setValue(ctx ctx.Ctx, key string, val, container interface{}) error {
	if err := c.Set(ctx, key, val); err != nil {
		return err
	}
	// mirror cache.Service.GetByFunc: leave the fetched value in container
	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}
