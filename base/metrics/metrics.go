/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
  - internal process time: *.time
  - external latency: *.latency
  - error: *.err
*/
package metrics

import (
	"time"

	"github.com/spf13/viper"

	"github.com/openmarket/goapi/base/env"
)

// Ender finishes a timing started by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	ddTags := []string{
		// using host: removes all tags associated with host
		"host:",
		"pod:" + env.PodName(),
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

// Metrics forwards bumps to a datadog statsd agent
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, tags...)
}

// BumpTime returns an Ender whose End() reports the elapsed time since the
// call to BumpTime
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeEnder{
		metrics: mt,
		key:     key,
		tags:    tags,
		start:   time.Now(),
	}
}

type timeEnder struct {
	metrics *Metrics
	key     string
	tags    []string
	start   time.Time
}

func (te *timeEnder) End() {
	elapsed := float64(time.Since(te.start)) / float64(time.Millisecond)
	te.metrics.datadog.BumpTimeInMilliseconds(te.metrics.pkgName+`.`+te.key, elapsed, te.tags...)
}
