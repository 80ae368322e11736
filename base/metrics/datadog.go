package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/openmarket/goapi/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before sending to statsd
	bufferMetrics = 10

	ddPort = 8125
)

var (
	initOnce = sync.Once{}

	// ddClientsIdx is used for accessing ddClients by round robin scheduling
	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

func initDDClient() {
	host := viper.GetString("datadog_host")
	ddClients = make([]statsCli, ddClientsSize)
	for i := 0; i < ddClientsSize; i++ {
		addr := fmt.Sprintf("%s:%d", host, ddPort)
		log.Log().WithFields(log.Fields{"addr": addr, "idx": i}).Info("connecting to datadog agent")

		var err error
		ddClients[i], err = statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
	}
}

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// DDMetrics sends bumps to datadog statsd
type DDMetrics struct {
	ddTags []string
}

func (dm *DDMetrics) client() statsCli {
	initOnce.Do(initDDClient)
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	return ddClients[i]
}

func (dm *DDMetrics) makeTags(tags []string) []string {
	// datadog wants "k:v" strings; incoming tags alternate key, value
	res := append([]string{}, dm.ddTags...)
	for i := 0; i+1 < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}

// BumpAvg bumps the average for the given key.
// datadog has no average-only type, histogram covers it
func (dm *DDMetrics) BumpAvg(key string, val float64, tags ...string) {
	_ = dm.client().Histogram(key, val, dm.makeTags(tags), ddRate)
}

// BumpSum bumps the sum for the given key.
func (dm *DDMetrics) BumpSum(key string, val float64, tags ...string) {
	_ = dm.client().Count(key, int64(val), dm.makeTags(tags), ddRate)
}

// BumpHistogram bumps the histogram for the given key.
func (dm *DDMetrics) BumpHistogram(key string, val float64, tags ...string) {
	_ = dm.client().Histogram(key, val, dm.makeTags(tags), ddRate)
}

// BumpTimeInMilliseconds records an elapsed time for the given key.
func (dm *DDMetrics) BumpTimeInMilliseconds(key string, val float64, tags ...string) {
	_ = dm.client().TimeInMilliseconds(key, val, dm.makeTags(tags), ddRate)
}
