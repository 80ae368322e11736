package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxHttpCache is used for prefixing cached http responses
	PfxHttpCache = "httpCache"
)

// CustomKey joins key components with the given delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins redis key components
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}
