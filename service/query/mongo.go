package query

/*
	Package query provides the mongo access layer used by the repositories.
	It is a thin wrap over https://github.com/mongodb/mongo-go-driver; see
	https://godoc.org/go.mongodb.org/mongo-driver/mongo for details of the
	underlying behavior.
*/

import (
	"fmt"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne gets data from the table.
	// Returns ErrNotFound if the query matches no document.
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count returns counting for matched entries in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert replaces the entry matching selector, inserting it if absent
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sorts order by `sort` argument (ex "timestamp" ascending, or
	// "-timestamp" descending). If `sort` is "", the sort is skipped and
	// mongo does not guarantee the order of the results.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Remove removes an entry from the table.
	// Returns ErrNotFound if selector does not match any document.
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll removes all entries matching the selector from the table
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)

	// Patch applies a $set update to the entry matching selector.
	// Returns ErrNotFound if selector does not match any document.
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error
}
