package interfaces

import "context"

// IKeyValueStore abstracts the external state component (sidecar state API,
// DynamoDB, or an in-memory fake in tests).
//
// Contract: Put followed by Get on the same key is read-your-write consistent.
type IKeyValueStore interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
}
