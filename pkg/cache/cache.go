package cache

import (
	"context"
	"encoding/json"
)

// Service is a store of named hashes. Values are stored JSON-encoded
// (strings verbatim) so memory and Redis backends behave the same.
type Service interface {
	HSet(ctx context.Context, key, field string, value interface{}) error
	HDel(ctx context.Context, key string, fields ...string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Close() error
}

// HGetAllTyped reads a hash and unmarshals each field into T. Fields that
// do not decode are skipped.
func HGetAllTyped[T any](ctx context.Context, c Service, key string) (map[string]T, error) {
	raw, err := c.HGetAll(ctx, key)
	if err != nil {
		return nil, err
	}

	typed := make(map[string]T, len(raw))
	for field, rawValue := range raw {
		var obj T
		if err := json.Unmarshal([]byte(rawValue), &obj); err != nil {
			continue
		}
		typed[field] = obj
	}
	return typed, nil
}

func encode(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(value)
	}
}
