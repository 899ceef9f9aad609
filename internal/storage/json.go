package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// ReadJSON decodes the value stored under key. The fallback is returned
// when the key is absent or its contents cannot be parsed; only backend
// failures are reported as errors.
func ReadJSON[T any](ctx context.Context, s Storage, key string, fallback T) (T, error) {
	data, err := s.Read(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return fallback, nil
		}
		return fallback, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback, nil
	}
	return value, nil
}

// WriteJSON encodes value and stores it under key
func WriteJSON[T any](ctx context.Context, s Storage, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, data)
}
