package learner

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProfileKey is the fixed key under which the serialized profile lives
// in the key-value store.
const ProfileKey = "user_profile"

// KV is the durable key-value capability the aggregate is persisted
// through. Satisfied by store.KVRepo; tests use an in-memory map.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Load reads the profile from the store. Returns (nil, nil) when no
// profile has been saved yet.
func Load(ctx context.Context, kv KV) (*UserProfile, error) {
	raw, ok, err := kv.Get(ctx, ProfileKey)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var p UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// Save writes the profile to the store as one JSON document. Each call is
// a full replace; the store makes the write crash-safe.
func Save(ctx context.Context, kv KV, p *UserProfile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := kv.Set(ctx, ProfileKey, string(b)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Reset removes the stored profile.
func Reset(ctx context.Context, kv KV) error {
	if err := kv.Remove(ctx, ProfileKey); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	return nil
}
