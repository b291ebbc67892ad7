package store

import (
	"context"
	"fmt"

	"github.com/khanhvo/mathgenius/ent"
	"github.com/khanhvo/mathgenius/ent/profilerecord"
)

// Well-known record keys.
const (
	KeyUserProfile = "user_profile"
	KeyCredential  = "api_credential"
)

// kvRepo implements KVRepo over the ProfileRecord table.
type kvRepo struct {
	client *ent.Client
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	rec, err := r.client.ProfileRecord.Query().
		Where(profilerecord.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get record %q: %w", key, err)
	}
	return rec.Value, true, nil
}

func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	n, err := r.client.ProfileRecord.Update().
		Where(profilerecord.KeyEQ(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update record %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.ProfileRecord.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create record %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Remove(ctx context.Context, key string) error {
	_, err := r.client.ProfileRecord.Delete().
		Where(profilerecord.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove record %q: %w", key, err)
	}
	return nil
}
