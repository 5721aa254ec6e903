// File: utils/authstore.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freshpress/models"

	"github.com/go-redis/redis/v8"
)

// PortalSession is the single auth record shared by every portal. The
// upstream bearer token is held here so handlers never read it from the
// client directly.
type PortalSession struct {
	UserID        string                  `json:"userId"`
	Portal        string                  `json:"portal"` // customer | admin | support | center-admin
	Role          string                  `json:"role"`
	BranchID      string                  `json:"branchId,omitempty"` // set for center-admin sessions
	Permissions   models.PermissionMatrix `json:"permissions,omitempty"`
	UpstreamToken string                  `json:"upstreamToken"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
}

// legacyKeyFormats are the historical per-portal key conventions. Reads
// fall back to these and migrate hits to the unified key; writes only
// ever use the unified scheme.
var legacyKeyFormats = []string{
	"laundry-auth:%s",
	"center-admin-storage:%s",
	"admin-storage:%s",
	"%s",
}

func authKey(tokenHash string) string {
	return AuthSessionPrefix + tokenHash
}

// SavePortalSession stores the session under the unified key with a TTL.
func SavePortalSession(client *redis.Client, tokenHash string, session PortalSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal portal session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, authKey(tokenHash), data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save portal session: %w", err)
	}
	return nil
}

// GetPortalSession retrieves the session for a token hash. Legacy keys
// are consulted as a fallback; a legacy hit is rewritten under the
// unified key and the stale entry removed.
func GetPortalSession(client *redis.Client, tokenHash string) (*PortalSession, error) {
	ctx := context.Background()

	data, err := client.Get(ctx, authKey(tokenHash)).Result()
	if err == redis.Nil {
		data, err = getLegacySession(ctx, client, tokenHash)
	}
	if err != nil {
		return nil, err
	}

	var session PortalSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portal session: %w", err)
	}
	return &session, nil
}

func getLegacySession(ctx context.Context, client *redis.Client, tokenHash string) (string, error) {
	for _, format := range legacyKeyFormats {
		key := fmt.Sprintf(format, tokenHash)
		data, err := client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return "", err
		}
		// Migrate to the unified key so the legacy convention dies out.
		if err := client.Set(ctx, authKey(tokenHash), data, AuthSessionTTL).Err(); err == nil {
			client.Del(ctx, key)
		}
		return data, nil
	}
	return "", redis.Nil
}

// DeletePortalSession removes a session (unified and legacy keys).
func DeletePortalSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	keys := []string{authKey(tokenHash)}
	for _, format := range legacyKeyFormats {
		keys = append(keys, fmt.Sprintf(format, tokenHash))
	}
	return client.Del(ctx, keys...).Err()
}
