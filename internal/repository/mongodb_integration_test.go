//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func indexSpecs(t *testing.T, db *MongoDB) map[string]bson.Raw {
	t.Helper()
	specs, err := db.Logs.Indexes().ListSpecifications(context.Background())
	require.NoError(t, err)

	byName := make(map[string]bson.Raw, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec.KeysDocument
	}
	return byName
}

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDBFromSharedContainer(t)

	require.NotNil(t, db.Client)
	require.NotNil(t, db.Logs)
	assert.NoError(t, db.HealthCheck(ctx))

	specs := indexSpecs(t, db)
	for _, name := range []string{"request_id_1", "receipt_id_1_timestamp_-1", "action_type_1_timestamp_-1"} {
		assert.Contains(t, specs, name)
	}
	assert.NotContains(t, specs, logsTTLIndexName, "TTL index is only created on request")

	// Changing the retention replaces the index instead of conflicting.
	require.NoError(t, db.SetLogsTTL(ctx, 30))
	require.NoError(t, db.SetLogsTTL(ctx, 30))
	require.NoError(t, db.SetLogsTTL(ctx, 7))

	list, err := db.Logs.Indexes().ListSpecifications(ctx)
	require.NoError(t, err)
	for _, spec := range list {
		if spec.Name == logsTTLIndexName {
			require.NotNil(t, spec.ExpireAfterSeconds)
			assert.Equal(t, int32(7*24*60*60), *spec.ExpireAfterSeconds)
		}
	}
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	t.Parallel()
	_, err := NewMongoDB("mongodb://127.0.0.1:1", "unreachable")
	assert.Error(t, err)
}
