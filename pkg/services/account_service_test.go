package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/test/util"
)

func TestAccountCreateNormalizes(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewAccountService(client)
	ctx := context.Background()

	acc, err := svc.Create(ctx, "@AcmeCorp")
	require.NoError(t, err)
	assert.Equal(t, "acmecorp", acc.ID)
	assert.True(t, acc.Enabled)

	// Lookup is case-insensitive.
	got, err := svc.Get(ctx, "ACMECORP")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)
}

func TestAccountCreateRejectsDuplicates(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewAccountService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, "acme")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "@Acme")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestAccountCreateRejectsInvalidNames(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewAccountService(client)
	ctx := context.Background()

	for _, bad := range []string{"", "has space", "emoji🙂", "slash/name"} {
		_, err := svc.Create(ctx, bad)
		var validErr *services.ValidationError
		assert.ErrorAs(t, err, &validErr, "username %q", bad)
	}
}

func TestAccountMonitoredExcludesDisabled(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewAccountService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alpha")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "beta")
	require.NoError(t, err)

	_, err = svc.SetEnabled(ctx, "beta", false)
	require.NoError(t, err)

	monitored, err := svc.Monitored(ctx)
	require.NoError(t, err)
	require.Len(t, monitored, 1)
	assert.Equal(t, "alpha", monitored[0].ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAccountMarkPolled(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewAccountService(client)
	ctx := context.Background()

	_, err := svc.Create(ctx, "acme")
	require.NoError(t, err)

	polledAt := time.Now().Truncate(time.Second)
	require.NoError(t, svc.MarkPolled(ctx, "acme", "555", polledAt))

	acc, err := svc.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "555", acc.LastSeenPostID)
	require.NotNil(t, acc.LastPolledAt)

	// An empty watermark records the poll but leaves last_seen alone.
	require.NoError(t, svc.MarkPolled(ctx, "acme", "", polledAt.Add(time.Minute)))
	acc, err = svc.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "555", acc.LastSeenPostID)
}

func TestAccountDeleteNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewAccountService(client)

	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
