package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResources() []Resource {
	return []Resource{
		{ID: "vault-primary", Name: "Primary cluster", Type: "cluster", LinkStatus: LinkStatusConnected},
		{ID: "vault-dr", Name: "DR secondary", Type: "cluster", LinkStatus: LinkStatusDisconnected},
		{ID: "vault-perf", Name: "Performance replica", Type: "cluster"},
	}
}

func TestResourceService_ListResources(t *testing.T) {
	svc := NewResourceService(testResources())

	resources, err := svc.ListResources(context.Background())
	require.NoError(t, err)
	require.Len(t, resources, 3)

	assert.Equal(t, "vault-primary", resources[0].ID)
	assert.Equal(t, "vault-dr", resources[1].ID)
	assert.Equal(t, "vault-perf", resources[2].ID)
	assert.Equal(t, LinkStatusUnknown, resources[2].LinkStatus)
}

func TestResourceService_GetResource(t *testing.T) {
	svc := NewResourceService(testResources())

	res, err := svc.GetResource(context.Background(), "vault-dr")
	require.NoError(t, err)
	assert.Equal(t, "DR secondary", res.Name)
	assert.Equal(t, LinkStatusDisconnected, res.LinkStatus)
}

func TestResourceService_GetResource_NotFound(t *testing.T) {
	svc := NewResourceService(testResources())

	res, err := svc.GetResource(context.Background(), "missing")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.True(t, IsPermanentError(err))
}

func TestResourceService_GetResource_InvalidID(t *testing.T) {
	svc := NewResourceService(testResources())

	for _, id := range []string{"", "   "} {
		_, err := svc.GetResource(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidResourceID)
	}
}

func TestResourceService_CancelledContext(t *testing.T) {
	svc := NewResourceService(testResources())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ListResources(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.GetResource(ctx, "vault-dr")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResourceService_ReplaceResources(t *testing.T) {
	svc := NewResourceService(testResources())

	svc.ReplaceResources([]Resource{
		{ID: "b", Name: "first b"},
		{ID: ""},
		{ID: "a", Name: "a"},
		{ID: "b", Name: "second b"},
	})

	resources, err := svc.ListResources(context.Background())
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "b", resources[0].ID)
	assert.Equal(t, "second b", resources[0].Name)
	assert.Equal(t, "a", resources[1].ID)

	_, err = svc.GetResource(context.Background(), "vault-primary")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestResourceService_CountByStatus(t *testing.T) {
	svc := NewResourceService(testResources())

	counts := svc.CountByStatus()
	assert.Equal(t, 1, counts[LinkStatusConnected])
	assert.Equal(t, 1, counts[LinkStatusDisconnected])
	assert.Equal(t, 1, counts[LinkStatusUnknown])
}

func TestResourceService_Empty(t *testing.T) {
	svc := NewResourceService(nil)

	resources, err := svc.ListResources(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestIsPermanentError(t *testing.T) {
	assert.True(t, IsPermanentError(ErrInvalidResourceID))
	assert.True(t, IsPermanentError(ErrInvalidConfig))
	assert.False(t, IsPermanentError(errors.New("temporary")))
	assert.False(t, IsPermanentError(nil))
}
