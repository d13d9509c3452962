package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/vaultpass-web/internal/apiclient"
	"github.com/vaultpass/vaultpass-web/internal/model"
)

func TestItemService_List(t *testing.T) {
	api := &fakeAPI{resp: `[{"_id":"1","name":"mail","category":"Work"}]`}
	items, err := NewItemService(api).List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, model.CategoryWork, items[0].Category)
	assert.Equal(t, []call{{method: "GET", path: "/items"}}, api.calls)
}

func TestItemService_CreateDefaultsCategory(t *testing.T) {
	api := &fakeAPI{resp: `{"_id":"2","name":"bank"}`}
	item, err := NewItemService(api).Create(context.Background(), model.ItemInput{Name: "bank"})

	require.NoError(t, err)
	assert.Equal(t, "2", item.ID)
	require.Len(t, api.calls, 1)
	assert.Equal(t, "/items", api.calls[0].path)
	assert.Equal(t, model.CategoryNone, api.calls[0].body.(model.ItemInput).Category)
}

func TestItemService_UpdateAndDeletePaths(t *testing.T) {
	api := &fakeAPI{}
	svc := NewItemService(api)

	_, err := svc.Update(context.Background(), "abc 1", model.ItemInput{Name: "x"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), "abc"))

	assert.Equal(t, "PATCH", api.calls[0].method)
	assert.Equal(t, "/items/abc%201", api.calls[0].path)
	assert.Equal(t, "DELETE", api.calls[1].method)
	assert.Equal(t, "/items/abc", api.calls[1].path)
}

func TestItemService_EmptyID(t *testing.T) {
	api := &fakeAPI{}
	svc := NewItemService(api)

	_, err := svc.Update(context.Background(), "", model.ItemInput{})
	assert.ErrorIs(t, err, ErrIDRequired)
	assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrIDRequired)
	assert.Empty(t, api.calls)
}

func TestItemService_PassesUpstreamErrorThrough(t *testing.T) {
	upstream := apiclient.MapError(404, []byte(`{"message":"Item not found"}`))
	api := &fakeAPI{err: upstream}

	err := NewItemService(api).Delete(context.Background(), "missing")

	var httpErr *apiclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Same(t, upstream, httpErr)
	assert.Equal(t, "Item not found", httpErr.Message)
}
