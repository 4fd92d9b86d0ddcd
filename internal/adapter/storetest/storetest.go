// Package storetest holds the behaviour every port.Store backend must
// share. Backends call Run from their own tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pledge-data/internal/core/port"
)

// Run exercises a fresh, empty store returned by open for each subtest.
func Run(t *testing.T, open func(t *testing.T) port.Store) {
	t.Run("PutGetDelete", func(t *testing.T) { testPutGetDelete(t, open(t)) })
	t.Run("GetAllOrderedByKey", func(t *testing.T) { testGetAll(t, open(t)) })
	t.Run("GetAllByIndex", func(t *testing.T) { testGetAllByIndex(t, open(t)) })
	t.Run("CompareAndPut", func(t *testing.T) { testCompareAndPut(t, open(t)) })
	t.Run("ClearIsPerCollection", func(t *testing.T) { testClear(t, open(t)) })
	t.Run("UnknownCollection", func(t *testing.T) { testUnknownCollection(t, open(t)) })
}

func testPutGetDelete(t *testing.T, s port.Store) {
	ctx := context.Background()

	rec, err := s.Put(ctx, port.CollectionAds, port.Record{
		Key:     "a1",
		Data:    []byte(`{"id":"a1"}`),
		Indexes: map[string]string{port.IndexClientID: "c1"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rec.Version)

	rec, err = s.Put(ctx, port.CollectionAds, port.Record{
		Key:     "a1",
		Data:    []byte(`{"id":"a1","x":1}`),
		Indexes: map[string]string{port.IndexClientID: "c2"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, rec.Version)

	got, ok, err := s.Get(ctx, port.CollectionAds, "a1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a1", got.Key)
	assert.JSONEq(t, `{"id":"a1","x":1}`, string(got.Data))
	assert.Equal(t, map[string]string{port.IndexClientID: "c2"}, got.Indexes)
	assert.EqualValues(t, 2, got.Version)

	require.NoError(t, s.Delete(ctx, port.CollectionAds, "a1"))
	require.NoError(t, s.Delete(ctx, port.CollectionAds, "a1"))

	_, ok, err = s.Get(ctx, port.CollectionAds, "a1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func testGetAll(t *testing.T, s port.Store) {
	ctx := context.Background()
	for _, key := range []string{"k3", "k1", "k2"} {
		_, err := s.Put(ctx, port.CollectionClients, port.Record{Key: key, Data: []byte(`{}`)})
		require.NoError(t, err)
	}
	recs, err := s.GetAll(ctx, port.CollectionClients)
	require.NoError(t, err)
	keys := make([]string, 0, len(recs))
	for _, r := range recs {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"k1", "k2", "k3"}, keys)
}

func testGetAllByIndex(t *testing.T, s port.Store) {
	ctx := context.Background()
	for key, client := range map[string]string{"a1": "c1", "a2": "c2", "a3": "c1"} {
		_, err := s.Put(ctx, port.CollectionAds, port.Record{
			Key:     key,
			Data:    []byte(`{}`),
			Indexes: map[string]string{port.IndexClientID: client, port.IndexEndAt: "2024-05-20T10:00:00.000000000Z"},
		})
		require.NoError(t, err)
	}
	_, err := s.Put(ctx, port.CollectionAds, port.Record{Key: "a4", Data: []byte(`{}`)})
	require.NoError(t, err)

	c1 := "c1"
	recs, err := s.GetAllByIndex(ctx, port.CollectionAds, port.IndexClientID, &c1)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a1", recs[0].Key)
	assert.Equal(t, "a3", recs[1].Key)

	recs, err = s.GetAllByIndex(ctx, port.CollectionAds, port.IndexClientID, nil)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	none := "nobody"
	recs, err = s.GetAllByIndex(ctx, port.CollectionAds, port.IndexClientID, &none)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func testCompareAndPut(t *testing.T, s port.Store) {
	ctx := context.Background()
	rec := port.Record{Key: "main", Data: []byte(`{"balance":"0"}`)}

	first, err := s.CompareAndPut(ctx, port.CollectionBudget, rec, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.Version)

	_, err = s.CompareAndPut(ctx, port.CollectionBudget, rec, 0)
	assert.ErrorIs(t, err, port.ErrVersionConflict)

	rec.Data = []byte(`{"balance":"66"}`)
	second, err := s.CompareAndPut(ctx, port.CollectionBudget, rec, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.Version)

	_, err = s.CompareAndPut(ctx, port.CollectionBudget, port.Record{Key: "main", Data: []byte(`{"balance":"-1"}`)}, 1)
	assert.ErrorIs(t, err, port.ErrVersionConflict)

	got, ok, err := s.Get(ctx, port.CollectionBudget, "main")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"balance":"66"}`, string(got.Data))

	// Put also bumps the version that CompareAndPut checks.
	_, err = s.Put(ctx, port.CollectionBudget, rec)
	require.NoError(t, err)
	_, err = s.CompareAndPut(ctx, port.CollectionBudget, rec, 2)
	assert.ErrorIs(t, err, port.ErrVersionConflict)
}

func testClear(t *testing.T, s port.Store) {
	ctx := context.Background()
	_, err := s.Put(ctx, port.CollectionNotes, port.Record{Key: "c1", Data: []byte(`{"clientId":"c1"}`)})
	require.NoError(t, err)
	_, err = s.Put(ctx, port.CollectionRatings, port.Record{Key: "c1", Data: []byte(`{"clientId":"c1"}`)})
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx, port.CollectionNotes))

	recs, err := s.GetAll(ctx, port.CollectionNotes)
	require.NoError(t, err)
	assert.Empty(t, recs)
	recs, err = s.GetAll(ctx, port.CollectionRatings)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func testUnknownCollection(t *testing.T, s port.Store) {
	ctx := context.Background()
	_, err := s.GetAll(ctx, "campaigns")
	assert.ErrorIs(t, err, port.ErrUnknownCollection)
	_, err = s.Put(ctx, "campaigns", port.Record{Key: "x", Data: []byte(`{}`)})
	assert.ErrorIs(t, err, port.ErrUnknownCollection)
}
