package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
	"pledge-data/internal/core/port/mocks"
)

func TestAddClientNormalizes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	c, err := f.clients.AddClient(ctx, port.AddClientInput{Name: "  Anna   MARIA\tSmith ", Phone: "  ", Email: " a@b.c "})
	require.NoError(t, err)
	assert.Equal(t, "anna maria smith", c.Name)
	assert.Empty(t, c.Phone)
	assert.Equal(t, "a@b.c", c.Email)
	assert.Equal(t, t0, c.CreatedAt)
	assert.Nil(t, c.LastActiveAt)

	_, err = f.clients.AddClient(ctx, port.AddClientInput{Name: " \t "})
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestUpdateClient(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.clients.AddClient(ctx, port.AddClientInput{Name: "Bob", Phone: "0600"})
	require.NoError(t, err)

	updated, err := f.clients.UpdateClient(ctx, domain.Client{ID: c.ID, Name: "  ROBERT  Jr ", Phone: " ", Email: " r@x.io "})
	require.NoError(t, err)
	assert.Equal(t, "robert jr", updated.Name)
	assert.Empty(t, updated.Phone)
	assert.Equal(t, "r@x.io", updated.Email)
	assert.Equal(t, c.CreatedAt, updated.CreatedAt)

	kept, err := f.clients.UpdateClient(ctx, domain.Client{ID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, "robert jr", kept.Name)

	_, err = f.clients.UpdateClient(ctx, domain.Client{Name: "x"})
	assert.True(t, domain.IsValidation(err))
	_, err = f.clients.UpdateClient(ctx, domain.Client{ID: "nope", Name: "x"})
	assert.True(t, domain.IsNotFound(err))
}

func TestSearchClients(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, in := range []port.AddClientInput{
		{Name: "Zoe", Phone: "+212 600"},
		{Name: "adam", Email: "Adam@Mail.com"},
		{Name: "Mona"},
	} {
		_, err := f.clients.AddClient(ctx, in)
		require.NoError(t, err)
	}

	all, err := f.clients.SearchClients(ctx, "  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"adam", "mona", "zoe"}, names(all))

	got, err := f.clients.SearchClients(ctx, "MAIL")
	require.NoError(t, err)
	assert.Equal(t, []string{"adam"}, names(got))

	got, err = f.clients.SearchClients(ctx, "212")
	require.NoError(t, err)
	assert.Equal(t, []string{"zoe"}, names(got))

	got, err = f.clients.SearchClients(ctx, "o")
	require.NoError(t, err)
	assert.Equal(t, []string{"adam", "mona", "zoe"}, names(got))
}

func TestTouchClientActivity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c, err := f.clients.AddClient(ctx, port.AddClientInput{Name: "x"})
	require.NoError(t, err)

	f.clock.Advance(48 * time.Hour)
	touched, err := f.clients.TouchClientActivity(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, touched.LastActiveAt)
	assert.Equal(t, t0.Add(48*time.Hour), *touched.LastActiveAt)

	_, err = f.clients.TouchClientActivity(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteClientCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	keep, err := f.clients.AddClient(ctx, port.AddClientInput{Name: "keep"})
	require.NoError(t, err)
	drop, err := f.clients.AddClient(ctx, port.AddClientInput{Name: "drop"})
	require.NoError(t, err)
	for _, id := range []string{keep.ID, drop.ID, drop.ID} {
		_, err = f.ads.CreateAd(ctx, port.CreateAdInput{ClientID: id, AdName: "a"})
		require.NoError(t, err)
	}

	n, err := f.clients.DeleteClient(ctx, drop.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = f.clients.GetClient(ctx, drop.ID)
	assert.True(t, domain.IsNotFound(err))
	ads, err := f.ads.ListAllAds(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, domain.ClientRef(keep.ID), ads[0].ClientID)

	n, err = f.clients.DeleteClient(ctx, drop.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestMergeDuplicatesLossFree ensures every ad of a duplicate group ends up
// on the earliest client and only that client survives.
func TestMergeDuplicatesLossFree(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	add := func(name string) domain.Client {
		c, err := f.clients.AddClient(ctx, port.AddClientInput{Name: name})
		require.NoError(t, err)
		f.clock.Advance(time.Hour)
		return c
	}
	placeAds := func(c domain.Client, n int) {
		for range n {
			_, err := f.ads.CreateAd(ctx, port.CreateAdInput{ClientID: c.ID, AdName: "same", Link: "same"})
			require.NoError(t, err)
		}
	}

	first := add("Sara Ali")
	second := add("sara  ali")
	other := add("Nadia")
	third := add(" SARA ALI ")
	// A legacy record stored before names were normalized.
	legacy := domain.Client{ID: "legacy", Name: "NADIA ", CreatedAt: t0.Add(-time.Hour)}
	require.NoError(t, clientCollection(f.store).put(ctx, legacy))

	placeAds(first, 1)
	placeAds(second, 2)
	placeAds(third, 1)
	placeAds(other, 3)

	before, err := f.ads.ListAllAds(ctx)
	require.NoError(t, err)

	merged, err := f.clients.MergeDuplicates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, merged)

	clients, err := f.clients.ListClients(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, legacy.ID}, clientIDs(clients))

	after, err := f.ads.ListAllAds(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))

	sara, err := f.ads.ListAdsByClient(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, sara, 4)
	nadia, err := f.ads.ListAdsByClient(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Len(t, nadia, 3)

	// Idempotent: nothing left to merge.
	again, err := f.clients.MergeDuplicates(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)
	final, err := f.ads.ListAllAds(ctx)
	require.NoError(t, err)
	assert.Equal(t, after, final)
}

func TestMergeDuplicatesStopsOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewMockStore(t)
	clock := newFakeClock(t0)
	ids := &seqIDs{}
	ads := NewAdUseCase(store, clock, ids, domain.DefaultRules())
	uc := NewClientUseCase(store, ads, clock, ids, discardLogger())

	primary := domain.Client{ID: "p", Name: "dup", CreatedAt: t0}
	dup := domain.Client{ID: "d", Name: "dup", CreatedAt: t0.Add(time.Hour)}
	clients := clientCollection(store)
	adsCol := adCollection(store)
	recP, err := clients.encode(primary)
	require.NoError(t, err)
	recD, err := clients.encode(dup)
	require.NoError(t, err)
	recAd, err := adsCol.encode(domain.Ad{ID: "a1", ClientID: "d", AdName: "x", CreatedAt: t0, EndAt: t0})
	require.NoError(t, err)

	boom := errors.New("disk full")
	store.EXPECT().GetAll(mock.Anything, port.CollectionClients).Return([]port.Record{recD, recP}, nil)
	store.EXPECT().GetAllByIndex(mock.Anything, port.CollectionAds, port.IndexClientID, mock.Anything).
		Return([]port.Record{recAd}, nil)
	store.EXPECT().Put(mock.Anything, port.CollectionAds, mock.MatchedBy(func(rec port.Record) bool {
		return rec.Key == "a1" && rec.Indexes[port.IndexClientID] == "p"
	})).Return(port.Record{}, boom)

	merged, err := uc.MergeDuplicates(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, merged)
	store.AssertNotCalled(t, "Delete", mock.Anything, port.CollectionClients, "d")
}

func names(clients []domain.Client) []string {
	out := make([]string, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.Name)
	}
	return out
}

func clientIDs(clients []domain.Client) []string {
	out := make([]string, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.ID)
	}
	slices.Sort(out)
	return out
}
