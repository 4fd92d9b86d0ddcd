package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pledge-data/internal/core/domain"
	"pledge-data/internal/core/port"
)

func seedBackupFixture(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	c, err := f.clients.AddClient(ctx, port.AddClientInput{Name: "Sara", Phone: "0600"})
	require.NoError(t, err)
	_, err = f.budget.AddPack(ctx)
	require.NoError(t, err)
	_, err = f.placement.PlaceAd(ctx, port.PlaceAdInput{CreateAdInput: port.CreateAdInput{ClientID: c.ID, AdName: "spring"}})
	require.NoError(t, err)
	_, err = f.store.Put(ctx, port.CollectionNotes, port.Record{Key: c.ID, Data: []byte(`{"clientId":"` + c.ID + `","text":"pays cash"}`)})
	require.NoError(t, err)
	_, err = f.store.Put(ctx, port.CollectionRatings, port.Record{Key: c.ID, Data: []byte(`{"clientId":"` + c.ID + `","stars":4}`)})
	require.NoError(t, err)
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newFixture()
	seedBackupFixture(t, src)

	doc, err := src.backup.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.BackupVersion, doc.Version)
	assert.Equal(t, t0, doc.CreatedAt)
	assert.Len(t, doc.Ads, 1)
	assert.Len(t, doc.Clients, 1)
	assert.Len(t, doc.Budget, 1)
	assert.Len(t, doc.Notes, 1)
	assert.Len(t, doc.Ratings, 1)

	// Through JSON, the way the document leaves the process.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	var decoded domain.Backup
	require.NoError(t, json.Unmarshal(raw, &decoded))

	dst := newFixture()
	_, err = dst.clients.AddClient(ctx, port.AddClientInput{Name: "to be replaced"})
	require.NoError(t, err)
	require.NoError(t, dst.backup.Import(ctx, decoded))

	again, err := dst.backup.Export(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc.Ads[0]), string(again.Ads[0]))
	assert.JSONEq(t, string(doc.Clients[0]), string(again.Clients[0]))
	assert.JSONEq(t, string(doc.Budget[0]), string(again.Budget[0]))
	assert.JSONEq(t, string(doc.Notes[0]), string(again.Notes[0]))
	assert.JSONEq(t, string(doc.Ratings[0]), string(again.Ratings[0]))

	// Indexes are rebuilt for imported records.
	clients, err := dst.clients.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	byClient, err := dst.ads.ListAdsByClient(ctx, clients[0].ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 1)

	balance, err := dst.budget.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "49", balance.String())
}

func TestImportRejectsInvalidDocumentUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedBackupFixture(t, f)
	before, err := f.backup.Export(ctx)
	require.NoError(t, err)

	cases := map[string]domain.Backup{
		"ad without id":      {Ads: []json.RawMessage{json.RawMessage(`{"clientId":"c"}`)}},
		"malformed client":   {Clients: []json.RawMessage{json.RawMessage(`{"id":5}`)}},
		"note without owner": {Notes: []json.RawMessage{json.RawMessage(`{"text":"x"}`)}},
		"rating not object":  {Ratings: []json.RawMessage{json.RawMessage(`[1]`)}},
		"ad ends before it starts": {Ads: []json.RawMessage{json.RawMessage(
			`{"id":"a1","clientId":"c","adName":"x","createdAt":"2024-05-20T10:00:00Z","endAt":"2024-05-19T10:00:00Z"}`)}},
		"ad without name": {Ads: []json.RawMessage{json.RawMessage(
			`{"id":"a1","clientId":"c","createdAt":"2024-05-20T10:00:00Z","endAt":"2024-05-23T10:00:00Z"}`)}},
		"ad without client": {Ads: []json.RawMessage{json.RawMessage(
			`{"id":"a1","adName":"x","createdAt":"2024-05-20T10:00:00Z","endAt":"2024-05-23T10:00:00Z"}`)}},
		"budget balance not a number": {Budget: []json.RawMessage{json.RawMessage(`{"id":"main","balance":"abc"}`)}},
		"budget balance out of range": {Budget: []json.RawMessage{json.RawMessage(`{"id":"main","balance":"1e5000000"}`)}},
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			err := f.backup.Import(ctx, doc)
			assert.True(t, domain.IsValidation(err), "got %v", err)

			after, err := f.backup.Export(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestRejectedBudgetImportKeepsLedgerUsable(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	err := f.backup.Import(ctx, domain.Backup{
		Budget: []json.RawMessage{json.RawMessage(`{"id":"main","balance":"abc"}`)},
	})
	require.True(t, domain.IsValidation(err), "got %v", err)

	_, err = f.budget.SetBalance(ctx, decimal.NewFromInt(10))
	require.NoError(t, err)
	b, err := f.budget.DeductForAd(ctx)
	require.NoError(t, err)
	assert.Equal(t, "-7", b.Balance.String())
}

func TestImportDefaultsBudgetKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.backup.Import(ctx, domain.Backup{
		Budget: []json.RawMessage{json.RawMessage(`{"balance":"34","spent":"0","purchases":[]}`)},
	}))

	balance, err := f.budget.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "34", balance.String())
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	seedBackupFixture(t, f)

	require.NoError(t, f.backup.Reset(ctx))
	for _, name := range port.Collections {
		recs, err := f.store.GetAll(ctx, name)
		require.NoError(t, err)
		assert.Empty(t, recs, name)
	}
}
