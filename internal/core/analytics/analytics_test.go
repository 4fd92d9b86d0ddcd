package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pledge-data/internal/core/domain"
)

var price = decimal.NewFromInt(300)

func ad(id, client string, created time.Time) domain.Ad {
	return domain.Ad{
		ID:        id,
		ClientID:  domain.ClientRef(client),
		AdName:    "ad " + id,
		CreatedAt: created,
		EndAt:     created.AddDate(0, 0, 3),
	}
}

func TestTotalRevenue(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ads := []domain.Ad{ad("1", "c1", now), ad("2", "c1", now.AddDate(0, -6, 0)), ad("3", "c2", now)}

	assert.True(t, TotalRevenue(price, ads).Equal(decimal.NewFromInt(900)))
	assert.True(t, TotalRevenue(price, nil).IsZero())
}

func TestMonthlyRevenue(t *testing.T) {
	ads := []domain.Ad{
		ad("1", "c1", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
		ad("2", "c1", time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC)),
		ad("3", "c2", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		ad("4", "c2", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
	}

	got := MonthlyRevenue(price, ads)
	require.Len(t, got, 3)
	assert.Equal(t, "2023-12", got[0].Month)
	assert.Equal(t, "2024-01", got[1].Month)
	assert.Equal(t, "2024-03", got[2].Month)
	assert.True(t, got[2].Revenue.Equal(decimal.NewFromInt(600)))
}

func TestTopClients(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clients := []domain.Client{{ID: "c1", Name: "alice"}, {ID: "c2", Name: "bob"}}
	ads := []domain.Ad{
		ad("1", "c1", now),
		ad("2", "c2", now),
		ad("3", "c2", now),
		ad("4", "gone", now),
		ad("5", "gone", now),
		ad("6", "gone", now),
	}

	got := TopClients(2, price, ads, clients)
	require.Len(t, got, 2)
	assert.Equal(t, domain.ClientRef("gone"), got[0].ClientID)
	assert.Equal(t, domain.UnknownClientName, got[0].ClientName)
	assert.True(t, got[0].Revenue.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "bob", got[1].ClientName)
	assert.Equal(t, 2, got[1].AdsCount)

	assert.Len(t, TopClients(0, price, ads, clients), 3)
}

func TestWorstClientsSingleAdBeatsInactivity(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	longAgo := now.AddDate(0, 0, -200)
	clients := []domain.Client{
		{ID: "loyal", Name: "loyal", CreatedAt: longAgo.AddDate(-1, 0, 0), LastActiveAt: &longAgo},
		{ID: "once", Name: "once", CreatedAt: now.AddDate(0, 0, -100)},
	}
	var ads []domain.Ad
	for i := range 5 {
		ads = append(ads, ad(fmt.Sprint("l", i), "loyal", longAgo))
	}
	ads = append(ads, ad("o1", "once", now.AddDate(0, 0, -100)))

	got := WorstClients(5, ads, clients, now)
	require.Len(t, got, 2)
	assert.Equal(t, "once", got[0].ClientID)
	assert.Equal(t, 1, got[0].AdsCount)
	assert.Equal(t, "loyal", got[1].ClientID)
	assert.Equal(t, longAgo, got[1].LastActiveAt)
}

func TestWorstClientsInactivityWithinBucket(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clients := []domain.Client{
		{ID: "recent", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "idle", CreatedAt: now.AddDate(0, 0, -30)},
		{ID: "none", CreatedAt: now.AddDate(0, 0, -10)},
	}
	ads := []domain.Ad{ad("1", "recent", now), ad("2", "idle", now)}

	got := WorstClients(2, ads, clients, now)
	require.Len(t, got, 2)
	assert.Equal(t, "idle", got[0].ClientID)
	assert.Equal(t, "none", got[1].ClientID)
}

func TestRetentionStats(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var clients []domain.Client
	var ads []domain.Ad
	for i := range 10 {
		id := fmt.Sprint("c", i)
		clients = append(clients, domain.Client{ID: id})
		switch {
		case i < 4:
			ads = append(ads, ad(id+"a", id, now), ad(id+"b", id, now))
		case i < 7:
			ads = append(ads, ad(id+"a", id, now))
		}
	}

	stats := RetentionStats(ads, clients)
	assert.Equal(t, 10, stats.TotalClients)
	assert.Equal(t, 4, stats.ReturningClients)
	assert.Equal(t, 3, stats.OneTimeClients)
	assert.Equal(t, 0.4, stats.RetentionRate)
	assert.Equal(t, 1.1, stats.AvgAdsPerClient)
}

func TestRetentionStatsRoundsAndHandlesEmpty(t *testing.T) {
	assert.Equal(t, domain.RetentionStats{}, RetentionStats(nil, nil))

	now := time.Now()
	clients := []domain.Client{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	ads := []domain.Ad{ad("1", "a", now), ad("2", "a", now), ad("3", "b", now), ad("4", "b", now)}
	stats := RetentionStats(ads, clients)
	assert.Equal(t, 0.67, stats.RetentionRate)
	assert.Equal(t, 1.33, stats.AvgAdsPerClient)
}

func TestDailyRevenue(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	ads := []domain.Ad{
		ad("1", "c1", now.AddDate(0, 0, -1)),
		ad("2", "c1", now.AddDate(0, 0, -2)),
		ad("3", "c2", now.AddDate(0, 0, -5)),
	}

	got := DailyRevenue(3, ads, price, now, time.UTC)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-06-08", got[0].Date)
	assert.Equal(t, "2024-06-09", got[1].Date)
	assert.Equal(t, "2024-06-10", got[2].Date)
	assert.True(t, got[0].Revenue.Equal(price))
	assert.True(t, got[1].Revenue.Equal(price))
	assert.True(t, got[2].Revenue.IsZero())
}

func TestDailyRevenueUsesLocalCalendarDays(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 6, 10, 1, 0, 0, 0, loc)
	// 23:30 UTC on the 9th is already the 10th in loc.
	created := time.Date(2024, 6, 9, 23, 30, 0, 0, time.UTC)

	got := DailyRevenue(2, []domain.Ad{ad("1", "c1", created)}, price, now, loc)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-06-10", got[1].Date)
	assert.True(t, got[1].Revenue.Equal(price))
	assert.True(t, got[0].Revenue.IsZero())
}
