// Package analytics folds snapshots of ads and clients into revenue,
// ranking and retention reports. Every function is pure.
package analytics

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"pledge-data/internal/core/domain"
)

// DefaultTopLimit is the ranking length used when a caller passes zero.
const DefaultTopLimit = 5

// TotalRevenue counts every ad once at the nominal adPrice.
func TotalRevenue(adPrice decimal.Decimal, ads []domain.Ad) decimal.Decimal {
	return adPrice.Mul(decimal.NewFromInt(int64(len(ads))))
}

// MonthlyRevenue groups ads by the UTC YYYY-MM of their creation and
// returns the months in chronological order.
func MonthlyRevenue(adPrice decimal.Decimal, ads []domain.Ad) []domain.MonthlyRevenue {
	groups := make(map[string]decimal.Decimal)
	for _, ad := range ads {
		month := ad.CreatedAt.UTC().Format("2006-01")
		groups[month] = groups[month].Add(adPrice)
	}
	out := make([]domain.MonthlyRevenue, 0, len(groups))
	for month, revenue := range groups {
		out = append(out, domain.MonthlyRevenue{Month: month, Revenue: revenue})
	}
	slices.SortFunc(out, func(a, b domain.MonthlyRevenue) int { return cmp.Compare(a.Month, b.Month) })
	return out
}

// TopClients ranks clients by revenue, highest first. Ads whose client no
// longer exists are reported under domain.UnknownClientName. Ties keep the
// order in which the clients first appear in ads.
func TopClients(limit int, adPrice decimal.Decimal, ads []domain.Ad, clients []domain.Client) []domain.ClientRevenue {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	dir := domain.NewClientDirectory(clients)

	var order []domain.ClientRef
	counts := make(map[domain.ClientRef]int)
	for _, ad := range ads {
		if _, seen := counts[ad.ClientID]; !seen {
			order = append(order, ad.ClientID)
		}
		counts[ad.ClientID]++
	}

	out := make([]domain.ClientRevenue, 0, len(order))
	for _, ref := range order {
		n := counts[ref]
		out = append(out, domain.ClientRevenue{
			ClientID:   ref,
			ClientName: dir.NameOf(ref),
			AdsCount:   n,
			Revenue:    adPrice.Mul(decimal.NewFromInt(int64(n))),
		})
	}
	slices.SortStableFunc(out, func(a, b domain.ClientRevenue) int { return b.Revenue.Cmp(a.Revenue) })
	return truncate(out, limit)
}

// WorstClients ranks clients from least to most engaged. Clients with at
// most one ad always rank worse than clients with more; within the same
// bucket longer inactivity ranks worse.
func WorstClients(limit int, ads []domain.Ad, clients []domain.Client, now time.Time) []domain.InactiveClient {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	counts := countByClient(ads)

	type ranked struct {
		domain.InactiveClient
		singleAd   bool
		inactivity time.Duration
	}
	rows := make([]ranked, 0, len(clients))
	for _, c := range clients {
		n := counts[domain.ClientRef(c.ID)]
		last := c.LastSeen()
		rows = append(rows, ranked{
			InactiveClient: domain.InactiveClient{
				ClientID:     c.ID,
				ClientName:   c.Name,
				AdsCount:     n,
				LastActiveAt: last,
			},
			singleAd:   n <= 1,
			inactivity: now.Sub(last),
		})
	}
	slices.SortStableFunc(rows, func(a, b ranked) int {
		if a.singleAd != b.singleAd {
			if a.singleAd {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.inactivity, a.inactivity)
	})

	out := make([]domain.InactiveClient, 0, min(limit, len(rows)))
	for _, r := range truncate(rows, limit) {
		out = append(out, r.InactiveClient)
	}
	return out
}

// RetentionStats buckets clients by how many ads they placed. Clients
// without ads are neither returning nor one-time. Ratios are rounded to two
// decimals and are zero when there are no clients.
func RetentionStats(ads []domain.Ad, clients []domain.Client) domain.RetentionStats {
	counts := countByClient(ads)
	stats := domain.RetentionStats{TotalClients: len(clients)}
	for _, c := range clients {
		switch n := counts[domain.ClientRef(c.ID)]; {
		case n > 1:
			stats.ReturningClients++
		case n == 1:
			stats.OneTimeClients++
		}
	}
	if stats.TotalClients > 0 {
		total := decimal.NewFromInt(int64(stats.TotalClients))
		stats.RetentionRate = decimal.NewFromInt(int64(stats.ReturningClients)).DivRound(total, 2).InexactFloat64()
		stats.AvgAdsPerClient = decimal.NewFromInt(int64(len(ads))).DivRound(total, 2).InexactFloat64()
	}
	return stats
}

// DailyRevenue returns days consecutive calendar-day buckets in loc ending
// with the day of now, oldest first. Each ad adds adPrice to the bucket of
// its creation day; ads outside the window are ignored.
func DailyRevenue(days int, ads []domain.Ad, adPrice decimal.Decimal, now time.Time, loc *time.Location) []domain.DailyRevenue {
	if days <= 0 {
		return []domain.DailyRevenue{}
	}
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	out := make([]domain.DailyRevenue, days)
	index := make(map[string]int, days)
	for i := range days {
		key := today.AddDate(0, 0, i-days+1).Format(time.DateOnly)
		out[i] = domain.DailyRevenue{Date: key, Revenue: decimal.Zero}
		index[key] = i
	}
	for _, ad := range ads {
		if i, ok := index[ad.CreatedAt.In(loc).Format(time.DateOnly)]; ok {
			out[i].Revenue = out[i].Revenue.Add(adPrice)
		}
	}
	return out
}

func countByClient(ads []domain.Ad) map[domain.ClientRef]int {
	counts := make(map[domain.ClientRef]int)
	for _, ad := range ads {
		counts[ad.ClientID]++
	}
	return counts
}

func truncate[T any](s []T, limit int) []T {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
