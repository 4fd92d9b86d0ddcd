package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenue is the revenue attributed to one YYYY-MM creation month.
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DailyRevenue is the revenue attributed to one calendar day (YYYY-MM-DD).
type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ClientRevenue ranks a client by the ads it bought.
type ClientRevenue struct {
	ClientID   ClientRef       `json:"clientId"`
	ClientName string          `json:"clientName"`
	AdsCount   int             `json:"adsCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// InactiveClient ranks a client by how little it came back.
type InactiveClient struct {
	ClientID     string    `json:"clientId"`
	ClientName   string    `json:"clientName"`
	AdsCount     int       `json:"adsCount"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}

// RetentionStats summarises how many clients came back for another ad.
type RetentionStats struct {
	TotalClients     int     `json:"totalClients"`
	ReturningClients int     `json:"returningClients"`
	OneTimeClients   int     `json:"oneTimeClients"`
	RetentionRate    float64 `json:"retentionRate"`
	AvgAdsPerClient  float64 `json:"avgAdsPerClient"`
}

// Overview is the dashboard summary.
type Overview struct {
	Counts       AdCounts        `json:"counts"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	Balance      decimal.Decimal `json:"balance"`
	AdsRemaining int64           `json:"adsRemaining"`
}

// Alerts lists the conditions worth notifying about at an instant.
type Alerts struct {
	ExpiringAds     []Ad     `json:"expiringAds"`
	LowBalance      bool     `json:"lowBalance"`
	NewClientsToday []Client `json:"newClientsToday"`
}
