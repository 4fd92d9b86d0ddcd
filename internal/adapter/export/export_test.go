package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"pledge-data/internal/core/domain"
)

var now = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func sampleRows() []Row {
	ads := []domain.Ad{
		{ID: "a1", ClientID: "c1", AdName: "Spring, sale", Link: "https://x/1", CreatedAt: now.Add(-time.Hour), EndAt: now.Add(71 * time.Hour)},
		{ID: "a2", ClientID: "gone", AdName: "Old", CreatedAt: now.AddDate(0, 0, -10), EndAt: now.AddDate(0, 0, -4), RenewedCount: 2},
	}
	clients := []domain.Client{{ID: "c1", Name: "sara"}}
	return Rows(ads, clients, now)
}

func TestRows(t *testing.T) {
	rows := sampleRows()
	require.Len(t, rows, 2)
	assert.Equal(t, "sara", rows[0].ClientName)
	assert.Equal(t, domain.StatusNew, rows[0].Status)
	assert.Equal(t, domain.UnknownClientName, rows[1].ClientName)
	assert.Equal(t, domain.StatusExpired, rows[1].Status)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ClientId", "AdName", "Link", "CreatedAt", "EndAt", "Status", "RenewedCount"}, records[0])
	assert.Equal(t, []string{"c1", "Spring, sale", "https://x/1", "2024-05-20T09:00:00.000Z", "2024-05-23T09:00:00.000Z", "new", "0"}, records[1])
	assert.Equal(t, "expired", records[2][5])
	assert.Equal(t, "2", records[2][6])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "ClientId,AdName,Link,CreatedAt,EndAt,Status,RenewedCount\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ClientName", rows[0][7])
	assert.Equal(t, "Spring, sale", rows[1][1])
	assert.Equal(t, "sara", rows[1][7])
	assert.Equal(t, domain.UnknownClientName, rows[2][7])
	assert.Equal(t, "2", rows[2][6])
}
