// Package export renders the ad book as CSV and XLSX spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"pledge-data/internal/core/domain"
)

// timeLayout matches the millisecond ISO-8601 form used in backups.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

const sheetName = "Ads"

var csvHeader = []string{"ClientId", "AdName", "Link", "CreatedAt", "EndAt", "Status", "RenewedCount"}

// Row is one exported ad with its status evaluated at export time.
type Row struct {
	Ad         domain.Ad
	ClientName string
	Status     domain.Status
}

// Rows pairs ads with their resolved client names and status at now.
func Rows(ads []domain.Ad, clients []domain.Client, now time.Time) []Row {
	dir := domain.NewClientDirectory(clients)
	rows := make([]Row, 0, len(ads))
	for _, ad := range ads {
		rows = append(rows, Row{
			Ad:         ad,
			ClientName: dir.NameOf(ad.ClientID),
			Status:     domain.AdStatus(ad, now),
		})
	}
	return rows
}

func (r Row) csvRecord() []string {
	return []string{
		r.Ad.ClientID.String(),
		r.Ad.AdName,
		r.Ad.Link,
		r.Ad.CreatedAt.UTC().Format(timeLayout),
		r.Ad.EndAt.UTC().Format(timeLayout),
		string(r.Status),
		strconv.Itoa(r.Ad.RenewedCount),
	}
}

// WriteCSV writes the header and one line per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.csvRecord()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a workbook with a single "Ads" sheet holding the CSV
// columns plus the resolved client name.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	header := append(append([]string{}, csvHeader...), "ClientName")
	if err := setRow(f, 1, toAny(header)); err != nil {
		return err
	}
	for i, r := range rows {
		values := []any{
			r.Ad.ClientID.String(),
			r.Ad.AdName,
			r.Ad.Link,
			r.Ad.CreatedAt.UTC().Format(timeLayout),
			r.Ad.EndAt.UTC().Format(timeLayout),
			string(r.Status),
			r.Ad.RenewedCount,
			r.ClientName,
		}
		if err := setRow(f, i+2, values); err != nil {
			return err
		}
	}

	for col, width := range map[string]float64{"A": 38, "B": 24, "C": 40, "D": 26, "E": 26, "F": 10, "G": 14, "H": 24} {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err = f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
