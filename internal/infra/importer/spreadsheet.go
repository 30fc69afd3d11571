// Package importer is the one-shot bulk import path: it maps spreadsheet
// rows exported from the old form tool onto visit records, using the same
// category and product conventions as live submissions.
package importer

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

// PlaceholderImage stands in for rows that carry no photo data.
const PlaceholderImage = "Imported from Excel"

// Column headers as the legacy spreadsheet names them.
const (
	colTimestamp    = "Timestamp"
	colStoreName    = "STORE NAME AND CONTACT PERSON"
	colPhone        = "PHONE NUMBER"
	colTime         = "TIME"
	colProducts     = "TOBACCO PRODUCTS INTERESTED IN/THEY DEAL IN"
	colOrderDetails = "ORDER DETAILS IF CONVERTED"
	colLocAnswer    = "CLICK THE LINK TO RECORD LOCATION. DID YOU RECORD THE LOCATION?"
	colCategory     = "STORE CATEGORY"
	colSRName       = "SR NAME"
	colLeadType     = "LEAD TYPE"
	colFollowUp     = "FOLLOW UP DATE"
	colVisitType    = "STORE VISIT TYPE"
	colDate         = "DATE"
	colLatitude     = "LATITUDE"
	colLongitude    = "LONGITUDE"
)

type Summary struct {
	Imported int
	Skipped  int
	Failed   int
}

type Importer struct {
	Repo usecase.VisitRepositoryInterface

	// OwnerUsername is assigned to every imported row; the spreadsheet has no
	// user column.
	OwnerUsername string
}

func New(repo usecase.VisitRepositoryInterface, ownerUsername string) *Importer {
	return &Importer{Repo: repo, OwnerUsername: ownerUsername}
}

// Import reads the first sheet and creates one record per usable row. Rows
// with an empty store name are skipped; row-level failures are counted and
// logged but do not stop the run.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Summary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Summary{}, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Summary{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Summary{}, fmt.Errorf("sheet %s is empty", sheet)
	}

	header := indexHeader(rows[0])

	var sum Summary
	for i, row := range rows[1:] {
		cell := func(name string) string {
			idx, ok := header[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		if cell(colStoreName) == "" {
			sum.Skipped++
			continue
		}

		record := im.mapRow(cell)
		if _, err := im.Repo.Create(ctx, record); err != nil {
			log.Printf("[Import] row %d failed: %v", i+2, err)
			sum.Failed++
			continue
		}
		sum.Imported++
	}

	return sum, nil
}

func (im *Importer) mapRow(cell func(string) string) *entity.VisitRecord {
	v := &entity.VisitRecord{
		SRName:                 orDefault(cell(colSRName), "Unknown"),
		Username:               im.OwnerUsername,
		StoreName:              cell(colStoreName),
		VisitType:              orDefault(cell(colVisitType), entity.VisitTypeNew),
		StoreCategory:          entity.NormalizeCategory(cell(colCategory)),
		PhoneNumber:            cell(colPhone),
		LeadType:               orDefault(cell(colLeadType), "COLD"),
		FollowUpDate:           cell(colFollowUp),
		Products:               orDefault(cell(colProducts), "NONE"),
		OrderDetails:           cell(colOrderDetails),
		LocationRecordedAnswer: orDefault(cell(colLocAnswer), entity.LocationRecordedNo),
		ImageData:              PlaceholderImage,
	}

	v.VisitDate = parseDate(cell(colDate), cell(colTimestamp))
	v.VisitTime = parseTime(cell(colTime))

	if lat, ok := parseFloat(cell(colLatitude)); ok {
		if lon, ok := parseFloat(cell(colLongitude)); ok {
			v.Latitude = &lat
			v.Longitude = &lon
			v.MapsURL = entity.MapsURL(lat, lon)
		}
	}

	return v
}

func indexHeader(headerRow []string) map[string]int {
	idx := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var dateLayouts = []string{"2006-01-02", "01-02-06", "1/2/2006", "2006-01-02 15:04:05", "1/2/2006 15:04:05"}

// parseDate prefers the DATE column, falls back to the form Timestamp and
// finally to today.
func parseDate(dateCell, timestampCell string) string {
	for _, raw := range []string{dateCell, timestampCell} {
		if raw == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}
	return time.Now().Format("2006-01-02")
}

func parseTime(raw string) string {
	for _, layout := range []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05")
		}
	}
	return time.Now().Format("15:04:05")
}
