// Package export renders visit sets to the flat tabular form used by the
// admin download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rajudas/field-sales-api/internal/entity"
)

// adminColumns is the fixed column ordering of the admin export.
var adminColumns = []string{
	"ID", "Date", "Time", "SR Name", "Store", "Type", "Category",
	"Phone", "Lead", "Products", "Lat", "Lon", "Map",
}

// WriteCSV streams the record set as CSV in the fixed admin column order.
func WriteCSV(w io.Writer, visits []entity.VisitRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(adminColumns); err != nil {
		return err
	}

	for _, v := range visits {
		row := []string{
			strconv.Itoa(v.ID),
			v.VisitDate,
			v.VisitTime,
			v.SRName,
			v.StoreName,
			v.VisitType,
			v.StoreCategory,
			v.PhoneNumber,
			v.LeadType,
			v.Products,
			formatCoord(v.Latitude),
			formatCoord(v.Longitude),
			v.MapsURL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCoord(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
