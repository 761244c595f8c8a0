package spreadsheet

import (
	"fmt"
	"io"
	"math"

	"tender_finder/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	TendersSheet = "Tenders"
	defaultSheet = "Sheet1"
)

var tenderHeaders = []interface{}{
	"ID", "Municipality", "Province", "Location", "Status", "Winner",
	"Tender deadline", "Publication date", "Properties",
	"Expensive ratio", "Midrange ratio", "Social ratio",
	"Latitude", "Longitude", "Distance (km)", "Relevancy", "Details",
}

// WriteTenders renders ranked tenders as an XLSX workbook with one header row.
// Missing values are written as empty strings.
func WriteTenders(w io.Writer, items []entities.RankedTender) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(TendersSheet)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(TendersSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", tenderHeaders); err != nil {
		return err
	}

	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, tenderRow(it)); err != nil {
			return fmt.Errorf("failed to write tender %d: %w", it.Tender.ID, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func tenderRow(it entities.RankedTender) []interface{} {
	t := it.Tender
	return []interface{}{
		t.ID, t.Municipality, t.Province, t.Location, t.Status, t.Winner,
		dateCell(t), publicationCell(t), intCell(t.NumberOfProperties),
		t.ExpensiveRatio, t.MidrangeRatio, t.SocialRatio,
		floatCell(t.TenderLatitude), floatCell(t.TenderLongitude),
		distanceCell(it.DistanceKm), it.Relevancy, t.Details,
	}
}

func dateCell(t entities.Tender) interface{} {
	if t.TenderDeadline == nil {
		return ""
	}
	return t.TenderDeadline.Format(entities.DateLayout)
}

func publicationCell(t entities.Tender) interface{} {
	if t.PublicationDate == nil {
		return ""
	}
	return t.PublicationDate.Format(entities.DateLayout)
}

func intCell(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func distanceCell(d float64) interface{} {
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return ""
	}
	return math.Round(d*100) / 100
}
