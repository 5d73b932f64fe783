// Package ticket renders the booking confirmation PDF.
package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/iliyamo/train-trip-booking/internal/catalog"
	"github.com/iliyamo/train-trip-booking/internal/repository"
)

// Build renders an e-ticket for an archived booking and returns the PDF
// bytes and a download filename.  Stations are printed as their Latin codes
// because the built-in PDF core fonts carry no Arabic glyphs.
func Build(rec *repository.BookingRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAIN E-TICKET")
	pdf.Ln(12)

	seat := "-"
	if rec.Seat != nil {
		seat = fmt.Sprintf("%d", *rec.Seat)
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference  : %s", rec.Reference),
		fmt.Sprintf("Passenger  : %s", safe(rec.PassengerName, "-")),
		fmt.Sprintf("Train      : %s", rec.TrainNumber),
		fmt.Sprintf("Route      : %s -> %s", stationCode(rec.FromStation), stationCode(rec.ToStation)),
		fmt.Sprintf("Departure  : %s", rec.Departure),
		fmt.Sprintf("Arrival    : %s", rec.Arrival),
		fmt.Sprintf("Class      : %s", rec.Plan),
		fmt.Sprintf("Seat       : %s", seat),
		fmt.Sprintf("Total paid : SAR %.2f", float64(rec.TotalCents)/100),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger. Please present it with a matching identity document at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(rec.Reference))
	return buf.Bytes(), filename, nil
}

func stationCode(name string) string {
	return catalog.ResolveStation(name)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
