package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

const dateLayout = "2006-01-02"

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func pendingMark(id string) string {
	if models.IsLocalID(id) {
		return "*"
	}
	return ""
}

func renderCabinets(w io.Writer, list []models.Cabinet) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No cabinets")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "", "Name", "Type", "Grid", "Capacity", "Zone"})
	for _, c := range list {
		zone := ""
		if c.Zone != nil {
			zone = c.Zone.Name
		}
		t.AppendRow(table.Row{
			c.ID, pendingMark(c.ID), c.Name, c.Type,
			fmt.Sprintf("%dx%dx%d", c.Dimensions.Rows, c.Dimensions.Columns, c.Dimensions.Depth),
			c.Dimensions.Capacity(), zone,
		})
	}
	t.Render()
}

func renderBottles(w io.Writer, list []models.Bottle) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No bottles")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "", "Location", "Name", "Winery", "Vintage", "Type"})
	for _, b := range list {
		t.AppendRow(table.Row{
			b.ID, pendingMark(b.ID), b.Location, b.Details.Name, b.Details.Producer, b.Details.Vintage, b.Details.Type,
		})
	}
	t.Render()
}

func renderHistory(w io.Writer, list []models.Bottle) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No history yet")
		return
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Vintage", "Status", "Date", "Rating", "Notes"})
	for _, b := range list {
		date := ""
		switch {
		case b.ConsumedAt != nil:
			date = b.ConsumedAt.Local().Format(dateLayout)
		case b.OpenedAt != nil:
			date = b.OpenedAt.Local().Format(dateLayout)
		}
		rating := ""
		if b.Rating != nil {
			rating = strconv.Itoa(*b.Rating) + "/" + strconv.Itoa(models.MaxRating)
		}
		t.AppendRow(table.Row{b.ID, b.Details.Name, b.Details.Vintage, b.Status, date, rating, b.Notes})
	}
	t.Render()
}

func renderBottle(w io.Writer, b models.Bottle) {
	t := newTable(w)
	rows := []table.Row{
		{"ID", b.ID + pendingMark(b.ID)},
		{"Name", b.Details.Name},
		{"Winery", b.Details.Producer},
		{"Vintage", b.Details.Vintage},
		{"Type", b.Details.Type},
		{"Cabinet", b.CabinetID},
		{"Location", b.Location},
		{"Status", b.Status},
		{"Added", b.AddedAt.Local().Format(dateLayout)},
	}
	if origin := joinNonEmpty(b.Details.Region, b.Details.Country); origin != "" {
		rows = append(rows, table.Row{"Origin", origin})
	}
	if b.Details.Price != nil {
		rows = append(rows, table.Row{"Price", fmt.Sprintf("%.2f", *b.Details.Price)})
	}
	if b.PeakWindow != nil {
		rows = append(rows, table.Row{"Drink", fmt.Sprintf("%d-%d", b.PeakWindow.Start, b.PeakWindow.End)})
	}
	if b.Rating != nil {
		rows = append(rows, table.Row{"Rating", fmt.Sprintf("%d/%d", *b.Rating, models.MaxRating)})
	}
	if b.Notes != "" {
		rows = append(rows, table.Row{"Notes", b.Notes})
	}
	if b.LabelImageKey != "" {
		rows = append(rows, table.Row{"Label", b.LabelImageKey})
	}
	t.AppendRows(rows)
	t.Render()
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
