package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

func (a *App) Cabinets(ctx context.Context, args []string) error {
	list, err := a.cabinets.List(ctx, a.owner)
	if err != nil {
		return err
	}
	renderCabinets(a.out, list)
	return nil
}

func (a *App) Racks(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("racks <roomID>")
	}
	list, err := a.cabinets.Racks(ctx, args[0])
	if err != nil {
		return err
	}
	renderCabinets(a.out, list)
	return nil
}

func (a *App) AddCabinet(ctx context.Context, args []string) error {
	var c models.Cabinet
	var err error

	if c.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	kind, err := GetSimpleText(a.reader, "Type (cabinet, room, rack) [cabinet]", a.out)
	if err != nil {
		return err
	}
	c.Type = models.CabinetType(strings.ToLower(kind))
	if kind == "" {
		c.Type = models.CabinetTypeCabinet
	}
	if c.Type == models.CabinetTypeRack {
		if c.ParentID, err = GetSimpleText(a.reader, "Room ID", a.out); err != nil {
			return err
		}
	}
	if c.Dimensions.Rows, err = GetInt(a.reader, "Rows", 1, a.out); err != nil {
		return err
	}
	if c.Dimensions.Columns, err = GetInt(a.reader, "Columns", 1, a.out); err != nil {
		return err
	}
	if c.Dimensions.Depth, err = GetInt(a.reader, "Depth", 1, a.out); err != nil {
		return err
	}
	zone, err := GetSimpleText(a.reader, "Temperature zone (optional)", a.out)
	if err != nil {
		return err
	}
	if zone != "" {
		c.Zone = &models.Zone{Name: zone}
		if c.Zone.TargetTempCelsius, err = GetOptionalFloat(a.reader, "Target temperature °C", a.out); err != nil {
			return err
		}
	}

	created, err := a.cabinets.Add(ctx, a.owner, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s %q with id %s\n", created.Type, created.Name, created.ID)
	return nil
}

func (a *App) Bottles(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("bottles <cabinetID>")
	}
	list, err := a.bottles.List(ctx, args[0])
	if err != nil {
		return err
	}
	renderBottles(a.out, list)
	return nil
}

func (a *App) AddBottle(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("addbottle <cabinetID>")
	}
	b := models.Bottle{CabinetID: args[0], Status: models.StatusStored}
	if err := a.readWine(&b); err != nil {
		return err
	}
	var err error
	if b.Location.Row, err = GetInt(a.reader, "Row", 0, a.out); err != nil {
		return err
	}
	if b.Location.Col, err = GetInt(a.reader, "Column", 0, a.out); err != nil {
		return err
	}
	if b.Location.DepthIndex, err = GetInt(a.reader, "Depth position", 0, a.out); err != nil {
		return err
	}

	created, err := a.bottles.Add(ctx, a.owner, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %q at %s with id %s\n", created.Details.Name, created.Location, created.ID)
	return nil
}

// AddCase adds the same wine to several slots of one cabinet. Slots are given
// as row,col or row,col,depth.
func (a *App) AddCase(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("addcase <cabinetID> <row,col[,depth]>...")
	}
	locations := make([]models.Location, 0, len(args)-1)
	for _, arg := range args[1:] {
		loc, err := parseLocation(arg)
		if err != nil {
			return err
		}
		locations = append(locations, loc)
	}

	b := models.Bottle{CabinetID: args[0], Status: models.StatusStored}
	if err := a.readWine(&b); err != nil {
		return err
	}

	res, err := a.bottles.AddMany(ctx, a.owner, b, locations)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %d of %d bottles of %q\n", res.Succeeded, len(locations), b.Details.Name)
	for i, loc := range locations {
		if err, ok := res.Errors[i]; ok {
			fmt.Fprintf(a.out, "  %s: %v\n", loc, err)
		}
	}
	return nil
}

func parseLocation(s string) (models.Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return models.Location{}, usage("slot %q must be row,col or row,col,depth", s)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return models.Location{}, usage("slot %q must be row,col or row,col,depth", s)
		}
		n[i] = v
	}
	return models.Location{Row: n[0], Col: n[1], DepthIndex: n[2]}, nil
}

// readWine asks for the details shared by every bottle of a wine.
func (a *App) readWine(b *models.Bottle) error {
	var err error
	if b.Details.Name, err = GetSimpleText(a.reader, "Wine name", a.out); err != nil {
		return err
	}
	if b.Details.Producer, err = GetSimpleText(a.reader, "Winery", a.out); err != nil {
		return err
	}
	if b.Details.Vintage, err = GetSimpleText(a.reader, "Vintage", a.out); err != nil {
		return err
	}
	kind, err := GetSimpleText(a.reader, "Type (Red, White, Rose, Sparkling, Dessert, Other) [Red]", a.out)
	if err != nil {
		return err
	}
	b.Details.Type = models.WineTypeRed
	if kind != "" {
		if b.Details.Type, err = models.ParseWineType(kind); err != nil {
			return err
		}
	}
	if b.Details.Country, err = GetSimpleText(a.reader, "Country (optional)", a.out); err != nil {
		return err
	}
	if b.Details.Region, err = GetSimpleText(a.reader, "Region (optional)", a.out); err != nil {
		return err
	}
	b.Details.Price, err = GetOptionalFloat(a.reader, "Price", a.out)
	return err
}

func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show <bottleID>")
	}
	b, err := a.bottles.GetByID(ctx, args[0])
	if err != nil {
		return err
	}
	renderBottle(a.out, b)
	return nil
}

func (a *App) Consume(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usage("consume <bottleID> [rating]")
	}
	var rating *int
	if len(args) == 2 {
		r, err := strconv.Atoi(args[1])
		if err != nil {
			return usage("rating must be a number between %d and %d", models.MinRating, models.MaxRating)
		}
		rating = &r
	}
	notes, err := GetMultiline(a.reader, "Tasting notes (optional)", a.out)
	if err != nil {
		return err
	}
	if err := a.bottles.Consume(ctx, args[0], rating, notes); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Bottle marked as consumed")
	return nil
}

func (a *App) Open(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("open <bottleID>")
	}
	if err := a.bottles.Open(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Bottle marked as opened")
	return nil
}

func (a *App) History(ctx context.Context, args []string) error {
	list, err := a.bottles.History(ctx, a.owner)
	if err != nil {
		return err
	}
	renderHistory(a.out, list)
	return nil
}

func (a *App) Label(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("label <bottleID> <image>")
	}
	data, err := a.readFile(args[1])
	if err != nil {
		return err
	}
	key, err := a.bottles.AttachLabel(ctx, args[0], http.DetectContentType(data), data)
	if errors.Is(err, common.ErrUnavailable) {
		return errors.New("label upload needs a connection to the server")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Label stored as", key)
	return nil
}

func (a *App) Status(ctx context.Context, args []string) error {
	st, err := a.sync.Status(ctx)
	if err != nil {
		return err
	}
	mode := ModeOffline
	if st.Online {
		mode = ModeOnline
	}
	last := "never"
	if st.LastSyncTime != nil {
		last = st.LastSyncTime.Local().Format("2006-01-02 15:04:05")
	}
	fmt.Fprintf(a.out, "Mode: %s\nPending changes: %d\nLast sync: %s\n", mode, st.PendingOperations, last)
	return nil
}

func (a *App) Sync(ctx context.Context, args []string) error {
	s, err := a.sync.Drain(ctx)
	if errors.Is(err, common.ErrUnavailable) {
		fmt.Fprintln(a.out, "Offline: changes stay queued until the server is reachable")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sync complete: %d succeeded, %d failed\n", s.Succeeded, s.Failed)
	return nil
}

func (a *App) Clear(ctx context.Context, args []string) error {
	answer, err := GetSimpleText(a.reader, "This deletes all cached data and unsynced changes. Type 'yes' to continue", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.sync.ClearAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Local data cleared")
	return nil
}
