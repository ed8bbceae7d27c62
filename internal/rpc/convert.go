// Package rpc converts between the domain models and the generated
// cellarkeeper.v1 messages.
package rpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	pb "github.com/dmitrijs2005/cellarkeeper/internal/proto"
)

// ClientIDHeader carries the id of the calling client install in metadata.
const ClientIDHeader = "x-cellar-client-id"

func LocationToProto(l models.Location) *pb.Location {
	return &pb.Location{Row: int32(l.Row), Col: int32(l.Col), DepthIndex: int32(l.DepthIndex)}
}

func LocationFromProto(l *pb.Location) models.Location {
	return models.Location{Row: int(l.GetRow()), Col: int(l.GetCol()), DepthIndex: int(l.GetDepthIndex())}
}

func dimensionsToProto(d models.Dimensions) *pb.Dimensions {
	return &pb.Dimensions{Rows: int32(d.Rows), Columns: int32(d.Columns), Depth: int32(d.Depth)}
}

func dimensionsFromProto(d *pb.Dimensions) models.Dimensions {
	return models.Dimensions{Rows: int(d.GetRows()), Columns: int(d.GetColumns()), Depth: int(d.GetDepth())}
}

func layoutToProto(l *models.RoomLayout) *pb.RoomLayout {
	if l == nil {
		return nil
	}
	return &pb.RoomLayout{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

func layoutFromProto(l *pb.RoomLayout) *models.RoomLayout {
	if l == nil {
		return nil
	}
	return &models.RoomLayout{X: l.GetX(), Y: l.GetY(), Width: l.GetWidth(), Height: l.GetHeight()}
}

func zoneToProto(z *models.Zone) *pb.Zone {
	if z == nil {
		return nil
	}
	return &pb.Zone{Name: z.Name, TargetTempCelsius: copyPtr(z.TargetTempCelsius)}
}

func zoneFromProto(z *pb.Zone) *models.Zone {
	if z == nil {
		return nil
	}
	return &models.Zone{Name: z.GetName(), TargetTempCelsius: copyPtr(z.TargetTempCelsius)}
}

func CabinetToProto(c models.Cabinet) *pb.Cabinet {
	return &pb.Cabinet{
		Id:         c.ID,
		OwnerId:    c.OwnerID,
		Name:       c.Name,
		Type:       string(c.Type),
		ParentId:   c.ParentID,
		Dimensions: dimensionsToProto(c.Dimensions),
		RoomLayout: layoutToProto(c.RoomLayout),
		Zone:       zoneToProto(c.Zone),
	}
}

func CabinetFromProto(c *pb.Cabinet) models.Cabinet {
	return models.Cabinet{
		ID:         c.GetId(),
		OwnerID:    c.GetOwnerId(),
		Name:       c.GetName(),
		Type:       models.CabinetType(c.GetType()),
		ParentID:   c.GetParentId(),
		Dimensions: dimensionsFromProto(c.GetDimensions()),
		RoomLayout: layoutFromProto(c.GetRoomLayout()),
		Zone:       zoneFromProto(c.GetZone()),
	}
}

func CabinetPatchToProto(p models.CabinetPatch) *pb.CabinetPatch {
	out := &pb.CabinetPatch{
		Name:       copyPtr(p.Name),
		ParentId:   copyPtr(p.ParentID),
		RoomLayout: layoutToProto(p.RoomLayout),
		Zone:       zoneToProto(p.Zone),
	}
	if p.Dimensions != nil {
		out.Dimensions = dimensionsToProto(*p.Dimensions)
	}
	return out
}

func CabinetPatchFromProto(p *pb.CabinetPatch) models.CabinetPatch {
	if p == nil {
		return models.CabinetPatch{}
	}
	out := models.CabinetPatch{
		Name:       copyPtr(p.Name),
		ParentID:   copyPtr(p.ParentId),
		RoomLayout: layoutFromProto(p.GetRoomLayout()),
		Zone:       zoneFromProto(p.GetZone()),
	}
	if p.GetDimensions() != nil {
		d := dimensionsFromProto(p.GetDimensions())
		out.Dimensions = &d
	}
	return out
}

func detailsToProto(d models.Details) *pb.WineDetails {
	return &pb.WineDetails{
		Name:     d.Name,
		Producer: d.Producer,
		Vintage:  d.Vintage,
		Type:     string(d.Type),
		Country:  d.Country,
		Region:   d.Region,
		Grape:    d.Grape,
		Price:    copyPtr(d.Price),
		Volume:   copyPtr(d.Volume),
	}
}

func detailsFromProto(d *pb.WineDetails) models.Details {
	if d == nil {
		return models.Details{}
	}
	return models.Details{
		Name:     d.GetName(),
		Producer: d.GetProducer(),
		Vintage:  d.GetVintage(),
		Type:     models.WineType(d.GetType()),
		Country:  d.GetCountry(),
		Region:   d.GetRegion(),
		Grape:    d.GetGrape(),
		Price:    copyPtr(d.Price),
		Volume:   copyPtr(d.Volume),
	}
}

func windowToProto(w *models.PeakWindow) *pb.PeakWindow {
	if w == nil {
		return nil
	}
	return &pb.PeakWindow{Start: int32(w.Start), End: int32(w.End)}
}

func windowFromProto(w *pb.PeakWindow) *models.PeakWindow {
	if w == nil {
		return nil
	}
	return &models.PeakWindow{Start: int(w.GetStart()), End: int(w.GetEnd())}
}

func BottleToProto(b models.Bottle) *pb.Bottle {
	out := &pb.Bottle{
		Id:            b.ID,
		OwnerId:       b.OwnerID,
		CabinetId:     b.CabinetID,
		Location:      LocationToProto(b.Location),
		Details:       detailsToProto(b.Details),
		Status:        string(b.Status),
		Barcode:       b.Barcode,
		LabelImageKey: b.LabelImageKey,
		OpenedAt:      timeToProto(b.OpenedAt),
		ConsumedAt:    timeToProto(b.ConsumedAt),
		Rating:        intToProto(b.Rating),
		Notes:         b.Notes,
		PeakWindow:    windowToProto(b.PeakWindow),
	}
	if !b.AddedAt.IsZero() {
		out.AddedAt = timestamppb.New(b.AddedAt)
	}
	return out
}

func BottleFromProto(b *pb.Bottle) models.Bottle {
	if b == nil {
		return models.Bottle{}
	}
	out := models.Bottle{
		ID:            b.GetId(),
		OwnerID:       b.GetOwnerId(),
		CabinetID:     b.GetCabinetId(),
		Location:      LocationFromProto(b.GetLocation()),
		Details:       detailsFromProto(b.GetDetails()),
		Status:        models.Status(b.GetStatus()),
		Barcode:       b.GetBarcode(),
		LabelImageKey: b.GetLabelImageKey(),
		OpenedAt:      timeFromProto(b.GetOpenedAt()),
		ConsumedAt:    timeFromProto(b.GetConsumedAt()),
		Rating:        intFromProto(b.Rating),
		Notes:         b.GetNotes(),
		PeakWindow:    windowFromProto(b.GetPeakWindow()),
	}
	if b.GetAddedAt() != nil {
		out.AddedAt = b.GetAddedAt().AsTime()
	}
	return out
}

func BottlePatchToProto(p models.BottlePatch) *pb.BottlePatch {
	out := &pb.BottlePatch{
		CabinetId:     copyPtr(p.CabinetID),
		Barcode:       copyPtr(p.Barcode),
		LabelImageKey: copyPtr(p.LabelImageKey),
		OpenedAt:      timeToProto(p.OpenedAt),
		ConsumedAt:    timeToProto(p.ConsumedAt),
		Rating:        intToProto(p.Rating),
		Notes:         copyPtr(p.Notes),
		PeakWindow:    windowToProto(p.PeakWindow),
	}
	if p.Location != nil {
		out.Location = LocationToProto(*p.Location)
	}
	if p.Details != nil {
		out.Details = detailsToProto(*p.Details)
	}
	if p.Status != nil {
		s := string(*p.Status)
		out.Status = &s
	}
	return out
}

func BottlePatchFromProto(p *pb.BottlePatch) models.BottlePatch {
	if p == nil {
		return models.BottlePatch{}
	}
	out := models.BottlePatch{
		CabinetID:     copyPtr(p.CabinetId),
		Barcode:       copyPtr(p.Barcode),
		LabelImageKey: copyPtr(p.LabelImageKey),
		OpenedAt:      timeFromProto(p.GetOpenedAt()),
		ConsumedAt:    timeFromProto(p.GetConsumedAt()),
		Rating:        intFromProto(p.Rating),
		Notes:         copyPtr(p.Notes),
		PeakWindow:    windowFromProto(p.GetPeakWindow()),
	}
	if p.GetLocation() != nil {
		l := LocationFromProto(p.GetLocation())
		out.Location = &l
	}
	if p.GetDetails() != nil {
		d := detailsFromProto(p.GetDetails())
		out.Details = &d
	}
	if p.Status != nil {
		s := models.Status(*p.Status)
		out.Status = &s
	}
	return out
}

// CabinetsToProto and the other list helpers never return nil.
func CabinetsToProto(list []models.Cabinet) []*pb.Cabinet {
	return mapSlice(list, CabinetToProto)
}

func CabinetsFromProto(list []*pb.Cabinet) []models.Cabinet {
	return mapSlice(list, CabinetFromProto)
}

func BottlesToProto(list []models.Bottle) []*pb.Bottle {
	return mapSlice(list, BottleToProto)
}

func BottlesFromProto(list []*pb.Bottle) []models.Bottle {
	return mapSlice(list, BottleFromProto)
}

func mapSlice[In, Out any](in []In, f func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func timeToProto(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func timeFromProto(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func intToProto(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}

func intFromProto(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}
