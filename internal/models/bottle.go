package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
)

type WineType string

const (
	WineTypeRed       WineType = "Red"
	WineTypeWhite     WineType = "White"
	WineTypeRose      WineType = "Rose"
	WineTypeSparkling WineType = "Sparkling"
	WineTypeDessert   WineType = "Dessert"
	WineTypeOther     WineType = "Other"
)

func (t WineType) Valid() bool {
	switch t {
	case WineTypeRed, WineTypeWhite, WineTypeRose, WineTypeSparkling, WineTypeDessert, WineTypeOther:
		return true
	}
	return false
}

// ParseWineType matches a type name case-insensitively.
func ParseWineType(s string) (WineType, error) {
	for _, t := range []WineType{WineTypeRed, WineTypeWhite, WineTypeRose, WineTypeSparkling, WineTypeDessert, WineTypeOther} {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown wine type %q", common.ErrInvalidArgument, s)
}

// Status is the bottle lifecycle state.
//
//	stored --open-->    opened
//	stored --consume--> consumed
//
// opened and consumed are terminal.
type Status string

const (
	StatusStored   Status = "stored"
	StatusOpened   Status = "opened"
	StatusConsumed Status = "consumed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusStored, StatusOpened, StatusConsumed:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusOpened || s == StatusConsumed
}

func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusStored && (next == StatusOpened || next == StatusConsumed)
}

const (
	MinRating = 1
	MaxRating = 10
)

type Location struct {
	Row        int `json:"row"`
	Col        int `json:"col"`
	DepthIndex int `json:"depthIndex"`
}

func (l Location) nonNegative() bool {
	return l.Row >= 0 && l.Col >= 0 && l.DepthIndex >= 0
}

func (l Location) String() string {
	return fmt.Sprintf("r%d c%d d%d", l.Row, l.Col, l.DepthIndex)
}

type Details struct {
	Name     string   `json:"name"`
	Producer string   `json:"winery"`
	Vintage  string   `json:"vintage"`
	Type     WineType `json:"type"`
	Country  string   `json:"country,omitempty"`
	Region   string   `json:"region,omitempty"`
	Grape    string   `json:"grape,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Volume   *float64 `json:"volume,omitempty"`
}

// PeakWindow is the inclusive range of years the wine is expected to drink best.
type PeakWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (w PeakWindow) Includes(year int) bool {
	return year >= w.Start && year <= w.End
}

type Bottle struct {
	ID            string      `json:"id"`
	OwnerID       string      `json:"ownerId"`
	CabinetID     string      `json:"cabinetId"`
	Location      Location    `json:"location"`
	Details       Details     `json:"details"`
	Status        Status      `json:"status"`
	Barcode       string      `json:"barcode,omitempty"`
	LabelImageKey string      `json:"labelImage,omitempty"`
	AddedAt       time.Time   `json:"addedDate"`
	OpenedAt      *time.Time  `json:"openedDate,omitempty"`
	ConsumedAt    *time.Time  `json:"consumedDate,omitempty"`
	Rating        *int        `json:"rating,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	PeakWindow    *PeakWindow `json:"peakDrinkingWindow,omitempty"`
}

func (b Bottle) IsStored() bool {
	return b.Status == StatusStored
}

func (b Bottle) Validate() error {
	if strings.TrimSpace(b.OwnerID) == "" {
		return fmt.Errorf("%w: bottle owner is required", common.ErrInvalidArgument)
	}
	if strings.TrimSpace(b.CabinetID) == "" {
		return fmt.Errorf("%w: bottle cabinet is required", common.ErrInvalidArgument)
	}
	if !b.Location.nonNegative() {
		return fmt.Errorf("%w: location %s has a negative index", common.ErrInvalidArgument, b.Location)
	}
	if strings.TrimSpace(b.Details.Name) == "" {
		return fmt.Errorf("%w: bottle name is required", common.ErrInvalidArgument)
	}
	if !b.Details.Type.Valid() {
		return fmt.Errorf("%w: unknown wine type %q", common.ErrInvalidArgument, b.Details.Type)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", common.ErrInvalidArgument, b.Status)
	}
	if b.Rating != nil {
		if *b.Rating < MinRating || *b.Rating > MaxRating {
			return fmt.Errorf("%w: rating must be between %d and %d", common.ErrInvalidArgument, MinRating, MaxRating)
		}
		if b.Status != StatusConsumed {
			return fmt.Errorf("%w: only consumed bottles carry a rating", common.ErrInvalidArgument)
		}
	}
	if b.PeakWindow != nil && b.PeakWindow.Start > b.PeakWindow.End {
		return fmt.Errorf("%w: peak window starts after it ends", common.ErrInvalidArgument)
	}
	return nil
}

// FitsIn checks the bottle location against the grid of its cabinet.
func (b Bottle) FitsIn(d Dimensions) error {
	if !d.Contains(b.Location) {
		return fmt.Errorf("%w: location %s is outside a %dx%dx%d cabinet",
			common.ErrInvalidArgument, b.Location, d.Rows, d.Columns, d.Depth)
	}
	return nil
}

// BottlePatch is a partial update. Nil fields are left unchanged.
type BottlePatch struct {
	CabinetID     *string     `json:"cabinetId,omitempty"`
	Location      *Location   `json:"location,omitempty"`
	Details       *Details    `json:"details,omitempty"`
	Status        *Status     `json:"status,omitempty"`
	Barcode       *string     `json:"barcode,omitempty"`
	LabelImageKey *string     `json:"labelImage,omitempty"`
	OpenedAt      *time.Time  `json:"openedDate,omitempty"`
	ConsumedAt    *time.Time  `json:"consumedDate,omitempty"`
	Rating        *int        `json:"rating,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
	PeakWindow    *PeakWindow `json:"peakDrinkingWindow,omitempty"`
}

func (p BottlePatch) IsEmpty() bool {
	return p == BottlePatch{}
}

// MovesSlot reports whether applying p can change which slot the bottle holds.
func (p BottlePatch) MovesSlot() bool {
	return p.CabinetID != nil || p.Location != nil
}

// ConsumePatch moves a stored bottle to consumed.
func ConsumePatch(rating *int, notes string, at time.Time) BottlePatch {
	s := StatusConsumed
	p := BottlePatch{Status: &s, ConsumedAt: &at, Rating: rating}
	if notes != "" {
		p.Notes = &notes
	}
	return p
}

// OpenPatch moves a stored bottle to opened.
func OpenPatch(at time.Time) BottlePatch {
	s := StatusOpened
	return BottlePatch{Status: &s, OpenedAt: &at}
}

// Apply returns b with the patch applied and validated; b is not modified.
// A status in the patch must be a legal forward transition: terminal bottles
// reject any status, and nothing moves back to stored.
func (p BottlePatch) Apply(b Bottle) (Bottle, error) {
	if p.Status != nil {
		changes := *p.Status != b.Status
		if (changes || b.Status.Terminal()) && !b.Status.CanTransitionTo(*p.Status) {
			return Bottle{}, fmt.Errorf("%w: %s -> %s", common.ErrInvalidTransition, b.Status, *p.Status)
		}
		b.Status = *p.Status
	}
	if p.CabinetID != nil {
		b.CabinetID = *p.CabinetID
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.Details != nil {
		b.Details = *p.Details
	}
	if p.Barcode != nil {
		b.Barcode = *p.Barcode
	}
	if p.LabelImageKey != nil {
		b.LabelImageKey = *p.LabelImageKey
	}
	if p.OpenedAt != nil {
		t := *p.OpenedAt
		b.OpenedAt = &t
	}
	if p.ConsumedAt != nil {
		t := *p.ConsumedAt
		b.ConsumedAt = &t
	}
	if p.Rating != nil {
		r := *p.Rating
		b.Rating = &r
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.PeakWindow != nil {
		w := *p.PeakWindow
		b.PeakWindow = &w
	}
	if err := b.Validate(); err != nil {
		return Bottle{}, err
	}
	return b, nil
}

// RebindCabinet points the patch at a new cabinet id when it referenced from.
func (p BottlePatch) RebindCabinet(from, to string) BottlePatch {
	if p.CabinetID != nil && *p.CabinetID == from {
		p.CabinetID = &to
	}
	return p
}
