package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
)

// CabinetType is the structural kind of a storage unit.
type CabinetType string

const (
	CabinetTypeCabinet CabinetType = "cabinet"
	CabinetTypeRoom    CabinetType = "room"
	CabinetTypeRack    CabinetType = "rack"
)

func (t CabinetType) Valid() bool {
	switch t {
	case CabinetTypeCabinet, CabinetTypeRoom, CabinetTypeRack:
		return true
	}
	return false
}

// Dimensions is the slot grid of a cabinet. Locations are zero-based.
type Dimensions struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
	Depth   int `json:"depth"`
}

func (d Dimensions) Validate() error {
	if d.Rows <= 0 || d.Columns <= 0 || d.Depth <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%dx%d",
			common.ErrInvalidArgument, d.Rows, d.Columns, d.Depth)
	}
	return nil
}

// Contains reports whether l addresses a slot inside the grid.
func (d Dimensions) Contains(l Location) bool {
	return l.Row < d.Rows && l.Col < d.Columns && l.DepthIndex < d.Depth && l.nonNegative()
}

func (d Dimensions) Capacity() int {
	return d.Rows * d.Columns * d.Depth
}

// RoomLayout places a rack on the floor plan of its room.
type RoomLayout struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Zone is a temperature zone inside a cabinet or room.
type Zone struct {
	Name              string   `json:"name"`
	TargetTempCelsius *float64 `json:"targetTempCelsius,omitempty"`
}

type Cabinet struct {
	ID         string      `json:"id"`
	OwnerID    string      `json:"ownerId"`
	Name       string      `json:"name"`
	Type       CabinetType `json:"type"`
	ParentID   string      `json:"parentId,omitempty"`
	Dimensions Dimensions  `json:"dimensions"`
	RoomLayout *RoomLayout `json:"roomLayout,omitempty"`
	Zone       *Zone       `json:"zone,omitempty"`
}

// Validate checks the fields a caller supplies. The id is not checked so the
// same rules apply before and after the store assigns one.
func (c Cabinet) Validate() error {
	if strings.TrimSpace(c.OwnerID) == "" {
		return fmt.Errorf("%w: cabinet owner is required", common.ErrInvalidArgument)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: cabinet name is required", common.ErrInvalidArgument)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: unknown cabinet type %q", common.ErrInvalidArgument, c.Type)
	}
	if c.Type == CabinetTypeRack && c.ParentID == "" {
		return fmt.Errorf("%w: a rack needs a parent room", common.ErrInvalidArgument)
	}
	if c.ParentID != "" && c.ParentID == c.ID {
		return fmt.Errorf("%w: cabinet cannot be its own parent", common.ErrInvalidArgument)
	}
	if c.RoomLayout != nil && (c.RoomLayout.Width < 0 || c.RoomLayout.Height < 0) {
		return fmt.Errorf("%w: room layout size must not be negative", common.ErrInvalidArgument)
	}
	if c.Zone != nil && strings.TrimSpace(c.Zone.Name) == "" {
		return fmt.Errorf("%w: zone name is required", common.ErrInvalidArgument)
	}
	return c.Dimensions.Validate()
}

// CabinetPatch is a partial update. Nil fields are left unchanged.
type CabinetPatch struct {
	Name       *string     `json:"name,omitempty"`
	ParentID   *string     `json:"parentId,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	RoomLayout *RoomLayout `json:"roomLayout,omitempty"`
	Zone       *Zone       `json:"zone,omitempty"`
}

func (p CabinetPatch) IsEmpty() bool {
	return p == CabinetPatch{}
}

// Apply returns c with the patch applied and validated; c is not modified.
func (p CabinetPatch) Apply(c Cabinet) (Cabinet, error) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.ParentID != nil {
		c.ParentID = *p.ParentID
	}
	if p.Dimensions != nil {
		c.Dimensions = *p.Dimensions
	}
	if p.RoomLayout != nil {
		l := *p.RoomLayout
		c.RoomLayout = &l
	}
	if p.Zone != nil {
		z := *p.Zone
		c.Zone = &z
	}
	if err := c.Validate(); err != nil {
		return Cabinet{}, err
	}
	return c, nil
}

// RebindParent points the patch at a new parent id when it referenced from.
func (p CabinetPatch) RebindParent(from, to string) CabinetPatch {
	if p.ParentID != nil && *p.ParentID == from {
		p.ParentID = &to
	}
	return p
}
