package queue

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

type Kind string

const (
	KindAdd    Kind = "add"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

type Collection string

const (
	CollectionCabinets Collection = "cabinets"
	CollectionBottles  Collection = "bottles"
)

// Mutation is a pending change to the remote store. The set of variants is
// closed: AddCabinet, UpdateCabinet, AddBottle and UpdateBottle.
type Mutation interface {
	Kind() Kind
	Collection() Collection
	// Target is the id of the entity the mutation creates or changes.
	Target() string
	// DependsOn reports whether replaying the mutation needs id to exist remotely.
	DependsOn(id string) bool

	rebind(from, to string) Mutation
}

// Rebind returns m with references to the local id from replaced by to.
func Rebind(m Mutation, from, to string) Mutation {
	if !m.DependsOn(from) {
		return m
	}
	return m.rebind(from, to)
}

// AddCabinet creates a cabinet that so far only exists locally under Cabinet.ID.
type AddCabinet struct {
	Cabinet models.Cabinet
}

func (m AddCabinet) Kind() Kind             { return KindAdd }
func (m AddCabinet) Collection() Collection { return CollectionCabinets }
func (m AddCabinet) Target() string         { return m.Cabinet.ID }

func (m AddCabinet) DependsOn(id string) bool {
	return m.Cabinet.ID == id || m.Cabinet.ParentID == id
}

func (m AddCabinet) rebind(from, to string) Mutation {
	if m.Cabinet.ParentID == from {
		m.Cabinet.ParentID = to
	}
	return m
}

type UpdateCabinet struct {
	ID    string
	Patch models.CabinetPatch
}

func (m UpdateCabinet) Kind() Kind             { return KindUpdate }
func (m UpdateCabinet) Collection() Collection { return CollectionCabinets }
func (m UpdateCabinet) Target() string         { return m.ID }

func (m UpdateCabinet) DependsOn(id string) bool {
	return m.ID == id || m.Patch.ParentID != nil && *m.Patch.ParentID == id
}

func (m UpdateCabinet) rebind(from, to string) Mutation {
	if m.ID == from {
		m.ID = to
	}
	m.Patch = m.Patch.RebindParent(from, to)
	return m
}

// AddBottle creates a bottle that so far only exists locally under Bottle.ID.
type AddBottle struct {
	Bottle models.Bottle
}

func (m AddBottle) Kind() Kind             { return KindAdd }
func (m AddBottle) Collection() Collection { return CollectionBottles }
func (m AddBottle) Target() string         { return m.Bottle.ID }

func (m AddBottle) DependsOn(id string) bool {
	return m.Bottle.ID == id || m.Bottle.CabinetID == id
}

func (m AddBottle) rebind(from, to string) Mutation {
	if m.Bottle.CabinetID == from {
		m.Bottle.CabinetID = to
	}
	return m
}

type UpdateBottle struct {
	ID    string
	Patch models.BottlePatch
}

func (m UpdateBottle) Kind() Kind             { return KindUpdate }
func (m UpdateBottle) Collection() Collection { return CollectionBottles }
func (m UpdateBottle) Target() string         { return m.ID }

func (m UpdateBottle) DependsOn(id string) bool {
	return m.ID == id || m.Patch.CabinetID != nil && *m.Patch.CabinetID == id
}

func (m UpdateBottle) rebind(from, to string) Mutation {
	if m.ID == from {
		m.ID = to
	}
	m.Patch = m.Patch.RebindCabinet(from, to)
	return m
}

// Update payloads are stored flat: {"id": ..., <patch fields>}.
type cabinetUpdatePayload struct {
	ID string `json:"id"`
	models.CabinetPatch
}

type bottleUpdatePayload struct {
	ID string `json:"id"`
	models.BottlePatch
}

func encodePayload(m Mutation) (json.RawMessage, error) {
	switch m := m.(type) {
	case AddCabinet:
		return json.Marshal(m.Cabinet)
	case UpdateCabinet:
		return json.Marshal(cabinetUpdatePayload{ID: m.ID, CabinetPatch: m.Patch})
	case AddBottle:
		return json.Marshal(m.Bottle)
	case UpdateBottle:
		return json.Marshal(bottleUpdatePayload{ID: m.ID, BottlePatch: m.Patch})
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownMutation, m)
}

func decodePayload(kind Kind, collection Collection, payload json.RawMessage) (Mutation, error) {
	switch {
	case kind == KindAdd && collection == CollectionCabinets:
		var m AddCabinet
		err := json.Unmarshal(payload, &m.Cabinet)
		return m, err
	case kind == KindUpdate && collection == CollectionCabinets:
		var p cabinetUpdatePayload
		err := json.Unmarshal(payload, &p)
		return UpdateCabinet{ID: p.ID, Patch: p.CabinetPatch}, err
	case kind == KindAdd && collection == CollectionBottles:
		var m AddBottle
		err := json.Unmarshal(payload, &m.Bottle)
		return m, err
	case kind == KindUpdate && collection == CollectionBottles:
		var p bottleUpdatePayload
		err := json.Unmarshal(payload, &p)
		return UpdateBottle{ID: p.ID, Patch: p.BottlePatch}, err
	}
	return nil, fmt.Errorf("%w: %s %s", ErrUnknownMutation, kind, collection)
}
