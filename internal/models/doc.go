// Package models defines the cellar entities shared by the client and the
// server: cabinets, bottles, their partial updates, and the bottle lifecycle.
package models
