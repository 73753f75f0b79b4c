// Package models defines the domain types for the portfolio content server.
package models

import "time"

// PostMeta is a lightweight representation returned by store list operations.
type PostMeta struct {
	Name      string    `json:"name"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
