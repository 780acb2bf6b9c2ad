package model

import (
	"fmt"
	"strings"
	"time"

	"rider-client/src/internal/entity"
)

type ViewFilter string

const (
	ViewFilterActive  ViewFilter = "active"
	ViewFilterHistory ViewFilter = "history"
)

func ParseViewFilter(s string) (ViewFilter, error) {
	switch ViewFilter(strings.ToLower(strings.TrimSpace(s))) {
	case ViewFilterActive:
		return ViewFilterActive, nil
	case ViewFilterHistory:
		return ViewFilterHistory, nil
	}
	return "", fmt.Errorf("unknown view filter %q", s)
}

type SyncState string

const (
	SyncStateIdle    SyncState = "IDLE"
	SyncStateLoading SyncState = "LOADING"
	SyncStateReady   SyncState = "READY"
	SyncStateError   SyncState = "ERROR"
)

// SyncTrigger names what caused a fetch.
type SyncTrigger string

const (
	TriggerMount       SyncTrigger = "mount"
	TriggerFocus       SyncTrigger = "focus"
	TriggerRiderChange SyncTrigger = "rider-change"
	TriggerInterval    SyncTrigger = "interval"
	TriggerPull        SyncTrigger = "pull"
)

// ShowsLoading is false for the background triggers; they never put the
// full-screen loading indicator up.
func (t SyncTrigger) ShowsLoading() bool {
	return t != TriggerInterval && t != TriggerPull
}

type OrderListSnapshot struct {
	Filter     ViewFilter     `json:"filter"`
	RiderID    string         `json:"riderId"`
	State      SyncState      `json:"state"`
	Refreshing bool           `json:"refreshing"`
	Orders     []entity.Order `json:"orders"`
	Error      string         `json:"error,omitempty"`
	ErrorKind  string         `json:"errorKind,omitempty"`
	Fatal      bool           `json:"fatal"`
	UpdatedAt  *time.Time     `json:"updatedAt,omitempty"`
}
