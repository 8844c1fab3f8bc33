package models

import (
	"fmt"
	"time"
)

// SyncStatus is the delivery state of one clipboard item for one target
// device. Pending is the only non-terminal state.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
	SyncSkipped SyncStatus = "skipped"
)

// Valid reports whether s is a known status.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncPending, SyncSynced, SyncFailed, SyncSkipped:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s SyncStatus) Terminal() bool {
	return s == SyncSynced || s == SyncFailed || s == SyncSkipped
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SyncStatus) UnmarshalText(b []byte) error {
	v := SyncStatus(b)
	if !v.Valid() {
		return fmt.Errorf("unknown sync status %q", string(b))
	}
	*s = v
	return nil
}

// SyncRecord is the durable delivery state of a clipboard item for a
// single target device. There is at most one record per
// (ClipboardID, TargetDeviceID) pair.
type SyncRecord struct {
	ID             string     `json:"id"`
	ClipboardID    string     `json:"clipboard_id"`
	TargetDeviceID string     `json:"target_device_id"`
	Status         SyncStatus `json:"status"`

	// SyncedAt is set exactly once, when the record enters SyncSynced.
	SyncedAt *time.Time `json:"synced_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the SyncRecord model.
func (s SyncRecord) TableName() string {
	return "clipboard_syncs"
}

// PendingSync is a pending ledger record joined with the item it refers to.
type PendingSync struct {
	Record SyncRecord    `json:"record"`
	Item   ClipboardItem `json:"item"`
}

// DeviceSyncOutcome is what the pipeline reports for each target device
// after a push.
type DeviceSyncOutcome struct {
	DeviceID  string     `json:"device_id"`
	Delivered bool       `json:"delivered"`
	Status    SyncStatus `json:"status"`
}
