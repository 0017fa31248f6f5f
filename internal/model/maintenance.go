package model

import (
    "strings"
    "time"
)

// MaintenanceStatus enumerates the lifecycle states of a work order:
// Scheduled -> In Progress -> Completed, with a direct Scheduled ->
// Completed shortcut. Completed is terminal.
type MaintenanceStatus string

const (
    MaintenanceScheduled  MaintenanceStatus = "Scheduled"
    MaintenanceInProgress MaintenanceStatus = "In Progress"
    MaintenanceCompleted  MaintenanceStatus = "Completed"
)

// ParseMaintenanceStatus validates a client-supplied status string.
// "Pending" is accepted as a legacy alias for Scheduled. The boolean is
// false when the value is outside the enumeration.
func ParseMaintenanceStatus(s string) (MaintenanceStatus, bool) {
    switch MaintenanceStatus(strings.TrimSpace(s)) {
    case MaintenanceScheduled, "Pending":
        return MaintenanceScheduled, true
    case MaintenanceInProgress:
        return MaintenanceInProgress, true
    case MaintenanceCompleted:
        return MaintenanceCompleted, true
    }
    return "", false
}

// statusRank orders the lifecycle states so transitions can be checked as
// a simple comparison. Higher rank means further along the lifecycle.
func statusRank(s MaintenanceStatus) int {
    switch s {
    case MaintenanceScheduled:
        return 0
    case MaintenanceInProgress:
        return 1
    case MaintenanceCompleted:
        return 2
    }
    return -1
}

// CanTransition reports whether a record may move from one status to
// another. Re-applying the current status is always allowed, which keeps
// status updates idempotent; moving backwards or out of Completed is not.
func CanTransition(from, to MaintenanceStatus) bool {
    if from == to {
        return true
    }
    return statusRank(to) > statusRank(from) && statusRank(from) >= 0
}

// MaintenanceRecord represents a row in the `maintenance` table. Each
// record belongs to exactly one pump; the DB enforces the reference with
// ON DELETE CASCADE.
//
// Fields:
//  ID          – primary key identifier of the work order.
//  PumpID      – owning pump (maintenance.pump_id -> pumps.id).
//  Description – free-text description of the work.
//  Status      – lifecycle state of the work order.
//  CreatedAt   – timestamp of creation.
type MaintenanceRecord struct {
    ID          uint64
    PumpID      uint64
    Description string
    Status      MaintenanceStatus
    CreatedAt   time.Time
}
