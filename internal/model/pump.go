package model

import "time"

// PumpStatus enumerates the operational states a pump can be in. Once a
// pump has at least one maintenance record its status is a derived field:
// only the lifecycle repository writes it, never a client.
type PumpStatus string

const (
    PumpActive           PumpStatus = "Active"
    PumpInactive         PumpStatus = "Inactive"
    PumpUnderMaintenance PumpStatus = "Under Maintenance"
)

// ValidPumpStatus reports whether s is one of the enumerated pump states.
func ValidPumpStatus(s PumpStatus) bool {
    switch s {
    case PumpActive, PumpInactive, PumpUnderMaintenance:
        return true
    }
    return false
}

// Pump represents a row in the `pumps` table.
//
// Fields:
//  ID                  – primary key identifier of the pump.
//  Name                – human-friendly asset name.
//  Status              – operational state; derived once maintenance exists.
//  LastMaintenanceDate – stamped when a maintenance record completes; nil
//                        until the first completion.
//  CreatedAt           – timestamp of creation.
type Pump struct {
    ID                  uint64
    Name                string
    Status              PumpStatus
    LastMaintenanceDate *time.Time
    CreatedAt           time.Time
}
