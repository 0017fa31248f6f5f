package model

import (
    "strings"
    "time"
)

// Role is the closed set of authorization tiers carried in the JWT "role"
// claim. Authorization decisions always compare against these constants,
// never against ad hoc strings scattered per route.
type Role string

const (
    RoleAdmin      Role = "admin"      // destructive operations (delete pump/maintenance)
    RoleTechnician Role = "technician" // lifecycle-affecting operations
    RoleViewer     Role = "viewer"     // read-only access
)

// ParseRole normalizes a client-supplied role string. Unknown or empty
// values fall back to viewer so a registration can never mint an
// unexpected tier.
func ParseRole(s string) Role {
    switch Role(strings.ToLower(strings.TrimSpace(s))) {
    case RoleAdmin:
        return RoleAdmin
    case RoleTechnician:
        return RoleTechnician
    default:
        return RoleViewer
    }
}

// User represents a row in the `users` table.  The PasswordHash field
// stores the bcrypt digest; the plain password never leaves the handler
// layer.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name; also the JWT subject.
//  Email        – contact address.
//  PasswordHash – bcrypt hashed password.
//  Role         – authorization tier (admin, technician, viewer).
//  CreatedAt    – timestamp of creation.
type User struct {
    ID           uint64
    Username     string
    Email        string
    PasswordHash string
    Role         Role
    CreatedAt    time.Time
}
