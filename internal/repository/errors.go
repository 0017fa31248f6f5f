// Package repository contains data access logic separated from HTTP
// handlers. This file defines sentinel errors shared across repositories
// so handlers can map failures to the right HTTP status without string
// matching.
package repository

import "errors"

// ErrUsernameExists is returned when a registration collides with an
// existing username.  Handlers translate this into a 400 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrPumpNotFound is returned when a pump id does not resolve.  Handlers
// translate this into a 404 response.
var ErrPumpNotFound = errors.New("pump not found")

// ErrMaintenanceNotFound is returned when a maintenance record id does
// not resolve.  Handlers translate this into a 404 response.
var ErrMaintenanceNotFound = errors.New("maintenance record not found")

// ErrInvalidTransition is returned when a status update would move a
// work order backwards or out of the terminal Completed state.  Handlers
// translate this into a 409 response.
var ErrInvalidTransition = errors.New("invalid status transition")
