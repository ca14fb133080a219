package models

import "time"

type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryPending   DeliveryStatus = "pending_delivery"
)

// Account is a provisioned identity. TenantID is empty only for system admins.
// Verifier holds the encoded password hash, never the password.
type Account struct {
	ID                string
	TenantID          string
	Role              Role
	Username          string
	DisplayName       string
	ContactAddress    string
	Verifier          string
	DeliveryStatus    DeliveryStatus
	DeliveryAttempts  int
	LastDeliveryError string
	CreatedAt         time.Time
}
