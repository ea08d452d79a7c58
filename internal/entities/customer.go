package entities

import "github.com/google/uuid"

// Customer lives in the customer service; shipments reference it by id.
type Customer struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Phone   string
	Company string
}

type NewCustomer struct {
	Name    string
	Email   string
	Phone   string
	Company string
}
