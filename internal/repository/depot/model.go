package depot

import (
	"time"

	"github.com/google/uuid"
)

type DepotDB struct {
	ID               uuid.UUID
	Name             string
	Address          string
	Latitude         float64
	Longitude        float64
	DailyStorageCost float64
	Active           bool
	CreatedAt        time.Time
}

type DepotModifyDB struct {
	ID               *uuid.UUID
	Name             *string
	Address          *string
	Latitude         *float64
	Longitude        *float64
	DailyStorageCost *float64
	Active           *bool
}
