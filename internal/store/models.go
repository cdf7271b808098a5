package store

import "time"

// Models lists every table the store migrates
var Models = []interface{}{
	&RouteRecord{},
	&WaypointRecord{},
}

// RouteRecord is a stored route with its information
type RouteRecord struct {
	ID         string `gorm:"primaryKey;size:36"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Name       string `gorm:"size:127"`
	Difficulty int
	Boulder    bool
	Sport      bool
	Trad       bool
	SitStart   bool
	StartHolds int
	TopOut     bool
	Notes      string           `gorm:"size:2000"`
	Waypoints  []WaypointRecord `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (*RouteRecord) TableName() string {
	return "routes"
}

// WaypointRecord is one clip position of a stored route
type WaypointRecord struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	RouteID string `gorm:"size:36;index:idx_waypoints_route_seq"`
	Seq     int    `gorm:"index:idx_waypoints_route_seq"`
	X       float64
	Y       float64
	Z       float64
}

func (*WaypointRecord) TableName() string {
	return "waypoints"
}
