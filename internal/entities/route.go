package entities

type Waypoint struct {
	ID  string
	Lat float64
	Lng float64
}

type Route struct {
	Order           []string
	DistanceMeters  int64
	DurationSeconds int64
}
