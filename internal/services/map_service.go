package services

import (
	"pharmafinder/internal/repos"
)

// Marker is what the external map renderer consumes: coordinates plus a
// kind used to pick the icon.
type Marker struct {
	ID        int     `json:"id,omitempty"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Kind      string  `json:"kind"` // open | closed | user
	Address   string  `json:"address,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Hours     string  `json:"hours,omitempty"`
}

const (
	MarkerOpen   = "open"
	MarkerClosed = "closed"
	MarkerUser   = "user"
)

// MapService turns the pharmacy catalog into a marker feed. Tiles and
// rendering are someone else's job.
type MapService struct {
	Pharm *repos.PharmacyRepo

	// Center used when the caller supplies no position (geolocation
	// denied or unavailable).
	DefaultLat float64
	DefaultLng float64
}

func NewMapService(pharm *repos.PharmacyRepo, lat, lng float64) *MapService {
	return &MapService{Pharm: pharm, DefaultLat: lat, DefaultLng: lng}
}

type MarkerFeed struct {
	Center  Marker   `json:"center"`
	Markers []Marker `json:"markers"`
}

// Markers builds the feed centered on the caller's position, falling
// back to the configured default. hasPos=false means geolocation failed
// or was denied on the client.
func (s *MapService) Markers(lat, lng float64, hasPos bool) (MarkerFeed, error) {
	if !hasPos {
		lat, lng = s.DefaultLat, s.DefaultLng
	}
	feed := MarkerFeed{
		Center: Marker{Name: "Votre position", Latitude: lat, Longitude: lng, Kind: MarkerUser},
	}
	feed.Markers = append(feed.Markers, feed.Center)

	pharmacies, err := s.Pharm.ListAll()
	if err != nil {
		return MarkerFeed{}, err
	}
	for _, p := range pharmacies {
		kind := MarkerClosed
		if p.IsOpen {
			kind = MarkerOpen
		}
		feed.Markers = append(feed.Markers, Marker{
			ID: p.ID, Name: p.Name, Latitude: p.Latitude, Longitude: p.Longitude,
			Kind: kind, Address: p.Address, Phone: p.Phone, Hours: p.Hours,
		})
	}
	return feed, nil
}
