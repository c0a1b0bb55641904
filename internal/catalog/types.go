package catalog

// Category classifies a destination for display.
type Category string

const (
	CategoryCity   Category = "City"
	CategoryBeach  Category = "Beach"
	CategoryNature Category = "Nature"
)

// Destination is a place the traveler can fly to.
type Destination struct {
	Name     string   `toml:"name"`
	Code     string   `toml:"code"`
	Image    string   `toml:"image"`
	Info     string   `toml:"info"`
	Price    float64  `toml:"price"`
	Category Category `toml:"type"`
}

// Flight is one entry of the static departure board. Flights are not tied to
// a route; every search shows the same list.
type Flight struct {
	Time     string  `toml:"time"`
	Duration string  `toml:"duration"`
	Price    float64 `toml:"price"`
	FlightNo string  `toml:"flight_no"`
}

// UserProfile is the loyalty record shown on the profile screen.
type UserProfile struct {
	Name     string `toml:"name"`
	Tier     string `toml:"tier"`
	Points   int    `toml:"points"`
	Progress int    `toml:"progress"` // percent towards the next tier
}
