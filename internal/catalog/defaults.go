package catalog

func defaultDestinations() []Destination {
	return []Destination{
		{
			Name:     "Madrid",
			Code:     "MAD",
			Image:    "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=800&q=80",
			Info:     "Vibrant nightlife & tapas.",
			Price:    320,
			Category: CategoryCity,
		},
		{
			Name:     "Lisbon",
			Code:     "LIS",
			Image:    "https://images.unsplash.com/photo-1493666438817-866a91353ca9?auto=format&fit=crop&w=800&q=80",
			Info:     "Sunny coast & pastel streets.",
			Price:    210,
			Category: CategoryBeach,
		},
		{
			Name:     "Reykjavik",
			Code:     "KEF",
			Image:    "https://images.unsplash.com/photo-1502086223501-7ea6ecd79368?auto=format&fit=crop&w=800&q=80",
			Info:     "Nature & northern lights.",
			Price:    499,
			Category: CategoryNature,
		},
		{
			Name:     "Prague",
			Code:     "PRG",
			Image:    "https://images.unsplash.com/photo-1467269204594-9661b134dd2b?auto=format&fit=crop&w=800&q=80",
			Info:     "Old town charm.",
			Price:    154,
			Category: CategoryCity,
		},
	}
}

func defaultFlights() []Flight {
	return []Flight{
		{Time: "08:00", Duration: "2h5m", Price: 400, FlightNo: "1812"},
		{Time: "10:30", Duration: "2h5m", Price: 200, FlightNo: "1813"},
		{Time: "12:00", Duration: "2h5m", Price: 1000, FlightNo: "1814"},
	}
}

func defaultProfile() UserProfile {
	return UserProfile{
		Name:     "Traveler Jane",
		Tier:     "Gold",
		Points:   2450,
		Progress: 80,
	}
}
