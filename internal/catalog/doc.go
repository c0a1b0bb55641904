// Package catalog holds the static travel data Flightly renders: the
// destination list, the flight list and the traveler's loyalty profile.
//
// A Catalog is built once at startup, either from the built-in defaults or
// from a TOML file named by the catalog_path config key, and is never mutated
// afterwards. Accessors return copies, so a single Catalog can be shared by
// every view without locking.
//
// # Catalog file
//
//	[[destinations]]
//	name = "Madrid"
//	code = "MAD"
//	image = "https://images.example/madrid.jpg"
//	info = "Vibrant nightlife & tapas."
//	price = 320
//	type = "City"
//
//	[[flights]]
//	time = "08:00"
//	duration = "2h5m"
//	price = 400
//	flight_no = "1812"
//
//	[profile]
//	name = "Traveler Jane"
//	tier = "Gold"
//	points = 2450
//	progress = 80
//
// Sections left out of the file keep their built-in values. Destination codes
// are compared exactly and must be unique.
package catalog
