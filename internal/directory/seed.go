package directory

// SeedUsers returns the demo accounts the tool ships with. One account
// is deactivated and one carries a temporary password so the login
// flow's edge cases are reachable out of the box.
func SeedUsers() []UserRecord {
	return []UserRecord{
		{
			ID:       "u-anna",
			Name:     "Anna Keller",
			Email:    "anna@example.com",
			Password: "anna123",
			Active:   true,
		},
		{
			ID:       "u-ben",
			Name:     "Ben Okafor",
			Email:    "ben@example.com",
			Password: "ben123",
			Active:   true,
		},
		{
			ID:           "u-carla",
			Name:         "Carla Jimenez",
			Email:        "carla@example.com",
			Password:     "changeme",
			Active:       true,
			TempPassword: true,
		},
		{
			ID:       "u-dmitri",
			Name:     "Dmitri Volkov",
			Email:    "dmitri@example.com",
			Password: "dmitri123",
			Active:   false,
		},
	}
}
