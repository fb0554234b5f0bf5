package models

import "time"

// DefaultDisplayName is used until the user picks a name
const DefaultDisplayName = "Chef Maria"

// Settings holds the user display preferences
type Settings struct {
	DisplayName string `json:"displayName"`
	DarkMode    bool   `json:"darkMode"`
}

// SettingsUpdate is the payload accepted when changing settings
type SettingsUpdate struct {
	DisplayName *string `json:"displayName"`
	DarkMode    *bool   `json:"darkMode"`
}

// Export is the read-only document produced by the data export
type Export struct {
	Recipes    []Recipe  `json:"recipes"`
	Invoices   []Invoice `json:"invoices"`
	ExportedAt time.Time `json:"exportedAt"`
}
