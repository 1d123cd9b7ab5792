package model

// District represents one of Sierra Leone's administrative districts.
// Coordinates is a "lat, lon" text pair for the district's center.
type District struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Region      string `json:"region"`
	Coordinates string `json:"coordinates"`
}

// DistrictJobCount pairs a district with the number of jobs posted in it
type DistrictJobCount struct {
	District string `json:"district"`
	JobCount int    `json:"job_count"`
}

// Districts is the canonical list of Sierra Leone's 16 districts,
// in alphabetical order.
var Districts = []District{
	{Name: "Bo", Region: "Southern", Coordinates: "7.964, -11.739"},
	{Name: "Bombali", Region: "Northern", Coordinates: "9.276, -12.058"},
	{Name: "Bonthe", Region: "Southern", Coordinates: "7.526, -12.505"},
	{Name: "Falaba", Region: "Northern", Coordinates: "9.750, -11.250"},
	{Name: "Kailahun", Region: "Eastern", Coordinates: "8.279, -10.573"},
	{Name: "Kambia", Region: "North West", Coordinates: "9.125, -12.918"},
	{Name: "Karene", Region: "Northern", Coordinates: "9.050, -12.450"},
	{Name: "Kenema", Region: "Eastern", Coordinates: "7.876, -11.190"},
	{Name: "Koinadugu", Region: "Northern", Coordinates: "9.500, -11.417"},
	{Name: "Kono", Region: "Eastern", Coordinates: "8.646, -10.971"},
	{Name: "Moyamba", Region: "Southern", Coordinates: "8.158, -12.431"},
	{Name: "Port Loko", Region: "North West", Coordinates: "8.766, -12.787"},
	{Name: "Pujehun", Region: "Southern", Coordinates: "7.350, -11.717"},
	{Name: "Tonkolili", Region: "Northern", Coordinates: "8.683, -11.667"},
	{Name: "Western Area Rural", Region: "Western", Coordinates: "8.333, -13.035"},
	{Name: "Western Area Urban (Freetown)", Region: "Western", Coordinates: "8.484, -13.229"},
}

// ValidDistrict reports whether name is one of the 16 districts.
func ValidDistrict(name string) bool {
	for _, d := range Districts {
		if d.Name == name {
			return true
		}
	}
	return false
}
