package models

type DirectoryKind string

const (
	DirectoryHospitals     DirectoryKind = "hospitals"
	DirectoryPharmacies    DirectoryKind = "pharmacies"
	DirectoryLaboratories  DirectoryKind = "laboratories"
	DirectoryPhoneLines    DirectoryKind = "phones"
	DirectoryDoctors       DirectoryKind = "doctors"
	DirectoryAnnouncements DirectoryKind = "announcements"
)

var DirectoryKinds = []DirectoryKind{
	DirectoryHospitals,
	DirectoryPharmacies,
	DirectoryLaboratories,
	DirectoryPhoneLines,
	DirectoryDoctors,
	DirectoryAnnouncements,
}

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

type Shifts struct {
	Morning   string
	Afternoon string
	Night     string
}

type Hospital struct {
	ID            string
	Name          string
	Level         string
	Phone         string
	VisitingHours Shifts
	Services      string
	Location      *GeoPoint
}

type Pharmacy struct {
	ID           string
	Name         string
	Phone        string
	OpeningHours Shifts
	Location     *GeoPoint
}

type Laboratory struct {
	ID           string
	Name         string
	Phone        string
	OpeningHours Shifts
	Services     string
	Location     *GeoPoint
}

type PhoneLine struct {
	ID          string
	Institution string
	Phone       string
}

type Doctor struct {
	ID       string
	Name     string
	Schedule string
	Online   bool
}

type Announcement struct {
	ID       string
	Text     string
	ImageURL string
}

// DirectoryEntry is the flattened card every listing renders to.
type DirectoryEntry struct {
	ID      string
	Title   string
	Details []string
	Links   []string
}
