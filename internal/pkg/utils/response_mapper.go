package utils

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/dto/responses"
	"strings"
	"time"
)

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseCreatedAt returns the zero time when the backend sends an empty or
// unrecognised timestamp.
func parseCreatedAt(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func ConvertReservationResponse(r responses.Reservation) models.Reservation {
	return models.Reservation{
		ID:               r.ID,
		AttentionType:    models.AttentionType(strings.ToLower(strings.TrimSpace(r.AttentionType))),
		PatientName:      r.PatientName,
		ContactPhone:     r.Phone,
		Address:          r.Address,
		CreatedAt:        parseCreatedAt(r.CreatedAt),
		ProviderName:     r.DoctorName,
		Resolved:         r.Attended,
		MeetingLink:      strings.TrimSpace(r.Meet),
		PrescriptionText: strings.TrimSpace(r.Prescription),
	}
}

func convertShifts(s responses.Shifts) models.Shifts {
	return models.Shifts{
		Morning:   s.Morning,
		Afternoon: s.Afternoon,
		Night:     s.Night,
	}
}

// convertLocation expects [latitude, longitude]; anything else means no map link.
func convertLocation(location []float64) *models.GeoPoint {
	if len(location) != 2 {
		return nil
	}
	return &models.GeoPoint{Latitude: location[0], Longitude: location[1]}
}

func ConvertHospitalResponse(h responses.Hospital) models.Hospital {
	return models.Hospital{
		ID:            h.ID,
		Name:          h.Name,
		Level:         h.Level,
		Phone:         h.Phone,
		VisitingHours: convertShifts(h.VisitingHours),
		Services:      h.Services,
		Location:      convertLocation(h.Location),
	}
}

func ConvertPharmacyResponse(p responses.Pharmacy) models.Pharmacy {
	return models.Pharmacy{
		ID:           p.ID,
		Name:         p.Name,
		Phone:        p.Phone,
		OpeningHours: convertShifts(p.OpeningHours),
		Location:     convertLocation(p.Location),
	}
}

func ConvertLaboratoryResponse(l responses.Laboratory) models.Laboratory {
	return models.Laboratory{
		ID:           l.ID,
		Name:         l.Name,
		Phone:        l.Phone,
		OpeningHours: convertShifts(l.OpeningHours),
		Services:     l.Services,
		Location:     convertLocation(l.Location),
	}
}

func ConvertPhoneLineResponse(p responses.PhoneLine) models.PhoneLine {
	return models.PhoneLine{
		ID:          p.ID,
		Institution: p.Institution,
		Phone:       p.Phone,
	}
}

func ConvertDoctorResponse(d responses.Doctor) models.Doctor {
	return models.Doctor{
		ID:       d.ID,
		Name:     d.Username,
		Schedule: d.Schedule,
		Online:   d.Online,
	}
}

func ConvertAnnouncementResponse(a responses.Announcement, baseURL string) models.Announcement {
	imageURL, err := ResolveAssetURL(baseURL, a.Image)
	if err != nil {
		imageURL = ""
	}
	return models.Announcement{
		ID:       a.ID,
		Text:     a.Text,
		ImageURL: imageURL,
	}
}
