package directory

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/pkg/utils"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

type directoryUsecase struct {
	Gateway contracts.DirectoryGateway
	Log     *zap.Logger
}

func NewDirectoryUsecase(gateway contracts.DirectoryGateway, logger *zap.Logger) contracts.DirectoryUsecase {
	return &directoryUsecase{
		Gateway: gateway,
		Log:     logger,
	}
}

func (uc *directoryUsecase) ListEntries(ctx context.Context, kind models.DirectoryKind) ([]models.DirectoryEntry, error) {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("directoryUsecase.ListEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("kind", string(kind)),
	)

	entries, err := uc.fetch(ctx, kind)
	if err != nil {
		uc.Log.Error("directoryUsecase.ListEntries error fetching listing",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		return nil, err
	}

	uc.Log.Info("directoryUsecase.ListEntries succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(entries)),
	)
	return entries, nil
}

func (uc *directoryUsecase) fetch(ctx context.Context, kind models.DirectoryKind) ([]models.DirectoryEntry, error) {
	switch kind {
	case models.DirectoryHospitals:
		items, err := uc.Gateway.ListHospitals(ctx)
		return mapEntries(items, hospitalEntry), err
	case models.DirectoryPharmacies:
		items, err := uc.Gateway.ListPharmacies(ctx)
		return mapEntries(items, pharmacyEntry), err
	case models.DirectoryLaboratories:
		items, err := uc.Gateway.ListLaboratories(ctx)
		return mapEntries(items, laboratoryEntry), err
	case models.DirectoryPhoneLines:
		items, err := uc.Gateway.ListPhoneLines(ctx)
		return mapEntries(items, phoneLineEntry), err
	case models.DirectoryDoctors:
		items, err := uc.Gateway.ListDoctors(ctx)
		return mapEntries(items, doctorEntry), err
	case models.DirectoryAnnouncements:
		items, err := uc.Gateway.ListAnnouncements(ctx)
		return mapEntries(items, announcementEntry), err
	default:
		return nil, exceptions.ErrUnsupportedDirectoryKind(errors.New("unknown listing"), string(kind))
	}
}

func mapEntries[T any](items []T, toEntry func(T) models.DirectoryEntry) []models.DirectoryEntry {
	if items == nil {
		return nil
	}
	entries := make([]models.DirectoryEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, toEntry(item))
	}
	return entries
}

func hospitalEntry(h models.Hospital) models.DirectoryEntry {
	entry := models.DirectoryEntry{ID: h.ID, Title: h.Name}
	entry.Details = appendDetail(entry.Details, "Level", h.Level)
	entry.Details = appendDetail(entry.Details, "Phone", h.Phone)
	entry.Details = appendDetail(entry.Details, "Visiting hours", formatShifts(h.VisitingHours))
	entry.Details = appendDetail(entry.Details, "Services", h.Services)
	entry.Links = locationLinks(h.Location, h.Phone)
	return entry
}

func pharmacyEntry(p models.Pharmacy) models.DirectoryEntry {
	entry := models.DirectoryEntry{ID: p.ID, Title: p.Name}
	entry.Details = appendDetail(entry.Details, "Phone", p.Phone)
	entry.Details = appendDetail(entry.Details, "Opening hours", formatShifts(p.OpeningHours))
	entry.Links = locationLinks(p.Location, p.Phone)
	return entry
}

func laboratoryEntry(l models.Laboratory) models.DirectoryEntry {
	entry := models.DirectoryEntry{ID: l.ID, Title: l.Name}
	entry.Details = appendDetail(entry.Details, "Phone", l.Phone)
	entry.Details = appendDetail(entry.Details, "Opening hours", formatShifts(l.OpeningHours))
	entry.Details = appendDetail(entry.Details, "Services", l.Services)
	entry.Links = locationLinks(l.Location, l.Phone)
	return entry
}

func phoneLineEntry(p models.PhoneLine) models.DirectoryEntry {
	entry := models.DirectoryEntry{ID: p.ID, Title: p.Institution}
	entry.Details = appendDetail(entry.Details, "Phone", p.Phone)
	entry.Links = locationLinks(nil, p.Phone)
	return entry
}

func doctorEntry(d models.Doctor) models.DirectoryEntry {
	status := "offline"
	if d.Online {
		status = "online"
	}
	entry := models.DirectoryEntry{ID: d.ID, Title: d.Name}
	entry.Details = appendDetail(entry.Details, "Schedule", d.Schedule)
	entry.Details = appendDetail(entry.Details, "Status", status)
	return entry
}

func announcementEntry(a models.Announcement) models.DirectoryEntry {
	entry := models.DirectoryEntry{ID: a.ID, Title: a.Text}
	if a.ImageURL != "" {
		entry.Links = append(entry.Links, a.ImageURL)
	}
	return entry
}

func appendDetail(details []string, label, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return details
	}
	return append(details, label+": "+value)
}

func formatShifts(s models.Shifts) string {
	var parts []string
	if s.Morning != "" {
		parts = append(parts, "morning "+s.Morning)
	}
	if s.Afternoon != "" {
		parts = append(parts, "afternoon "+s.Afternoon)
	}
	if s.Night != "" {
		parts = append(parts, "night "+s.Night)
	}
	return strings.Join(parts, ", ")
}

func locationLinks(location *models.GeoPoint, phone string) []string {
	var links []string
	if location != nil {
		links = append(links, utils.BuildMapsURL(location.Latitude, location.Longitude))
	}
	if strings.TrimSpace(phone) != "" {
		links = append(links, utils.BuildDialerURL(phone))
	}
	return links
}
