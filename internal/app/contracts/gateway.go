package contracts

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/dto/requests"
	"context"
)

type LoginResult struct {
	Credential models.Credential
	Identity   models.Identity
}

// Gateway issues one blocking call per backend endpoint and never retries.
// Failures are *exceptions.CustomError values classified by Kind.
type Gateway interface {
	Login(ctx context.Context, request *requests.LoginUser) (*LoginResult, error)
	Register(ctx context.Context, request *requests.RegisterUser) (*models.Identity, error)
	Verify(ctx context.Context, credential models.Credential) (*models.Identity, error)
	ListMyReservations(ctx context.Context, credential models.Credential) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, credential models.Credential, request *requests.CreateReservation) (string, error)
}

type DirectoryGateway interface {
	ListHospitals(ctx context.Context) ([]models.Hospital, error)
	ListPharmacies(ctx context.Context) ([]models.Pharmacy, error)
	ListLaboratories(ctx context.Context) ([]models.Laboratory, error)
	ListPhoneLines(ctx context.Context) ([]models.PhoneLine, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
}
