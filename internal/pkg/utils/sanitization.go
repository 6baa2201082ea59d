package utils

import (
	"ccsed-client/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(request *requests.LoginUser) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeRegisterRequest(request *requests.RegisterUser) {
	request.Username = strings.Join(strings.Fields(request.Username), " ")
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeCreateReservationRequest(request *requests.CreateReservation) {
	request.AttentionType = strings.ToLower(strings.TrimSpace(request.AttentionType))
	request.Address = strings.TrimSpace(request.Address)
	request.Phone = strings.Join(strings.Fields(request.Phone), "")
}
