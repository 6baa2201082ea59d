package utils

import (
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginRequest(t *testing.T) {
	t.Run("Short Password Rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.LoginUser{Email: "a@b.com", Password: "short"})

		require.Error(t, err)
		assert.Equal(t, "password must be at least 6 characters long", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Invalid Email Rejected", func(t *testing.T) {
		err := ValidateStruct(&requests.LoginUser{Email: "not-an-email", Password: "longenough"})

		require.Error(t, err)
		assert.Equal(t, "email must be a valid email", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Valid Request", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.LoginUser{Email: "a@b.com", Password: "123456"}))
	})
}

func TestValidateCreateReservationRequest(t *testing.T) {
	t.Run("Unknown Attention Type", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateReservation{AttentionType: "domicilio", Address: "x", Phone: "68383838"})

		require.Error(t, err)
		assert.Equal(t, "attentiontype must be either presencial or virtual", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Phone With Letters", func(t *testing.T) {
		err := ValidateStruct(&requests.CreateReservation{AttentionType: "virtual", Address: "x", Phone: "68a83838"})

		require.Error(t, err)
		assert.Equal(t, "phone must be a valid phone number", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Both Attention Types Accepted", func(t *testing.T) {
		for _, attentionType := range []string{"presencial", "virtual"} {
			err := ValidateStruct(&requests.CreateReservation{AttentionType: attentionType, Address: "Calle Ingavi", Phone: "+59168383838"})
			assert.NoError(t, err, attentionType)
		}
	})
}
