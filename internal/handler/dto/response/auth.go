package response

import "tour-booking-api/internal/usecase/readmodel"

type AuthResponse struct {
	Token string                      `json:"token"`
	User  *readmodel.AuthorizedUserRM `json:"user"`
}
