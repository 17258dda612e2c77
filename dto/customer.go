package dto

type CreateCustomerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	IdentityNumber string `json:"identityNumber"`
	Address        string `json:"address"`
	Gender         int    `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth"`
}

type UpdateCustomerRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	PhoneNumber    *string `json:"phoneNumber"`
	IdentityNumber *string `json:"identityNumber"`
	Address        *string `json:"address"`
	Gender         *int    `json:"gender"`
	DateOfBirth    *string `json:"dateOfBirth"`
}

type CustomerResponse struct {
	ID             uint   `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	IdentityNumber string `json:"identityNumber"`
	Address        string `json:"address"`
	Gender         int    `json:"gender"`
	DateOfBirth    string `json:"dateOfBirth"`
	CreatedAt      string `json:"createdAt"`
}
