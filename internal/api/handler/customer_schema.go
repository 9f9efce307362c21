package handler

type createCustomerRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Company string `json:"company"`
}

// updateCustomerRequest is a partial update: every field is optional but,
// when present, follows the same rules as on create.
type updateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

type messageResponse struct {
	Message string `json:"message"`
}
