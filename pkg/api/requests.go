package api

// CreateAccountRequest is the body of POST /api/v1/accounts.
type CreateAccountRequest struct {
	Username string `json:"username" binding:"required"`
}

// UpdateAccountRequest is the body of PATCH /api/v1/accounts/{username}.
type UpdateAccountRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PutSettingRequest is the body of PUT /api/v1/settings/{key}.
type PutSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
