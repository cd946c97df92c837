package models

// Request and response bodies of the HTTP API. Kept together so that the
// wire contract is visible in one place.

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned on successful login.
// User is sanitized; Token is the compact JWS string.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ResetRequest is the body of POST /api/auth/reset/request.
type ResetRequest struct {
	Email string `json:"email"`
}

// ResetVerifyRequest is the body of POST /api/auth/reset/verify.
type ResetVerifyRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// CreateUserRequest is the body of the admin-only POST /api/users.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateProfileRequest is the body of PATCH /api/users/me.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}

// ChangePasswordRequest is the body of POST /api/users/me/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// StartSessionRequest is the body of POST /api/surveys/sessions.
// Flow is "client" or "personnel". ClientKey scopes the daily submission
// quota; browsers send a stable per-installation identifier.
type StartSessionRequest struct {
	Flow      string `json:"flow"`
	ClientKey string `json:"client_key"`
}

// SelectPharmacyRequest is the body of POST /api/surveys/sessions/{id}/pharmacy.
type SelectPharmacyRequest struct {
	PharmacyID string `json:"pharmacy_id"`
}

// AccessCodeRequest is the body of POST /api/surveys/sessions/{id}/access-code.
type AccessCodeRequest struct {
	Code string `json:"code"`
}

// SelectSurveyTypeRequest is the body of POST /api/surveys/sessions/{id}/type.
type SelectSurveyTypeRequest struct {
	SurveyType string `json:"survey_type"`
}

// RecordAnswerRequest is the body of POST /api/surveys/sessions/{id}/answers.
type RecordAnswerRequest struct {
	QuestionID int64    `json:"question_id"`
	OptionID   *int64   `json:"option_id,omitempty"`
	Value      string   `json:"value"`
	Weight     *float64 `json:"weight,omitempty"`
}

// CheckEmailRequest is the body of POST /api/directory/check-email.
type CheckEmailRequest struct {
	Email string `json:"email"`
}

// ErrorResponse is the uniform JSON error body of the API.
// Message is user-presentable (French); callers surface it directly.
type ErrorResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the uniform JSON acknowledgement body.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
