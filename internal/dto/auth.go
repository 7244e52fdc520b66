package dto

import "time"

// DevTokenRequest asks for an access token in development. An empty user_id issues
// a token for a new random owner.
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	Email  string `json:"email" validate:"omitempty,email"`
}

// TokenResponse contains an access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
}

// GenerateRecordsQuery bounds the demo data generator
type GenerateRecordsQuery struct {
	Count int `query:"count" validate:"omitempty,min=1,max=1000"`
	Days  int `query:"days" validate:"omitempty,min=1,max=730"`
}

// GenerateRecordsResponse reports what the generator stored
type GenerateRecordsResponse struct {
	RecordsCreated int       `json:"records_created"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
}

// ClearRecordsResponse reports how many records were removed
type ClearRecordsResponse struct {
	RecordsDeleted int64 `json:"records_deleted"`
}
