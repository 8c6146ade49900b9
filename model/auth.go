package model

type Auth struct {
	TokenID    string `json:"token_id,omitempty"`
	Password   string `json:"password,omitempty"`
	OTP        string `json:"otp,omitempty"`
	Status     string `json:"status,omitempty"`
	PublicanID string `json:"publican_id,omitempty"`
}
