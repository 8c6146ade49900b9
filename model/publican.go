package model

import (
	"time"
)

// Publican is a venue owner's profile. The document is keyed by the
// identity-service account id, so PubID is never stored inside it.
type Publican struct {
	PubID string `json:"pub_id,omitempty" firestore:"-"`

	PubName     string `json:"pub_name,omitempty" firestore:"pub_name"`
	PhoneNumber string `json:"phone_number,omitempty" firestore:"phone_number"`
	Email       string `json:"email,omitempty" firestore:"email"`
	Address     string `json:"address,omitempty" firestore:"address"`
	Eircode     string `json:"eircode,omitempty" firestore:"eircode"`
	BER         string `json:"ber,omitempty" firestore:"ber"`

	PubImageURL *string `json:"pub_image_url,omitempty" firestore:"pub_image_url"`
	BERImageURL *string `json:"ber_url,omitempty" firestore:"ber_url"`

	Xcoord float64 `json:"xcoord,omitempty" firestore:"xcoord"`
	Ycoord float64 `json:"ycoord,omitempty" firestore:"ycoord"`

	Events []string `json:"events" firestore:"events"`

	PhoneVerified bool       `json:"phone_verified,omitempty" firestore:"phone_verified"`
	CreatedAt     *time.Time `json:"created_date,omitempty" firestore:"created_date"`
}

// PubSummary is the public listing shape of a publican profile.
type PubSummary struct {
	PubID       string  `json:"id"`
	PubName     string  `json:"pub_name"`
	Address     string  `json:"address"`
	Xcoord      float64 `json:"xcoord"`
	Ycoord      float64 `json:"ycoord"`
	BER         string  `json:"ber,omitempty"`
	PubImageURL *string `json:"pub_image_url,omitempty"`
}

var berRatings = []string{
	"A1", "A2", "A3",
	"B1", "B2", "B3",
	"C1", "C2", "C3",
	"D1", "D2",
	"E1", "E2",
	"F", "G",
	"Exempt",
}

func ValidBER(rating string) bool {
	for _, r := range berRatings {
		if r == rating {
			return true
		}
	}
	return false
}
