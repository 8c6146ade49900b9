package model

type CreatePublican struct {
	Data struct {
		Publican *Publican `json:"publican"`
		Auth     *Auth     `json:"auth"`
	} `json:"data"`
}

type CreateEvent struct {
	Data struct {
		Event *Event `json:"event"`
		Auth  *Auth  `json:"auth"`
	} `json:"data"`
}

type PhoneVerification struct {
	Data struct {
		Auth *Auth `json:"auth"`
	} `json:"data"`
}

type ExistenceCheck struct {
	PubName string `json:"pub_name,omitempty"`
	Email   string `json:"email,omitempty"`
}
