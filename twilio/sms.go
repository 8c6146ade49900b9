package twilio

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
)

type Sender interface {
	Send(to, message string) (string, error)
}

type smsSender struct {
	AccountSID string
	AuthToken  string
	URL        string
	From       string
	HTTPClient http.Client
}

func NewSender(acSID, authToken, apiURL, from string) Sender {
	return &smsSender{
		AccountSID: acSID,
		AuthToken:  authToken,
		URL:        fmt.Sprintf("%s/%s/Messages.json", apiURL, acSID),
		From:       from,
	}
}

func (s *smsSender) Send(to, message string) (string, error) {
	v := url.Values{}
	v.Set("To", to)
	v.Set("From", s.From)
	v.Set("Body", message)

	sid, err := s.post(v)
	if err != nil {
		return "", fmt.Errorf("send: error sending sms: %w", err)
	}
	return sid, nil
}

func (s *smsSender) post(values url.Values) (string, error) {
	req, err := http.NewRequest(http.MethodPost, s.URL, strings.NewReader(values.Encode()))
	if err != nil {
		return "", err
	}

	req.SetBasicAuth(s.AccountSID, s.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("post: unexpected status code: %d", res.StatusCode)
	}

	bodyBytes, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("post: error reading sms response body: %w", err)
	}

	var data struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(bodyBytes, &data); err != nil {
		return "", fmt.Errorf("post: error unmarshalling response body: %w", err)
	}

	return data.SID, nil
}
