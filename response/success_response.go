package response

import (
	"encoding/json"
	"net/http"

	"niteout-backend/model"
)

type SuccessResponse struct {
	Data       *Data `json:"data"`
	StatusCode int   `json:"-"`
}

type Data struct {
	Publican *model.Publican    `json:"publican,omitempty"`
	Event    *model.Event       `json:"event,omitempty"`
	Auth     *model.Auth        `json:"auth,omitempty"`
	Pubs     []model.PubSummary `json:"pubs,omitempty"`
	Exists   *bool              `json:"exists,omitempty"`
}

func (r SuccessResponse) Send(w http.ResponseWriter) {
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}
