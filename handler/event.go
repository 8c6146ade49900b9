package handler

import (
	"encoding/json"
	"net/http"

	"niteout-backend/event"
	"niteout-backend/logger"
	"niteout-backend/model"
	"niteout-backend/response"
	"niteout-backend/store"
)

func CreateEvent(svc *event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CreateEvent
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "createEvent: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Event == nil || req.Data.Auth == nil {
			response.MissingFields().Send(ctx, w)
			return
		}

		uid, ok := verifyCaller(req.Data.Auth.TokenID)
		if !ok {
			response.Unauthorized().Send(ctx, w)
			return
		}

		e, err := svc.Create(ctx, uid, req.Data.Event)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Event: e},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

// FetchPubs lists every registered venue with the subset of fields the
// venue picker needs.
func FetchPubs(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		docs, err := st.List(ctx, store.CollectionPublicans)
		if err != nil {
			logger.Errorf(ctx, "fetchPubs: error listing publicans: %+v", err)
			response.SomethingWrong().Send(ctx, w)
			return
		}

		pubs := make([]model.PubSummary, 0, len(docs))
		for _, doc := range docs {
			summary := model.PubSummary{
				PubID:   doc.ID,
				PubName: str(doc.Data["pub_name"]),
				Address: str(doc.Data["address"]),
				Xcoord:  num(doc.Data["xcoord"]),
				Ycoord:  num(doc.Data["ycoord"]),
				BER:     str(doc.Data["ber"]),
			}
			if url := str(doc.Data["pub_image_url"]); url != "" {
				summary.PubImageURL = &url
			}
			pubs = append(pubs, summary)
		}

		response.SuccessResponse{
			Data:       &response.Data{Pubs: pubs},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func num(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}
