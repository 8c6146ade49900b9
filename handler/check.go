package handler

import (
	"encoding/json"
	"net/http"

	"niteout-backend/logger"
	"niteout-backend/model"
	"niteout-backend/response"
	"niteout-backend/store"
)

// CheckPubName reports whether a pub name is already registered, so the
// signup form can flag the clash before the user submits.
func CheckPubName(st store.Store) http.HandlerFunc {
	return existenceCheck(st, "pub_name", func(req model.ExistenceCheck) string {
		return req.PubName
	})
}

// CheckEmail reports whether an email address already backs an account.
func CheckEmail(st store.Store) http.HandlerFunc {
	return existenceCheck(st, "email", func(req model.ExistenceCheck) string {
		return req.Email
	})
}

func existenceCheck(st store.Store, field string, value func(model.ExistenceCheck) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.ExistenceCheck
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		v := value(req)
		if v == "" {
			response.MissingFields().Send(ctx, w)
			return
		}

		docs, err := st.QueryByField(ctx, store.CollectionPublicans, field, v)
		if err != nil {
			logger.Errorf(ctx, "existenceCheck: error querying %s: %+v", field, err)
			response.SomethingWrong().Send(ctx, w)
			return
		}

		exists := len(docs) > 0
		response.SuccessResponse{
			Data:       &response.Data{Exists: &exists},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
