package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"niteout-backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	docs map[string][]store.Document
	err  error
}

func (s *stubStore) QueryByField(_ context.Context, collection, field string, value interface{}) ([]store.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []store.Document
	for _, doc := range s.docs[collection] {
		if doc.Data[field] == value {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *stubStore) List(_ context.Context, collection string) ([]store.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.docs[collection], nil
}

func (s *stubStore) Create(context.Context, string, interface{}) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubStore) Set(context.Context, string, string, interface{}) error {
	return errors.New("not implemented")
}

func (s *stubStore) Read(context.Context, string, string, interface{}) error {
	return errors.New("not implemented")
}

func (s *stubStore) Update(context.Context, string, string, map[string]interface{}) error {
	return errors.New("not implemented")
}

func (s *stubStore) CreateAndAppend(context.Context, string, interface{}, string, string, string) (string, error) {
	return "", errors.New("not implemented")
}

func anchorStore() *stubStore {
	return &stubStore{docs: map[string][]store.Document{
		store.CollectionPublicans: {
			{ID: "acct-1", Data: map[string]interface{}{
				"pub_name": "The Anchor",
				"email":    "owner@theanchor.ie",
				"address":  "12 Quay Street, Galway",
				"xcoord":   53.2707,
				"ycoord":   -9.0568,
				"ber":      "B2",
			}},
		},
	}}
}

func existsFromBody(t *testing.T, body *httptest.ResponseRecorder) bool {
	t.Helper()

	var res struct {
		Data struct {
			Exists *bool `json:"exists"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(body.Body).Decode(&res))
	require.NotNil(t, res.Data.Exists)
	return *res.Data.Exists
}

func TestCheckPubNameExists(t *testing.T) {
	h := CheckPubName(anchorStore())

	req := httptest.NewRequest(http.MethodPost, "/v1/check/pub_name", strings.NewReader(`{"pub_name":"The Anchor"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, existsFromBody(t, rec))
}

func TestCheckPubNameDoesNotExist(t *testing.T) {
	h := CheckPubName(anchorStore())

	req := httptest.NewRequest(http.MethodPost, "/v1/check/pub_name", strings.NewReader(`{"pub_name":"The Harbour"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, existsFromBody(t, rec))
}

func TestCheckEmailExists(t *testing.T) {
	h := CheckEmail(anchorStore())

	req := httptest.NewRequest(http.MethodPost, "/v1/check/email", strings.NewReader(`{"email":"owner@theanchor.ie"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, existsFromBody(t, rec))
}

func TestCheckRejectsEmptyValue(t *testing.T) {
	h := CheckPubName(anchorStore())

	req := httptest.NewRequest(http.MethodPost, "/v1/check/pub_name", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchPubsListsVenues(t *testing.T) {
	h := FetchPubs(anchorStore())

	req := httptest.NewRequest(http.MethodGet, "/v1/pubs", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Data struct {
			Pubs []struct {
				ID      string  `json:"id"`
				PubName string  `json:"pub_name"`
				Xcoord  float64 `json:"xcoord"`
			} `json:"pubs"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Data.Pubs, 1)
	assert.Equal(t, "acct-1", res.Data.Pubs[0].ID)
	assert.Equal(t, "The Anchor", res.Data.Pubs[0].PubName)
	assert.Equal(t, 53.2707, res.Data.Pubs[0].Xcoord)
}

func TestFetchPubsStoreFailure(t *testing.T) {
	h := FetchPubs(&stubStore{err: errors.New("rpc unavailable")})

	req := httptest.NewRequest(http.MethodGet, "/v1/pubs", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
