package publican

import (
	"context"
	"errors"
	"fmt"
	"time"

	"niteout-backend/geocode"
	"niteout-backend/identity"
	"niteout-backend/logger"
	"niteout-backend/model"
	"niteout-backend/response"
	"niteout-backend/session"
	"niteout-backend/store"
)

// Registrar runs the publican signup flow against the identity service, the
// geocoder and the document store. All collaborators are injected so tests
// can substitute fakes.
type Registrar struct {
	identity   identity.Service
	geocoder   geocode.Resolver
	store      store.Store
	sessions   session.Store
	sessionTTL time.Duration
}

func NewRegistrar(id identity.Service, g geocode.Resolver, st store.Store, sess session.Store, sessionTTL time.Duration) *Registrar {
	return &Registrar{
		identity:   id,
		geocoder:   g,
		store:      st,
		sessions:   sess,
		sessionTTL: sessionTTL,
	}
}

// Register validates the submitted profile, rejects duplicate pub names,
// geocodes the Eircode, creates the identity account and persists the
// profile keyed by the new account id. Stages run in that order and stop at
// the first failure; geocoding runs before account creation so a bad Eircode
// cannot leave an orphaned identity account.
func (r *Registrar) Register(ctx context.Context, p *model.Publican, password string) (*model.Publican, error) {
	if err := validate(p, password); err != nil {
		return nil, err
	}

	// Two concurrent registrations with the same pub name can both pass
	// this check; the profile key is the account id, not the name, so the
	// store cannot reject the second writer.
	docs, err := r.store.QueryByField(ctx, store.CollectionPublicans, "pub_name", p.PubName)
	if err != nil {
		return nil, fmt.Errorf("register: error checking pub name %q: %w", p.PubName, err)
	}
	if len(docs) > 0 {
		return nil, response.DuplicatePub()
	}

	coords, err := r.geocoder.Resolve(ctx, p.Eircode)
	if errors.Is(err, geocode.ErrNotFound) {
		return nil, response.GeocodingFailed()
	}
	if err != nil {
		return nil, fmt.Errorf("register: error resolving eircode %q: %w", p.Eircode, err)
	}

	accountID, err := r.identity.CreateAccount(ctx, p.Email, password)
	switch {
	case errors.Is(err, identity.ErrEmailInUse):
		return nil, response.DuplicateEntry()
	case errors.Is(err, identity.ErrWeakPassword):
		return nil, response.WeakPassword()
	case errors.Is(err, identity.ErrInvalidEmail):
		return nil, response.InvalidEmail()
	case err != nil:
		return nil, fmt.Errorf("register: error creating identity account: %w", err)
	}

	if err := r.identity.SetDisplayName(ctx, accountID, p.PubName); err != nil {
		return nil, fmt.Errorf("register: error setting display name for %s: %w", accountID, err)
	}

	now := time.Now().UTC()
	p.PubID = accountID
	p.Xcoord = coords.Xcoord
	p.Ycoord = coords.Ycoord
	p.Events = []string{}
	p.CreatedAt = &now

	if err := r.store.Set(ctx, store.CollectionPublicans, accountID, p); err != nil {
		return nil, fmt.Errorf("register: error persisting publican %s: %w", accountID, err)
	}

	if err := r.sessions.Set(accountID, accountID, r.sessionTTL); err != nil {
		logger.Warnf(ctx, "register: error writing session for %s: %+v", accountID, err)
	}

	return p, nil
}
