package application

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"gitship/domain"
)

// creationSettleDelay is how long to wait after creating a repository
// before a push is attempted against it. The API is eventually
// consistent; a push immediately after creation can hit a remote that
// does not accept refs yet.
const creationSettleDelay = 2 * time.Second

// Ensurer makes sure a repository exists on the hosting service,
// creating it when absent. Ensure is idempotent: a repository that
// already exists is left untouched.
type Ensurer struct {
	api         domain.GitHubAPI
	settleDelay time.Duration
}

// NewEnsurer creates an ensurer with the default settle delay.
func NewEnsurer(api domain.GitHubAPI) *Ensurer {
	return &Ensurer{api: api, settleDelay: creationSettleDelay}
}

// Ensure checks for spec.Owner/spec.Name and creates it when the query
// comes back "not found". An empty owner resolves to the authenticated
// user. Query failures other than "not found" are fatal: they are not
// retried and not treated as absence.
func (e *Ensurer) Ensure(ctx context.Context, spec domain.RepoSpec) error {
	owner := spec.Owner
	ownerGiven := owner != ""
	if !ownerGiven {
		login, err := e.api.AuthenticatedUser(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve repository owner: %w", err)
		}
		owner = login
	}

	found, err := e.api.HasRepository(ctx, owner, spec.Name)
	if err != nil {
		return err
	}
	if found {
		logger.Debugf("Repository %s/%s already exists", owner, spec.Name)
		return nil
	}

	logger.Infof("Creating repository %s/%s (private=%v)...", owner, spec.Name, spec.Private)
	if ownerGiven {
		err = e.api.CreateOrgRepository(ctx, owner, spec.Name, spec.Private)
	} else {
		err = e.api.CreateRepository(ctx, spec.Name, spec.Private)
	}
	if err != nil {
		return err
	}

	// Crude consistency wait, not a poll.
	time.Sleep(e.settleDelay)
	return nil
}
