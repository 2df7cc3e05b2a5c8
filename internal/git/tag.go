package git

import (
	"errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	hotflowerrors "hotflow.dev/hotflow/internal/errors"
)

// CreateAnnotatedTag creates an annotated tag pointing at the given commit.
// Returns a ConflictError if a tag of that name already exists.
func (r *Repository) CreateAnnotatedTag(name string, hash plumbing.Hash, message string) (*plumbing.Reference, error) {
	tagger, err := r.tagger()
	if err != nil {
		return nil, err
	}

	ref, err := r.CreateTag(name, hash, &gogit.CreateTagOptions{
		Tagger:  tagger,
		Message: message,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrTagExists) {
			return nil, hotflowerrors.NewTagExistsError(name)
		}
		return nil, fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return ref, nil
}

// tagger builds the tag author signature from the repository config, falling
// back to a fixed identity when no user is configured
func (r *Repository) tagger() (*object.Signature, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read repository config: %w", err)
	}

	name := cfg.User.Name
	email := cfg.User.Email
	if name == "" {
		name = "hotflow"
	}
	if email == "" {
		email = "hotflow@localhost"
	}

	return &object.Signature{
		Name:  name,
		Email: email,
		When:  time.Now(),
	}, nil
}
