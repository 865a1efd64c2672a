package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tiyodv/freeCodeCamp/internal/curriculum/models"
	"github.com/tiyodv/freeCodeCamp/internal/curriculum/render"
	"github.com/tiyodv/freeCodeCamp/internal/curriculum/store"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

// Service serves the curriculum map and renders challenge instructions.
type Service struct {
	store    store.Store
	markdown *render.Markdown
	tracer   trace.Tracer
}

func NewService(s store.Store, markdown *render.Markdown) *Service {
	return &Service{
		store:    s,
		markdown: markdown,
		tracer:   otel.Tracer("curriculum"),
	}
}

// Map returns every superblock with its blocks and challenge ids.
func (s *Service) Map(ctx context.Context) ([]models.Superblock, error) {
	ctx, span := s.tracer.Start(ctx, "curriculum.Map")
	defer span.End()

	superblocks, err := s.store.ListSuperblocks(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list superblocks", err)
	}
	return superblocks, nil
}

// Challenge returns one challenge with its instructions rendered to HTML.
func (s *Service) Challenge(ctx context.Context, id string) (models.Challenge, error) {
	ctx, span := s.tracer.Start(ctx, "curriculum.Challenge")
	defer span.End()

	if id == "" {
		return models.Challenge{}, dErrors.New(dErrors.CodeBadRequest, "challenge id is required")
	}

	challenge, err := s.store.FindChallenge(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Challenge{}, dErrors.Wrap(dErrors.CodeNotFound, "challenge not found", err)
		}
		return models.Challenge{}, dErrors.Wrap(dErrors.CodeInternal, "find challenge", err)
	}

	html, err := s.markdown.Render(challenge.Instructions)
	if err != nil {
		return models.Challenge{}, dErrors.Wrap(dErrors.CodeInternal, "render instructions", err)
	}
	challenge.InstructionsHTML = html
	return challenge, nil
}
