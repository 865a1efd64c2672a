package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tiyodv/freeCodeCamp/internal/curriculum/models"
	"github.com/tiyodv/freeCodeCamp/internal/curriculum/render"
	"github.com/tiyodv/freeCodeCamp/internal/curriculum/store"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

type CurriculumServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *store.MemoryStore
	service *Service
}

func TestCurriculumServiceSuite(t *testing.T) {
	suite.Run(t, new(CurriculumServiceSuite))
}

func (s *CurriculumServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewMemoryStore()
	s.service = NewService(s.store, render.NewMarkdown())

	s.store.Seed(models.Superblock{
		Slug:  "responsive-web-design",
		Title: "Responsive Web Design",
		Order: 1,
		Blocks: []models.Block{
			{Slug: "basic-html", Title: "Basic HTML", Order: 1},
			{Slug: "basic-css", Title: "Basic CSS", Order: 2},
		},
	}, models.Superblock{
		Slug:  "javascript-algorithms",
		Title: "JavaScript Algorithms and Data Structures",
		Order: 2,
	})
	s.store.SeedChallenges(
		models.Challenge{ID: "ch-2", BlockSlug: "basic-html", Title: "Headers", Order: 2, Instructions: "Add an `h2`."},
		models.Challenge{ID: "ch-1", BlockSlug: "basic-html", Title: "Hello World", Order: 1, Instructions: "# Hello\n\nAdd an `h1`."},
	)
}

func (s *CurriculumServiceSuite) TestMapOrdersEverything() {
	superblocks, err := s.service.Map(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(superblocks, 2)
	s.Equal("responsive-web-design", superblocks[0].Slug)

	blocks := superblocks[0].Blocks
	s.Require().Len(blocks, 2)
	s.Equal("basic-html", blocks[0].Slug)
	s.Equal([]string{"ch-1", "ch-2"}, blocks[0].ChallengeIDs)
}

func (s *CurriculumServiceSuite) TestChallengeRendersInstructions() {
	challenge, err := s.service.Challenge(s.ctx, "ch-1")
	s.Require().NoError(err)
	s.Equal("Hello World", challenge.Title)
	s.Contains(challenge.InstructionsHTML, "<h1>Hello</h1>")
	s.Contains(challenge.InstructionsHTML, "<code>h1</code>")
}

func (s *CurriculumServiceSuite) TestChallengeNotFound() {
	_, err := s.service.Challenge(s.ctx, "ghost")
	s.Require().Error(err)
	s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func (s *CurriculumServiceSuite) TestChallengeRequiresID() {
	_, err := s.service.Challenge(s.ctx, "")
	s.Require().Error(err)
	s.Equal(dErrors.CodeBadRequest, dErrors.CodeOf(err))
}
