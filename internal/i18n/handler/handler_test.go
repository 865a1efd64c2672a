package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/tiyodv/freeCodeCamp/internal/i18n"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
	"github.com/tiyodv/freeCodeCamp/pkg/testutil"
)

type LocalesHandlerSuite struct {
	suite.Suite
	router chi.Router
}

func TestLocalesHandlerSuite(t *testing.T) {
	suite.Run(t, new(LocalesHandlerSuite))
}

func (s *LocalesHandlerSuite) SetupTest() {
	translator := i18n.NewTranslator(i18n.DefaultLocale)
	translator.SetCatalog("es", i18n.Catalog{
		i18n.KeyUpdatedEmail: "Hemos actualizado tu correo",
	})
	translator.SetCatalog("pt-br", i18n.Catalog{})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, translator, nil)

	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *LocalesHandlerSuite) TestListLocalesSorted() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/locales")

	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusOK, rr.Code)
	body := testutil.UnmarshalResponse[map[string][]string](s.T(), rr)
	s.Equal([]string{"es", "pt-br"}, (*body)["locales"])
}

func (s *LocalesHandlerSuite) TestCatalogMergesFallbacks() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/locales/es")

	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusOK, rr.Code)
	catalog := testutil.UnmarshalResponse[i18n.Catalog](s.T(), rr)
	s.Equal("Hemos actualizado tu correo", (*catalog)[i18n.KeyUpdatedEmail])
	// Keys the locale does not translate come from the built-in fallbacks.
	s.NotEmpty((*catalog)[i18n.KeyUsernameTaken])
}

func (s *LocalesHandlerSuite) TestDefaultLocaleAlwaysAvailable() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/locales/en")

	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusOK, rr.Code)
	catalog := testutil.UnmarshalResponse[i18n.Catalog](s.T(), rr)
	s.NotEmpty((*catalog)[i18n.KeyUpdatedEmail])
}

func (s *LocalesHandlerSuite) TestUnknownLocale() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/locales/klingon")

	rr := testutil.DoRequest(s.router, req)

	s.Equal(http.StatusNotFound, rr.Code)
	body := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
	s.Equal(string(dErrors.CodeNotFound), (*body)["error"])
}
