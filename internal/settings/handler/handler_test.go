package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tiyodv/freeCodeCamp/internal/i18n"
	"github.com/tiyodv/freeCodeCamp/internal/settings/handler/mocks"
	settingsModel "github.com/tiyodv/freeCodeCamp/internal/settings/models"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
	"github.com/tiyodv/freeCodeCamp/pkg/testutil"
)

type SettingsHandlerSuite struct {
	suite.Suite
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerSuite))
}

func (s *SettingsHandlerSuite) newHandler() (*Handler, *mocks.MockService) {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(mockService, logger, nil, nil), mockService
}

func (s *SettingsHandlerSuite) TestUpdateEmailSuccess() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		UpdateEmail(gomock.Any(), "user-1", "new@example.com").
		Return(settingsModel.Success(i18n.KeyUpdatedEmail), nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/update-my-email",
		settingsModel.UpdateEmailRequest{Email: "new@example.com"})
	req = testutil.WithUserID(req, "user-1")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleUpdateEmail), req)

	s.Equal(http.StatusOK, rr.Code)
	flash := testutil.UnmarshalResponse[settingsModel.Flash](s.T(), rr)
	s.Equal(settingsModel.FlashSuccess, flash.Type)
	s.Equal(i18n.KeyUpdatedEmail, flash.Message)
}

func (s *SettingsHandlerSuite) TestValidationFailureStaysHTTP200() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		UpdateUsername(gomock.Any(), "user-1", "taken").
		Return(settingsModel.Danger(i18n.KeyUsernameTaken), nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/update-my-username",
		settingsModel.UpdateUsernameRequest{Username: "taken"})
	req = testutil.WithUserID(req, "user-1")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleUpdateUsername), req)

	s.Equal(http.StatusOK, rr.Code)
	flash := testutil.UnmarshalResponse[settingsModel.Flash](s.T(), rr)
	s.Equal(settingsModel.FlashDanger, flash.Type)
	s.Equal(i18n.KeyUsernameTaken, flash.Message)
}

func (s *SettingsHandlerSuite) TestInternalErrorBecomes500WithDangerFlash() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		UpdateTheme(gomock.Any(), "user-1", "night").
		Return(settingsModel.Flash{}, dErrors.New(dErrors.CodeInternal, "store down"))

	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/update-my-theme",
		settingsModel.UpdateThemeRequest{Theme: "night"})
	req = testutil.WithUserID(req, "user-1")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleUpdateTheme), req)

	s.Equal(http.StatusInternalServerError, rr.Code)
	flash := testutil.UnmarshalResponse[settingsModel.Flash](s.T(), rr)
	s.Equal(settingsModel.FlashDanger, flash.Type)
	s.Equal(i18n.KeyWrongUpdating, flash.Message)
}

func (s *SettingsHandlerSuite) TestNotFoundKeepsErrorEnvelope() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		UpdateSound(gomock.Any(), "ghost", true).
		Return(settingsModel.Flash{}, dErrors.New(dErrors.CodeNotFound, "user not found"))

	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/update-my-sound",
		settingsModel.UpdateSoundRequest{Sound: true})
	req = testutil.WithUserID(req, "ghost")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleUpdateSound), req)

	s.Equal(http.StatusNotFound, rr.Code)
	body := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
	s.Equal(string(dErrors.CodeNotFound), (*body)["error"])
}

func (s *SettingsHandlerSuite) TestMalformedBody() {
	h, _ := s.newHandler()

	req := testutil.NewRequestWithBody(s.T(), http.MethodPut, "/update-my-email", `{"email":`)
	req = testutil.WithUserID(req, "user-1")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleUpdateEmail), req)

	s.Equal(http.StatusBadRequest, rr.Code)
	flash := testutil.UnmarshalResponse[settingsModel.Flash](s.T(), rr)
	s.Equal(settingsModel.FlashDanger, flash.Type)
	s.Equal(i18n.KeyWrongUpdating, flash.Message)
}

func (s *SettingsHandlerSuite) TestMissingAuthContext() {
	h, _ := s.newHandler()

	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/update-my-email",
		settingsModel.UpdateEmailRequest{Email: "new@example.com"})

	rr := testutil.DoRequest(http.HandlerFunc(h.handleUpdateEmail), req)

	s.Equal(http.StatusInternalServerError, rr.Code)
}

func (s *SettingsHandlerSuite) TestHonestyCannotBeRevoked() {
	h, _ := s.newHandler()

	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/update-my-honesty",
		settingsModel.UpdateHonestyRequest{IsHonest: false})
	req = testutil.WithUserID(req, "user-1")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleUpdateHonesty), req)

	s.Equal(http.StatusOK, rr.Code)
	flash := testutil.UnmarshalResponse[settingsModel.Flash](s.T(), rr)
	s.Equal(settingsModel.FlashDanger, flash.Type)
}
