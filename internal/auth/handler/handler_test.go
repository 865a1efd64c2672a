package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tiyodv/freeCodeCamp/internal/auth/handler/mocks"
	authModel "github.com/tiyodv/freeCodeCamp/internal/auth/models"
	usermodels "github.com/tiyodv/freeCodeCamp/internal/user/models"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
	"github.com/tiyodv/freeCodeCamp/pkg/testutil"
)

type AuthHandlerSuite struct {
	suite.Suite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) newHandler() (*Handler, *mocks.MockService) {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(mockService, logger, nil, nil, nil), mockService
}

func (s *AuthHandlerSuite) TestSignup() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		Signup(gomock.Any(), "camper@example.com", "correct horse battery").
		Return(&usermodels.User{ID: "user-1", Username: "fcc-camper"}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/signup",
		authModel.SignupRequest{Email: "camper@example.com", Password: "correct horse battery"})

	rr := testutil.DoRequest(http.HandlerFunc(h.handleSignup), req)

	s.Equal(http.StatusCreated, rr.Code)
	body := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
	s.Equal("user-1", (*body)["user_id"])
	s.Equal("fcc-camper", (*body)["username"])
}

func (s *AuthHandlerSuite) TestSignupDuplicateEmail() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		Signup(gomock.Any(), "taken@example.com", "correct horse battery").
		Return(nil, dErrors.New(dErrors.CodeConflict, "email already registered"))

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/signup",
		authModel.SignupRequest{Email: "taken@example.com", Password: "correct horse battery"})

	rr := testutil.DoRequest(http.HandlerFunc(h.handleSignup), req)

	s.Equal(http.StatusConflict, rr.Code)
	body := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
	s.Equal(string(dErrors.CodeConflict), (*body)["error"])
}

func (s *AuthHandlerSuite) TestSignupMalformedBody() {
	h, _ := s.newHandler()

	req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/signup", `{"email":`)

	rr := testutil.DoRequest(http.HandlerFunc(h.handleSignup), req)

	s.Equal(http.StatusBadRequest, rr.Code)
}

func (s *AuthHandlerSuite) TestSignin() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		Signin(gomock.Any(), "camper@example.com", "correct horse battery", gomock.Any()).
		Return(authModel.SigninResponse{
			AccessToken: "token",
			UserID:      "user-1",
			Username:    "fcc-camper",
		}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/signin",
		authModel.SigninRequest{Email: "camper@example.com", Password: "correct horse battery"})

	rr := testutil.DoRequest(http.HandlerFunc(h.handleSignin), req)

	s.Equal(http.StatusOK, rr.Code)
	res := testutil.UnmarshalResponse[authModel.SigninResponse](s.T(), rr)
	s.Equal("token", res.AccessToken)
	s.Equal("fcc-camper", res.Username)
}

func (s *AuthHandlerSuite) TestSigninBadCredentials() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		Signin(gomock.Any(), "camper@example.com", "wrong", gomock.Any()).
		Return(authModel.SigninResponse{}, dErrors.New(dErrors.CodeUnauthorized, "invalid email or password"))

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/signin",
		authModel.SigninRequest{Email: "camper@example.com", Password: "wrong"})

	rr := testutil.DoRequest(http.HandlerFunc(h.handleSignin), req)

	s.Equal(http.StatusUnauthorized, rr.Code)
	body := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
	s.Equal(string(dErrors.CodeUnauthorized), (*body)["error"])
}

func (s *AuthHandlerSuite) TestSignout() {
	h, mockService := s.newHandler()
	mockService.EXPECT().
		Signout(gomock.Any(), "session-1").
		Return(nil)

	req := testutil.NewRequest(s.T(), http.MethodPost, "/signout")
	req = testutil.WithAuth(req, "user-1", "session-1")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleSignout), req)

	s.Equal(http.StatusNoContent, rr.Code)
}

func (s *AuthHandlerSuite) TestSignoutMissingSessionContext() {
	h, _ := s.newHandler()

	req := testutil.NewRequest(s.T(), http.MethodPost, "/signout")

	rr := testutil.DoRequest(http.HandlerFunc(h.handleSignout), req)

	s.Equal(http.StatusInternalServerError, rr.Code)
}
