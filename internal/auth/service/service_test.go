package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tiyodv/freeCodeCamp/internal/auth/store/session"
	jwttoken "github.com/tiyodv/freeCodeCamp/internal/jwt_token"
	userstore "github.com/tiyodv/freeCodeCamp/internal/user/store"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

const testUA = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"

type AuthServiceSuite struct {
	suite.Suite
	ctx      context.Context
	users    *userstore.MemoryStore
	sessions *session.MemoryStore
	service  *Service
	now      time.Time
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = userstore.NewMemoryStore()
	s.now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s.sessions = session.NewMemoryStore(session.WithClock(func() time.Time { return s.now }))
	jwt := jwttoken.NewJWTService("test-signing-key", "test-issuer", "test-audience")
	s.service = NewService(s.users, s.sessions, jwt, nil, nil,
		30*24*time.Hour, time.Hour,
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *AuthServiceSuite) TestSignup() {
	user, err := s.service.Signup(s.ctx, "Quincy.Larson@Example.COM", "secretpass")
	s.Require().NoError(err)

	s.Equal("quincy.larson@example.com", user.Email)
	s.True(strings.HasPrefix(user.Username, "fcc"))
	s.Equal("Quincy Larson", user.Name)
	s.True(user.ProfileUI.IsLocked)
	s.False(user.EmailVerified)
	s.NotEqual("secretpass", user.PasswordHash)

	stored, err := s.users.FindByEmail(s.ctx, "quincy.larson@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, stored.ID)
}

func (s *AuthServiceSuite) TestSignupDuplicateEmail() {
	_, err := s.service.Signup(s.ctx, "camper@example.com", "secretpass")
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, "CAMPER@example.com", "otherpass1")
	s.Require().Error(err)
	s.Equal(dErrors.CodeConflict, dErrors.CodeOf(err))
}

func (s *AuthServiceSuite) TestSignupWeakPassword() {
	_, err := s.service.Signup(s.ctx, "camper@example.com", "short")
	s.Require().Error(err)
	s.Equal(dErrors.CodeBadRequest, dErrors.CodeOf(err))
}

func (s *AuthServiceSuite) TestSigninHappyPath() {
	user, err := s.service.Signup(s.ctx, "camper@example.com", "secretpass")
	s.Require().NoError(err)

	resp, err := s.service.Signin(s.ctx, "camper@example.com", "secretpass", testUA)
	s.Require().NoError(err)
	s.Equal(user.ID, resp.UserID)
	s.Equal(user.Username, resp.Username)
	s.NotEmpty(resp.AccessToken)
}

func (s *AuthServiceSuite) TestSigninSessionCarriesDeviceLabel() {
	_, err := s.service.Signup(s.ctx, "camper@example.com", "secretpass")
	s.Require().NoError(err)

	_, err = s.service.Signin(s.ctx, "camper@example.com", "secretpass", testUA)
	s.Require().NoError(err)

	sessions := s.sessions.All()
	s.Require().Len(sessions, 1)
	s.Contains(sessions[0].Device, "Firefox")
	s.Equal(s.now.Add(30*24*time.Hour), sessions[0].ExpiresAt)
}

func (s *AuthServiceSuite) TestSigninBadCredentialsAreIndistinguishable() {
	_, err := s.service.Signup(s.ctx, "camper@example.com", "secretpass")
	s.Require().NoError(err)

	_, wrongPassword := s.service.Signin(s.ctx, "camper@example.com", "wrongpass1", testUA)
	_, unknownEmail := s.service.Signin(s.ctx, "ghost@example.com", "secretpass", testUA)

	s.Require().Error(wrongPassword)
	s.Require().Error(unknownEmail)
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(wrongPassword))
	s.Equal(dErrors.CodeUnauthorized, dErrors.CodeOf(unknownEmail))
	s.Equal(wrongPassword.Error(), unknownEmail.Error())
}

func (s *AuthServiceSuite) TestSignoutIsIdempotent() {
	_, err := s.service.Signup(s.ctx, "camper@example.com", "secretpass")
	s.Require().NoError(err)
	_, err = s.service.Signin(s.ctx, "camper@example.com", "secretpass", testUA)
	s.Require().NoError(err)

	sessions := s.sessions.All()
	s.Require().Len(sessions, 1)

	s.Require().NoError(s.service.Signout(s.ctx, sessions[0].ID))
	s.Require().NoError(s.service.Signout(s.ctx, sessions[0].ID))
	s.Empty(s.sessions.All())
}
