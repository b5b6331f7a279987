package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
	"newsreader/internal/service/mocks"
)

type recordingNavigator struct {
	mu     sync.Mutex
	routes []domain.Route
}

func (n *recordingNavigator) Navigate(route domain.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) count(route domain.Route) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, r := range n.routes {
		if r == route {
			c++
		}
	}
	return c
}

func (n *recordingNavigator) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = nil
}

type stubChecker struct{ online bool }

func (c *stubChecker) CheckNow(context.Context) bool { return c.online }

type ControllerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	navigator *recordingNavigator
	checker   *stubChecker
	tokens    *mocks.MockCredentialStore
	cache     *mocks.MockArticleCache

	controller *Controller
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.navigator = &recordingNavigator{}
	s.checker = &stubChecker{}
	s.tokens = mocks.NewMockCredentialStore(s.ctrl)
	s.cache = mocks.NewMockArticleCache(s.ctrl)

	s.controller = NewController(s.navigator, s.checker, s.tokens, s.cache, logger.NewNop())
}

func (s *ControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

// startAtHome starts online, logs in and returns with a clean navigation log.
func (s *ControllerTestSuite) startAtHome() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("", false, nil).AnyTimes()
	s.controller.Start(s.ctx, true)
	s.controller.LoginSucceeded()
	s.navigator.reset()
}

func (s *ControllerTestSuite) TestStart_OnlineGoesToLogin() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("token", true, nil).AnyTimes()

	s.Equal(domain.RouteLogin, s.controller.Start(s.ctx, true))
	s.Equal([]domain.Route{domain.RouteLogin}, s.navigator.routes)
}

func (s *ControllerTestSuite) TestStart_OfflineWithToken() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("token", true, nil)

	s.Equal(domain.RouteOffline, s.controller.Start(s.ctx, false))
}

func (s *ControllerTestSuite) TestStart_OfflineWithoutToken() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("", false, nil)

	s.Equal(domain.RouteLogin, s.controller.Start(s.ctx, false))
}

func (s *ControllerTestSuite) TestStart_TokenStoreErrorMeansLogin() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("", false, errors.New("corrupt file"))

	s.Equal(domain.RouteLogin, s.controller.Start(s.ctx, false))
}

func (s *ControllerTestSuite) TestGoingOfflineFromHomeNavigatesOnce() {
	s.startAtHome()

	s.controller.OnConnectivityChanged(false)
	s.controller.OnConnectivityChanged(false)

	s.Equal(1, s.navigator.count(domain.RouteOffline))
	s.Equal(domain.RouteOffline, s.controller.Route())
	s.Equal([]domain.Route{domain.RouteHome}, s.controller.BackStack())
}

func (s *ControllerTestSuite) TestComingBackOnlineDoesNotNavigate() {
	s.startAtHome()
	s.controller.OnConnectivityChanged(false)
	s.navigator.reset()

	s.controller.OnConnectivityChanged(true)

	s.Empty(s.navigator.routes)
	s.Equal(domain.RouteOffline, s.controller.Route())
}

func (s *ControllerTestSuite) TestGoingOfflineOnLoginStays() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("", false, nil)
	s.controller.Start(s.ctx, true)
	s.navigator.reset()

	s.controller.OnConnectivityChanged(false)

	s.Empty(s.navigator.routes)
	s.Equal(domain.RouteLogin, s.controller.Route())
}

func (s *ControllerTestSuite) TestGoingOfflineFromComments() {
	s.startAtHome()
	s.controller.Navigate(domain.RouteComments)

	s.controller.OnConnectivityChanged(false)

	s.Equal(domain.RouteOffline, s.controller.Route())
	s.Equal([]domain.Route{domain.RouteHome, domain.RouteComments}, s.controller.BackStack())
}

func (s *ControllerTestSuite) TestRetry_RestoresInterruptedRoute() {
	s.startAtHome()
	s.controller.Navigate(domain.RouteCreate)
	s.controller.OnConnectivityChanged(false)
	s.navigator.reset()

	s.checker.online = false
	s.False(s.controller.Retry(s.ctx))
	s.Equal(domain.RouteOffline, s.controller.Route())
	s.Empty(s.navigator.routes)

	s.checker.online = true
	s.True(s.controller.Retry(s.ctx))
	s.Equal(domain.RouteCreate, s.controller.Route())
	s.Equal([]domain.Route{domain.RouteCreate}, s.navigator.routes)
}

func (s *ControllerTestSuite) TestRetry_FromColdOfflineStartGoesHome() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("token", true, nil)
	s.controller.Start(s.ctx, false)

	s.checker.online = true
	s.True(s.controller.Retry(s.ctx))
	s.Equal(domain.RouteHome, s.controller.Route())
	s.True(s.controller.Snapshot().Online)
}

func (s *ControllerTestSuite) TestRetryAwayFromOfflineKeepsMonitorTransition() {
	s.startAtHome()

	// The link is already gone but the monitor has not ticked yet.
	s.checker.online = false
	s.True(s.controller.Retry(s.ctx))
	s.Equal(domain.RouteHome, s.controller.Route())
	s.Empty(s.navigator.routes)

	s.controller.OnConnectivityChanged(false)

	s.Equal(1, s.navigator.count(domain.RouteOffline))
	s.Equal(domain.RouteOffline, s.controller.Route())
	s.Equal([]domain.Route{domain.RouteHome}, s.controller.BackStack())
}

func (s *ControllerTestSuite) TestViewOfflineArticles() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("token", true, nil)
	s.controller.Start(s.ctx, false)

	s.Require().NoError(s.controller.ViewOfflineArticles())
	s.Equal(domain.RouteHome, s.controller.Route())
	s.True(s.controller.OfflineMode())

	route, ok := s.controller.Back()
	s.True(ok)
	s.Equal(domain.RouteOffline, route)
	s.False(s.controller.OfflineMode())
}

func (s *ControllerTestSuite) TestViewOfflineArticles_OnlyFromOfflineScreen() {
	s.startAtHome()
	s.Error(s.controller.ViewOfflineArticles())
}

func (s *ControllerTestSuite) TestLoginSucceededWhileOffline() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("", false, nil)
	s.controller.Start(s.ctx, false)

	s.Equal(domain.RouteOffline, s.controller.LoginSucceeded())
}

func (s *ControllerTestSuite) TestRegisterSucceededClearsBackStack() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("", false, nil)
	s.controller.Start(s.ctx, true)
	s.controller.Navigate(domain.RouteRegister)
	s.navigator.reset()

	s.Equal(domain.RouteHome, s.controller.RegisterSucceeded())
	s.Equal(domain.RouteHome, s.controller.Route())
	s.Empty(s.controller.BackStack())
	s.Equal([]domain.Route{domain.RouteHome}, s.navigator.routes)
}

func (s *ControllerTestSuite) TestRegisterSucceededWhileOffline() {
	s.tokens.EXPECT().GetToken(gomock.Any()).Return("", false, nil)
	s.controller.Start(s.ctx, false)

	s.Equal(domain.RouteOffline, s.controller.RegisterSucceeded())
}

func (s *ControllerTestSuite) TestBack_EmptyStack() {
	s.startAtHome()

	route, ok := s.controller.Back()
	s.False(ok)
	s.Equal(domain.RouteHome, route)
}

func (s *ControllerTestSuite) TestLogout() {
	s.startAtHome()
	s.tokens.EXPECT().Clear(gomock.Any()).Return(nil)
	s.cache.EXPECT().DeleteAllNotDownloaded(gomock.Any()).Return(3, nil)

	s.Require().NoError(s.controller.Logout(s.ctx))
	s.Equal(domain.RouteLogin, s.controller.Route())
	s.Empty(s.controller.BackStack())
}

func (s *ControllerTestSuite) TestLogout_EvictionFailureIsNotFatal() {
	s.startAtHome()
	s.tokens.EXPECT().Clear(gomock.Any()).Return(nil)
	s.cache.EXPECT().DeleteAllNotDownloaded(gomock.Any()).Return(0, domain.ErrCacheWrite)

	s.NoError(s.controller.Logout(s.ctx))
	s.Equal(domain.RouteLogin, s.controller.Route())
}

func (s *ControllerTestSuite) TestLogout_ClearFails() {
	s.startAtHome()
	s.tokens.EXPECT().Clear(gomock.Any()).Return(errors.New("read-only fs"))

	s.Error(s.controller.Logout(s.ctx))
	s.Equal(domain.RouteHome, s.controller.Route())
}
