package session

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

// Navigator performs route changes requested by the controller.
type Navigator interface {
	Navigate(route domain.Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(route domain.Route)

func (f NavigatorFunc) Navigate(route domain.Route) { f(route) }

type Checker interface {
	CheckNow(ctx context.Context) bool
}

type TokenStore interface {
	GetToken(ctx context.Context) (string, bool, error)
	Clear(ctx context.Context) error
}

type Evictor interface {
	DeleteAllNotDownloaded(ctx context.Context) (int, error)
}

// Snapshot is the observable session state.
type Snapshot struct {
	Route       domain.Route   `json:"route"`
	BackStack   []domain.Route `json:"back_stack"`
	Online      bool           `json:"online"`
	OfflineMode bool           `json:"offline_mode"`
}

// Controller reconciles connectivity changes with the current route. Going
// offline forces the offline screen; coming back online never navigates on
// its own, the user has to retry.
type Controller struct {
	navigator Navigator
	checker   Checker
	tokens    TokenStore
	evictor   Evictor
	logger    *logger.Logger

	mu          sync.Mutex
	route       domain.Route
	backStack   []domain.Route
	online      bool
	offlineMode bool
}

func NewController(navigator Navigator, checker Checker, tokens TokenStore, evictor Evictor, log *logger.Logger) *Controller {
	return &Controller{
		navigator: navigator,
		checker:   checker,
		tokens:    tokens,
		evictor:   evictor,
		logger:    log.WithComponent("session"),
	}
}

// Start picks the initial route: login when online, the offline screen when
// offline with a stored token, login otherwise.
func (c *Controller) Start(ctx context.Context, initialOnline bool) domain.Route {
	route := domain.RouteLogin
	if !initialOnline && c.hasToken(ctx) {
		route = domain.RouteOffline
	}

	c.mu.Lock()
	c.online = initialOnline
	c.route = route
	c.backStack = nil
	c.offlineMode = false
	c.mu.Unlock()

	c.logger.Info("session started", "online", initialOnline, "route", string(route))
	c.navigator.Navigate(route)
	return route
}

func (c *Controller) OnConnectivityChanged(online bool) {
	c.mu.Lock()
	previous := c.online
	c.online = online

	if !previous || online {
		c.mu.Unlock()
		if !previous && online {
			c.logger.Info("back online, waiting for retry", "route", string(c.Route()))
		}
		return
	}

	current := c.route
	if current == domain.RouteLogin || current == domain.RouteOffline {
		c.mu.Unlock()
		return
	}

	c.backStack = append(c.backStack, current)
	c.route = domain.RouteOffline
	c.offlineMode = false
	c.mu.Unlock()

	c.logger.Info("connection lost, switching to offline", "from", string(current))
	c.navigator.Navigate(domain.RouteOffline)
}

// Retry re-checks connectivity from the offline screen and, when online,
// returns to the route that was interrupted (home if there was none).
// Away from the offline screen it only reports the last known state; the
// monitor stays the only source of connectivity transitions there.
func (c *Controller) Retry(ctx context.Context) bool {
	if online, offline := c.offlineScreen(); !offline {
		return online
	}

	online := c.checker.CheckNow(ctx)

	c.mu.Lock()
	if c.route != domain.RouteOffline {
		online = c.online
		c.mu.Unlock()
		return online
	}
	c.online = online
	if !online {
		c.mu.Unlock()
		return false
	}

	next := domain.RouteHome
	if n := len(c.backStack); n > 0 {
		next = c.backStack[n-1]
		c.backStack = c.backStack[:n-1]
	}
	c.route = next
	c.offlineMode = false
	c.mu.Unlock()

	c.logger.Info("connection restored", "route", string(next))
	c.navigator.Navigate(next)
	return true
}

func (c *Controller) offlineScreen() (online, onOfflineRoute bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online, c.route == domain.RouteOffline
}

// ViewOfflineArticles opens the home screen in offline mode, showing only
// downloaded articles.
func (c *Controller) ViewOfflineArticles() error {
	c.mu.Lock()
	if c.route != domain.RouteOffline {
		route := c.route
		c.mu.Unlock()
		return fmt.Errorf("offline articles are only reachable from the offline screen, current route %s", route)
	}
	c.backStack = append(c.backStack, c.route)
	c.route = domain.RouteHome
	c.offlineMode = true
	c.mu.Unlock()

	c.navigator.Navigate(domain.RouteHome)
	return nil
}

// LoginSucceeded leaves the login screen for home, or for the offline screen
// if the connection dropped in between.
func (c *Controller) LoginSucceeded() domain.Route {
	return c.authenticated()
}

// RegisterSucceeded leaves the register screen the same way a login does.
func (c *Controller) RegisterSucceeded() domain.Route {
	return c.authenticated()
}

func (c *Controller) authenticated() domain.Route {
	c.mu.Lock()
	next := domain.RouteHome
	if !c.online {
		next = domain.RouteOffline
	}
	c.route = next
	c.backStack = nil
	c.offlineMode = false
	c.mu.Unlock()

	c.navigator.Navigate(next)
	return next
}

// Navigate moves to route, keeping the current one on the back stack.
func (c *Controller) Navigate(route domain.Route) {
	c.mu.Lock()
	if c.route == route {
		c.mu.Unlock()
		return
	}
	if c.route != "" {
		c.backStack = append(c.backStack, c.route)
	}
	c.route = route
	c.mu.Unlock()

	c.navigator.Navigate(route)
}

// Back pops the back stack. It reports false when there is nothing to pop.
func (c *Controller) Back() (domain.Route, bool) {
	c.mu.Lock()
	n := len(c.backStack)
	if n == 0 {
		route := c.route
		c.mu.Unlock()
		return route, false
	}
	leaving := c.route
	c.route = c.backStack[n-1]
	c.backStack = c.backStack[:n-1]
	if leaving == domain.RouteHome && c.offlineMode {
		c.offlineMode = false
	}
	route := c.route
	c.mu.Unlock()

	c.navigator.Navigate(route)
	return route, true
}

// Logout forgets the token, drops articles that were never downloaded and
// returns to login.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	if c.evictor != nil {
		n, err := c.evictor.DeleteAllNotDownloaded(ctx)
		if err != nil {
			c.logger.Warn("evict cached articles", "error", err)
		} else {
			c.logger.Info("evicted cached articles", "count", n)
		}
	}

	c.mu.Lock()
	c.route = domain.RouteLogin
	c.backStack = nil
	c.offlineMode = false
	c.mu.Unlock()

	c.navigator.Navigate(domain.RouteLogin)
	return nil
}

func (c *Controller) Route() domain.Route {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.route
}

func (c *Controller) BackStack() []domain.Route {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.backStack)
}

func (c *Controller) OfflineMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offlineMode
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Route:       c.route,
		BackStack:   slices.Clone(c.backStack),
		Online:      c.online,
		OfflineMode: c.offlineMode,
	}
}

func (c *Controller) hasToken(ctx context.Context) bool {
	token, ok, err := c.tokens.GetToken(ctx)
	if err != nil {
		c.logger.Warn("read stored token", "error", err)
		return false
	}
	return ok && token != ""
}
