package domain

import "time"

// Route is a navigation destination of the client UI.
type Route string

const (
	RouteLogin    Route = "login"
	RouteRegister Route = "register"
	RouteHome     Route = "home"
	RouteOffline  Route = "offline"
	RouteComments Route = "comments"
	RouteCreate   Route = "create"
)

// ConnectivityState is the last observed reachability.
type ConnectivityState struct {
	IsOnline      bool      `json:"is_online"`
	LastCheckedAt time.Time `json:"last_checked_at"`
}
