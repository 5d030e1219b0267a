package cli

import (
	"errors"

	"freeflow-cli/internal/api"
	"freeflow-cli/internal/model"
)

var errLoggedOut = errors.New("not logged in; run `freeflow auth login --email ... --password ...` (or `freeflow auth register`)")

type sessionContext struct {
	Session *model.Session
	Client  *api.Client
}

// requireSession is shared by every command that hits an authenticated
// endpoint. An expired or malformed local session reads as logged-out.
func requireSession(app *App) (*sessionContext, error) {
	sess, _, err := loadSession()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errLoggedOut
	}
	client, err := apiClient(app, sess)
	if err != nil {
		return nil, err
	}
	return &sessionContext{Session: sess, Client: client}, nil
}
