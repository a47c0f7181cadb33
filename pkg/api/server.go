package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cbodonnell/lumen/pkg/api/handlers"
	"github.com/cbodonnell/lumen/pkg/api/middleware"
	"github.com/cbodonnell/lumen/pkg/game/constants"
	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/net/netutil"
)

const (
	// SyncPath serves the player's game mode and health
	SyncPath = "/lumen/sync"
	// SkinPath serves the player's skin front view
	SkinPath = "/lumen/sync/skin"

	// gzipMinSize keeps the small stats responses uncompressed
	gzipMinSize = 512
)

type APIServer struct {
	server         *http.Server
	maxConnections int
}

type NewAPIServerOptions struct {
	BindAddress net.IP
	Port        int
	// MaxConnections limits the connections served at once
	MaxConnections int
	// SnapshotTimeout bounds the time a handler waits for a snapshot
	SnapshotTimeout time.Duration
	Snapshots       handlers.SnapshotRequester
}

// NewAPIServer creates a new http.Server for handling sync requests
func NewAPIServer(opts NewAPIServerOptions) (*APIServer, error) {
	handler, err := NewHandler(opts.Snapshots)
	if err != nil {
		return nil, err
	}

	bindAddress := opts.BindAddress
	if bindAddress == nil {
		bindAddress = net.IPv4zero
	}
	maxConnections := opts.MaxConnections
	if maxConnections <= 0 {
		maxConnections = constants.MaxConnections
	}
	snapshotTimeout := opts.SnapshotTimeout
	if snapshotTimeout <= 0 {
		snapshotTimeout = constants.SnapshotTimeout
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(bindAddress.String(), strconv.Itoa(opts.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      snapshotTimeout + 5*time.Second,
	}
	// every response closes its connection
	server.SetKeepAlivesEnabled(false)

	return &APIServer{
		server:         server,
		maxConnections: maxConnections,
	}, nil
}

// NewHandler routes the sync endpoints.
func NewHandler(snapshots handlers.SnapshotRequester) (http.Handler, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot requester is required")
	}

	router := mux.NewRouter()
	router.NotFoundHandler = handlers.HandleNotFound()
	router.MethodNotAllowedHandler = handlers.HandleMethodNotAllowed()
	router.Handle(SyncPath, handlers.HandleSync(snapshots)).Methods(http.MethodGet)
	router.Handle(SkinPath, handlers.HandleSkin(snapshots)).Methods(http.MethodGet)

	gzipWrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip wrapper: %v", err)
	}

	var handler http.Handler = router
	handler = middleware.NewLogMiddleware()(handler)
	handler = middleware.NewRecoverMiddleware()(handler)
	return gzipWrapper(handler), nil
}

// Addr returns the address the server listens on
func (s *APIServer) Addr() string {
	return s.server.Addr
}

// Start starts the APIServer
func (s *APIServer) Start() {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		log.Error("API server error: %v", err)
		return
	}
	if err := s.Serve(listener); err != nil {
		log.Error("API server error: %v", err)
	}
}

// Serve serves requests on the listener until the server is stopped
func (s *APIServer) Serve(listener net.Listener) error {
	addr := listener.Addr().String()
	log.Info("Sync HTTP server listening on http://%s%s", addr, SyncPath)
	log.Info("Sync HTTP server listening on http://%s%s", addr, SkinPath)

	err := s.server.Serve(netutil.LimitListener(listener, s.maxConnections))
	if errors.Is(err, http.ErrServerClosed) {
		log.Info("API server closed")
		return nil
	}
	return err
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
