package rpc

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/node"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"

	"github.com/alt-research/cw-nft-market/market/configs"
	"github.com/alt-research/cw-nft-market/market/contracts/cw721"
	"github.com/alt-research/cw-nft-market/market/core/logging"
	"github.com/alt-research/cw-nft-market/market/types"
)

const Namespace = "market"

// TokenResponse is the body of `GET /v1/tokens/{token_id}`.
type TokenResponse struct {
	TokenId   string           `json:"token_id"`
	Owner     string           `json:"owner"`
	Approvals []cw721.Approval `json:"approvals"`
	TokenUri  *string          `json:"token_uri,omitempty"`
	Metadata  *cw721.Metadata  `json:"metadata"`
}

// Server is the read only gateway over the market contracts: json rpc on
// `POST /` and a small rest api.
type Server struct {
	logger  logging.Logger
	cfg     configs.ServerConfig
	handler *JsonRpcHandler
	rpc     *gethrpc.Server
}

func NewServer(logger logging.Logger, cfg configs.ServerConfig, client MarketQuerier) (*Server, error) {
	handler := &JsonRpcHandler{
		logger: logger,
		client: client,
	}

	srv := gethrpc.NewServer()
	srv.SetBatchLimits(node.DefaultConfig.BatchRequestLimit, node.DefaultConfig.BatchResponseMaxSize)
	if err := srv.RegisterName(Namespace, handler); err != nil {
		return nil, errors.Wrap(err, "could not register api")
	}

	return &Server{
		logger:  logger,
		cfg:     cfg,
		handler: handler,
		rpc:     srv,
	}, nil
}

type loggerHandler struct {
	id     atomic.Uint64
	logger logging.Logger
	next   http.Handler
}

func (h *loggerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqId := h.id.Add(1)
	h.logger.Debug("handle http request", "id", reqId, "method", r.Method, "path", r.URL.Path)
	h.next.ServeHTTP(w, r)
	h.logger.Debug("handle http returned", "id", reqId)
}

func (s *Server) corsOptions() cors.Options {
	opts := cors.Options{
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	}

	if len(s.cfg.Cors) > 0 {
		opts.AllowedOrigins = s.cfg.Cors
		return opts
	}

	// allow local development only
	opts.AllowOriginFunc = func(origin string) bool {
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Hostname() == "localhost" || u.Hostname() == "127.0.0.1"
	}
	return opts
}

// Handler returns the http handler of the gateway.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/", s.rpc).Methods(http.MethodPost)
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/swaps/{id}", s.swapHandler).Methods(http.MethodGet)
	r.HandleFunc("/v1/tokens/{token_id}", s.tokenHandler).Methods(http.MethodGet)

	return &loggerHandler{
		logger: s.logger,
		next:   cors.New(s.corsOptions()).Handler(r),
	}
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.cfg.ListenAddress)
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: gethrpc.DefaultHTTPTimeouts.ReadHeaderTimeout,
		ReadTimeout:       gethrpc.DefaultHTTPTimeouts.ReadTimeout,
		WriteTimeout:      gethrpc.DefaultHTTPTimeouts.WriteTimeout,
		IdleTimeout:       gethrpc.DefaultHTTPTimeouts.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("Start market gateway", "addr", lis.Addr().String())
		if err := httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Stop market gateway by Done")
	case err = <-serverErr:
		s.logger.Error("market gateway serve stopped by error", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		s.logger.Error("Stop market gateway by error", "err", shutdownErr)
	}
	s.rpc.Stop()

	return err
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJson(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) swapHandler(w http.ResponseWriter, r *http.Request) {
	swap, err := s.handler.SwapDetails(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJson(w, http.StatusOK, swap)
}

func (s *Server) tokenHandler(w http.ResponseWriter, r *http.Request) {
	tokenId := mux.Vars(r)["token_id"]

	access, err := s.handler.OwnerOf(r.Context(), tokenId)
	if err != nil {
		s.writeError(w, err)
		return
	}

	md, err := s.handler.TokenMetadata(r.Context(), tokenId)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJson(w, http.StatusOK, &TokenResponse{
		TokenId:   tokenId,
		Owner:     access.Owner,
		Approvals: access.Approvals,
		TokenUri:  md.TokenUri,
		Metadata:  md.Metadata,
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, types.ErrNotFound) {
		status = http.StatusNotFound
	} else if errors.Is(err, types.ErrEmptyId) ||
		errors.Is(err, types.ErrInvalidAddress) ||
		errors.Is(err, types.ErrInvalidSwapType) {
		status = http.StatusBadRequest
	}

	s.logger.Debug("gateway request failed", "status", status, "err", err)
	writeJson(w, status, map[string]string{"error": err.Error()})
}

func writeJson(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
