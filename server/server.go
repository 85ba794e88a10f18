// Package server exposes the trading desk over HTTP. The JSON API mirrors
// the desk's operations one for one; a websocket endpoint streams the
// quote table as the feed updates it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/papertrade/papertrade"
)

type Server struct {
	desk *papertrade.Desk
	log  *slog.Logger

	// pushInterval paces the websocket quote stream.
	pushInterval time.Duration
}

type Option func(*Server)

func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

func WithPushInterval(d time.Duration) Option {
	return func(s *Server) { s.pushInterval = d }
}

func New(desk *papertrade.Desk, opts ...Option) *Server {
	s := &Server{
		desk:         desk,
		log:          slog.Default(),
		pushInterval: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	registerValidations()
	return s
}

func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("tradeside", func(fl validator.FieldLevel) bool {
		_, err := papertrade.ParseSide(fl.Field().String())
		return err == nil
	})
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests(), s.mapErrors())

	api := r.Group("/api")
	{
		api.GET("/instruments", s.listInstruments)
		api.GET("/quotes", s.listQuotes)
		api.GET("/quotes/:symbol", s.getQuote)
		api.GET("/portfolio", s.getPortfolio)
		api.GET("/trades", s.listTrades)
		api.POST("/trades", s.placeTrade)
		api.GET("/signals/:symbol", s.getSignal)
		api.PUT("/watchlist/:symbol", s.watch)
		api.DELETE("/watchlist/:symbol", s.unwatch)
		api.PUT("/theme", s.setTheme)
		api.POST("/signup", s.signup)
		api.POST("/login", s.login)
		api.POST("/logout", s.logout)
		api.GET("/session", s.session)
	}
	r.GET("/ws/quotes", s.streamQuotes)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// mapErrors translates desk errors into HTTP statuses after the handler
// has run. Handlers record errors with c.Error and return.
func (s *Server) mapErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]gin.H, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, gin.H{"field": fe.Field(), "rule": fe.Tag()})
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request", "fields": fields})
			return
		}
		if isMalformedBody(err) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
	}
}

// isMalformedBody reports whether err came from decoding the request body
// rather than from the desk. ShouldBindJSON surfaces these as json package
// errors, or as io.EOF when the body is empty.
func isMalformedBody(err error) bool {
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	return errors.As(err, &syn) ||
		errors.As(err, &typ) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, papertrade.ErrUnknownSymbol):
		return http.StatusNotFound
	case errors.Is(err, papertrade.ErrInvalidQuantity),
		errors.Is(err, papertrade.ErrInsufficientFunds),
		errors.Is(err, papertrade.ErrNoPosition),
		errors.Is(err, papertrade.ErrInsufficientShares),
		errors.Is(err, papertrade.ErrInvalidAccount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, papertrade.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, papertrade.ErrUnknownUser),
		errors.Is(err, papertrade.ErrWrongPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
