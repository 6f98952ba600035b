package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	"go.hacdias.com/signpost/core"
	"go.hacdias.com/signpost/log"
	"go.uber.org/zap"
)

// Server previews the generated site locally. It serves the output directory
// and, if a refresh schedule is configured, rebuilds it periodically.
type Server struct {
	c  *core.Config
	co *core.Core

	log  *zap.SugaredLogger
	cron *cron.Cron

	server   *http.Server
	staticFs http.Handler
}

func NewServer(c *core.Config) (*Server, error) {
	s := &Server{
		c:  c,
		co: core.NewCore(c),

		log:  log.S().Named("server"),
		cron: cron.New(),

		staticFs: newStaticFs(c.OutDirectory),
	}

	if c.Refresh != "" {
		err := s.registerCron(c.Refresh, "rebuild", s.co.Build)
		if err != nil {
			return nil, fmt.Errorf("invalid refresh schedule %q: %w", c.Refresh, err)
		}
	}

	return s, nil
}

func (s *Server) registerCron(schedule, name string, job func() error) error {
	_, err := s.cron.AddFunc(schedule, func() {
		err := job()
		if err != nil {
			s.log.Errorw("cron job execution failed", "name", name, "err", err)
		}
	})
	return err
}

func (s *Server) Start() error {
	if s.c.Refresh != "" {
		go func() {
			err := s.co.Build()
			if err != nil {
				s.log.Errorf("initial build failed: %s", err)
			}
		}()
	}

	s.cron.Start()

	addr := ":" + strconv.Itoa(s.c.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.server = &http.Server{Handler: s.makeRouter()}
	s.log.Infof("listening on %s", ln.Addr().String())
	return s.server.Serve(ln)
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	<-s.cron.Stop().Done()

	if s.server == nil {
		return nil
	}

	return s.server.Shutdown(ctx)
}

func (s *Server) makeRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(log.WithZap)
	r.Use(middleware.GetHead)

	r.Get("/*", s.staticFs.ServeHTTP)

	return r
}
