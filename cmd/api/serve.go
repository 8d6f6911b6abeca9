package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/bcrypt"

	"insurance-portal/internal/config"
	"insurance-portal/internal/router"
	"insurance-portal/internal/seed"
	"insurance-portal/internal/service"
	"insurance-portal/internal/session"
	"insurance-portal/pkg/logger"
)

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	l := logger.New(cfg.Env)

	data, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}
	accts, err := session.NewAccounts(bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	deps := router.Deps{Portal: service.NewPortal(data, l, nil)}

	var revoked session.Revocations = session.NewMemoryRevocations()
	if cfg.SessionStore == "redis" {
		rr := session.NewRedisRevocations(cfg.RedisAddr, cfg.RedisPass)
		defer rr.Close()
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := rr.Ping(pctx)
		cancel()
		if err != nil {
			return fmt.Errorf("redis connect failed: %w", err)
		}
		revoked = rr
		deps.Ping = rr.Ping
	}
	deps.Auth = service.NewAuthService(accts, revoked, service.AuthOptions{
		SessionSecret: cfg.SessionSecret,
		TTL:           cfg.SessionTTL,
		Delay:         cfg.LoginDelay,
	}, l)

	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(l, deps, cfg),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		l.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Str("sessions", cfg.SessionStore).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	select {
	case <-stop:
	case <-ctx.Done():
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	}
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(sctx)
	l.Info().Msg("shutdown complete")
	return nil
}

func listAccounts(w io.Writer) error {
	accts, err := session.NewAccounts(bcrypt.MinCost)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tNAME\tROLE\tAGENCY")
	for _, u := range accts.List() {
		agency := u.AgencyID
		if agency == "" {
			agency = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Email, u.FullName(), u.Role, agency)
	}
	fmt.Fprintf(tw, "\npassword for every account: %s\n", session.DemoPassword)
	return tw.Flush()
}
