package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/cache"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/client"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/config"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/connectivity"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/queue"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/repositories/cellar"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/syncer"
	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
	"github.com/dmitrijs2005/cellarkeeper/internal/metrics"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

// clientIDKey stores the id this install sends with every remote call.
const clientIDKey = "meta:client_id"

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type cabinetRepository interface {
	Add(ctx context.Context, ownerID string, c models.Cabinet) (models.Cabinet, error)
	List(ctx context.Context, ownerID string) ([]models.Cabinet, error)
	Racks(ctx context.Context, roomID string) ([]models.Cabinet, error)
	GetByID(ctx context.Context, id string) (models.Cabinet, error)
}

type bottleRepository interface {
	Add(ctx context.Context, ownerID string, b models.Bottle) (models.Bottle, error)
	AddMany(ctx context.Context, ownerID string, tmpl models.Bottle, locations []models.Location) (cellar.BulkResult, error)
	List(ctx context.Context, cabinetID string) ([]models.Bottle, error)
	History(ctx context.Context, ownerID string) ([]models.Bottle, error)
	GetByID(ctx context.Context, id string) (models.Bottle, error)
	Consume(ctx context.Context, id string, rating *int, notes string) error
	Open(ctx context.Context, id string) error
	AttachLabel(ctx context.Context, id, contentType string, image []byte) (string, error)
}

type coordinator interface {
	Drain(ctx context.Context) (syncer.Summary, error)
	Status(ctx context.Context) (syncer.Status, error)
	ClearAll(ctx context.Context) error
	PendingCount(ctx context.Context) (int, error)
}

type listener interface {
	StartListening(ctx context.Context, onChange func(online bool)) (stop func())
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	owner    string
	cabinets cabinetRepository
	bottles  bottleRepository
	sync     coordinator
	monitor  listener
	metrics  http.Handler

	reader   *bufio.Reader
	out      io.Writer
	readFile func(string) ([]byte, error)

	mu      sync.Mutex
	mode    Mode
	closers []func() error
}

// NewApp opens local storage, connects the remote client and wires the
// offline-first repositories. With cfg.Encrypt set it prompts for the
// passphrase of the local store.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	a := &App{
		config:   cfg,
		logger:   logger.With("module", "cli"),
		owner:    cfg.OwnerID,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		readFile: os.ReadFile,
		mode:     ModeOffline,
	}

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	store, err := a.openStore(ctx, db)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	clientID, err := loadClientID(ctx, store)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	remote, err := client.NewCellarClient(cfg.ServerEndpointAddr, clientID)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.closers = append(a.closers, remote.Close)

	reg := prometheus.NewRegistry()
	syncMetrics := metrics.NewSync(reg)
	a.metrics = metrics.Handler(reg)

	monitor := connectivity.NewMonitor(logger, cfg.OnlineCheckInterval, cfg.RemoteTimeout,
		connectivity.NewInterfaceProber(), connectivity.NewRemoteProber(remote))

	c := cache.New(store)
	q := queue.New(store)
	opts := cellar.Options{
		Cache:   c,
		Queue:   q,
		Online:  monitor,
		Logger:  logger,
		Metrics: syncMetrics,
		Timeout: cfg.RemoteTimeout,
	}
	cabinets := cellar.NewCabinetRepository(remote, opts)
	bottles := cellar.NewBottleRepository(remote, remote, opts)
	coord := syncer.New(syncer.Options{
		Queue:    q,
		Cache:    c,
		Meta:     store,
		Online:   monitor,
		Cabinets: cabinets,
		Bottles:  bottles,
		Logger:   logger,
		Metrics:  syncMetrics,
	})
	monitor.SetDrainer(coord)

	a.cabinets = cabinets
	a.bottles = bottles
	a.sync = coord
	a.monitor = monitor
	return a, nil
}

func (a *App) openStore(ctx context.Context, db *sql.DB) (kv.Store, error) {
	var store kv.Store = kv.NewSQLiteStore(db)
	if !a.config.Encrypt {
		return store, nil
	}

	pass, err := GetPassword("Enter passphrase", os.Stderr)
	if err != nil {
		return nil, err
	}
	defer clear(pass)

	sealed, err := kv.OpenSealed(ctx, store, pass)
	if errors.Is(err, kv.ErrWrongPassphrase) {
		return nil, errors.New("wrong passphrase for the local store")
	}
	return sealed, err
}

func loadClientID(ctx context.Context, store kv.Store) (string, error) {
	raw, err := store.Get(ctx, clientIDKey)
	if err != nil {
		return "", err
	}
	if raw != nil {
		return string(raw), nil
	}
	id := uuid.NewString()
	return id, store.Set(ctx, clientIDKey, []byte(id))
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		fmt.Fprintf(a.out, "\nSwitched to %s mode\n", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) getStatus() string {
	s := string(a.getMode())
	if n, err := a.sync.PendingCount(context.Background()); err == nil && n > 0 {
		s = fmt.Sprintf("%s, %d pending", s, n)
	}
	return fmt.Sprintf("(%s %s)", a.owner, s)
}

// Run starts the connectivity listener and the optional metrics endpoint,
// then serves the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	stop := a.monitor.StartListening(ctx, func(online bool) {
		if online {
			a.setMode(ModeOnline)
		} else {
			a.setMode(ModeOffline)
		}
	})
	defer stop()

	if a.config.MetricsAddr != "" {
		srv := &http.Server{Addr: a.config.MetricsAddr, Handler: a.metrics, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error(ctx, "metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	fmt.Fprintln(a.out, "Welcome to CellarKeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
