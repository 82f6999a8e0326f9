package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"gallery-service/internal/core/domain"
	"gallery-service/internal/core/ports/output"
)

var exhibitPulls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gallery_exhibit_pulls_total",
		Help: "Total number of exhibit clone/update requests by result",
	},
	[]string{"result"},
)

// GallerySettings is the static part of the gallery configuration.
type GallerySettings struct {
	Title                      string
	Destination                string
	HideGalleryWithoutExhibits bool
}

type GalleryService struct {
	catalog   ports.ExhibitCatalog
	inspector ports.RepositoryInspector
	syncer    ports.RepositorySyncer
	settings  GallerySettings

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGalleryService(catalog ports.ExhibitCatalog, inspector ports.RepositoryInspector, syncer ports.RepositorySyncer, settings GallerySettings) *GalleryService {
	return &GalleryService{
		catalog:   catalog,
		inspector: inspector,
		syncer:    syncer,
		settings:  settings,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (s *GalleryService) Info(ctx context.Context) (*domain.GalleryInfo, error) {
	sources, err := s.sources(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.GalleryInfo{
		Title:                      s.settings.Title,
		APIVersion:                 domain.APIVersion,
		ExhibitsConfigured:         len(sources) > 0,
		HideGalleryWithoutExhibits: s.settings.HideGalleryWithoutExhibits,
	}, nil
}

// ListExhibits returns every configured exhibit with its current checkout
// state. A failed inspection is logged and the exhibit is reported as not
// cloned rather than failing the whole list.
func (s *GalleryService) ListExhibits(ctx context.Context) ([]domain.Exhibit, error) {
	sources, err := s.sources(ctx)
	if err != nil {
		return nil, err
	}

	exhibits := BuildExhibits(sources, s.settings.Destination)
	for i := range exhibits {
		exhibits[i].State = s.inspect(ctx, exhibits[i])
	}
	return exhibits, nil
}

// Pull clones the exhibit or updates its existing checkout, then returns
// the refreshed exhibit and what the sync did.
func (s *GalleryService) Pull(ctx context.Context, id int) (*domain.Exhibit, domain.SyncAction, error) {
	if id < 0 {
		return nil, "", domain.ErrInvalidExhibitID
	}

	sources, err := s.sources(ctx)
	if err != nil {
		return nil, "", err
	}
	if id >= len(sources) {
		return nil, "", domain.ErrExhibitNotFound
	}

	// Paths depend on the whole batch, so build it the same way ListExhibits does.
	exhibit := BuildExhibits(sources, s.settings.Destination)[id]

	lock := s.lockFor(exhibit.LocalPath)
	lock.Lock()
	defer lock.Unlock()

	logger := log.WithFields(log.Fields{
		"exhibit_id": id,
		"git":        exhibit.Source.Git,
		"local_path": exhibit.LocalPath,
	})

	action, err := s.syncer.Sync(ctx, exhibit.Source, exhibit.LocalPath)
	if err != nil {
		exhibitPulls.WithLabelValues("error").Inc()
		logger.WithError(err).Error("exhibit sync failed")
		return nil, "", err
	}
	exhibitPulls.WithLabelValues("ok").Inc()
	logger.WithField("action", action).Info("exhibit synced")

	exhibit.State = s.inspect(ctx, exhibit)
	return &exhibit, action, nil
}

func (s *GalleryService) sources(ctx context.Context) ([]domain.ExhibitSource, error) {
	sources, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	return sources, nil
}

func (s *GalleryService) inspect(ctx context.Context, exhibit domain.Exhibit) domain.RepoState {
	state, err := s.inspector.Inspect(ctx, exhibit.LocalPath, exhibit.Source.Branch)
	if err != nil {
		log.WithError(err).WithField("local_path", exhibit.LocalPath).Warn("inspect exhibit checkout failed")
		return domain.RepoState{}
	}
	return state
}

func (s *GalleryService) lockFor(localPath string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[localPath]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[localPath] = lock
	}
	return lock
}
