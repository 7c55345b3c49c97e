package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"planetary-api/internal/entity"
	"planetary-api/internal/repository"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// PlanetRepository is the catalog data access the service runs on.
type PlanetRepository interface {
	GetPlanets(ctx context.Context) ([]*entity.Planet, error)
	GetPlanetByName(ctx context.Context, name string) (*entity.Planet, error)
	GetPlanetByID(ctx context.Context, id int) (*entity.Planet, error)
	CreatePlanet(ctx context.Context, planet *entity.Planet) (*entity.Planet, error)
	UpdatePlanetDistance(ctx context.Context, name string, distance float64) (*entity.Planet, error)
}

type PlanetService struct {
	planetRepo  PlanetRepository
	kafkaWriter *kafka.Writer
}

// NewPlanetService creates a new instance of PlanetService. The kafka writer
// may be nil, in which case catalog events are not published.
func NewPlanetService(planetRepo PlanetRepository, kafkaWriter *kafka.Writer) *PlanetService {
	return &PlanetService{
		planetRepo:  planetRepo,
		kafkaWriter: kafkaWriter,
	}
}

// GetPlanets retrieves every planet in the catalog.
func (s *PlanetService) GetPlanets(ctx context.Context) ([]*entity.Planet, error) {
	planets, err := s.planetRepo.GetPlanets(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting planets")
		return nil, err
	}

	return planets, nil
}

func (s *PlanetService) GetPlanetByName(ctx context.Context, name string) (*entity.Planet, error) {
	return s.planetRepo.GetPlanetByName(ctx, name)
}

func (s *PlanetService) GetPlanetByID(ctx context.Context, id int) (*entity.Planet, error) {
	return s.planetRepo.GetPlanetByID(ctx, id)
}

// CreatePlanet adds a planet to the catalog and announces it on the catalog
// topic. Duplicate ids surface as repository.ErrConflict.
func (s *PlanetService) CreatePlanet(ctx context.Context, planet *entity.Planet) (*entity.Planet, error) {
	created, err := s.planetRepo.CreatePlanet(ctx, planet)
	if err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			logger.Error().Err(err).Msgf("Error creating planet %s", planet.PlanetName)
		}
		return nil, err
	}

	s.publishCatalogEvent(ctx, created, "created")

	return created, nil
}

// UpdatePlanetDistance changes only the distance field of the named planet.
func (s *PlanetService) UpdatePlanetDistance(ctx context.Context, name string, distance float64) (*entity.Planet, error) {
	updated, err := s.planetRepo.UpdatePlanetDistance(ctx, name, distance)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error updating distance for planet %s", name)
		}
		return nil, err
	}

	s.publishCatalogEvent(ctx, updated, "updated")

	return updated, nil
}

// publishCatalogEvent emits a planet mutation event. Events are auxiliary to
// the synchronous persistence path, so failures are logged and swallowed.
func (s *PlanetService) publishCatalogEvent(ctx context.Context, planet *entity.Planet, event string) {
	if s.kafkaWriter == nil {
		return
	}

	payload, err := json.Marshal(planet)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling planet %d", planet.PlanetID)
		return
	}

	// planet.created.4 or planet.updated.4
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("planet.%s.%d", event, planet.PlanetID)),
		Value: payload,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing planet.%s event for planet %d", event, planet.PlanetID)
	}
}
