package service

import (
	"context"
	"planetary-api/internal/entity"
	"planetary-api/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanetRepo struct {
	planets map[int]*entity.Planet
	nextID  int
}

func newFakePlanetRepo() *fakePlanetRepo {
	return &fakePlanetRepo{planets: map[int]*entity.Planet{}}
}

func (f *fakePlanetRepo) GetPlanets(ctx context.Context) ([]*entity.Planet, error) {
	planets := []*entity.Planet{}
	for _, p := range f.planets {
		copied := *p
		planets = append(planets, &copied)
	}
	return planets, nil
}

func (f *fakePlanetRepo) GetPlanetByName(ctx context.Context, name string) (*entity.Planet, error) {
	for _, p := range f.planets {
		if p.PlanetName == name {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePlanetRepo) GetPlanetByID(ctx context.Context, id int) (*entity.Planet, error) {
	p, ok := f.planets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePlanetRepo) CreatePlanet(ctx context.Context, planet *entity.Planet) (*entity.Planet, error) {
	if planet.PlanetID == 0 {
		f.nextID++
		planet.PlanetID = f.nextID
	} else if _, ok := f.planets[planet.PlanetID]; ok {
		return nil, repository.ErrConflict
	}
	if planet.PlanetID > f.nextID {
		f.nextID = planet.PlanetID
	}
	stored := *planet
	f.planets[planet.PlanetID] = &stored
	return planet, nil
}

func (f *fakePlanetRepo) UpdatePlanetDistance(ctx context.Context, name string, distance float64) (*entity.Planet, error) {
	for _, p := range f.planets {
		if p.PlanetName == name {
			p.Distance = distance
			copied := *p
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func TestCreatePlanetDuplicateID(t *testing.T) {
	svc := NewPlanetService(newFakePlanetRepo(), nil)

	_, err := svc.CreatePlanet(context.Background(), &entity.Planet{PlanetID: 1, PlanetName: "Mercury"})
	require.NoError(t, err)

	_, err = svc.CreatePlanet(context.Background(), &entity.Planet{PlanetID: 1, PlanetName: "Mercury Again"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	planets, err := svc.GetPlanets(context.Background())
	require.NoError(t, err)
	assert.Len(t, planets, 1)
}

func TestUpdateDistanceChangesOnlyDistance(t *testing.T) {
	svc := NewPlanetService(newFakePlanetRepo(), nil)

	created, err := svc.CreatePlanet(context.Background(), &entity.Planet{
		PlanetName: "Earth",
		PlanetType: "Class M",
		HomeStar:   "Sol",
		Radius:     3959,
		Mass:       5.972e24,
		Distance:   92.96e6,
	})
	require.NoError(t, err)

	_, err = svc.UpdatePlanetDistance(context.Background(), "Earth", 93.0e6)
	require.NoError(t, err)

	got, err := svc.GetPlanetByID(context.Background(), created.PlanetID)
	require.NoError(t, err)
	assert.Equal(t, 93.0e6, got.Distance)
	assert.Equal(t, "Class M", got.PlanetType)
	assert.Equal(t, "Sol", got.HomeStar)
	assert.Equal(t, 3959.0, got.Radius)
	assert.Equal(t, 5.972e24, got.Mass)
}

func TestUpdateDistanceUnknownPlanet(t *testing.T) {
	svc := NewPlanetService(newFakePlanetRepo(), nil)

	_, err := svc.UpdatePlanetDistance(context.Background(), "Pluto", 1.0)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
