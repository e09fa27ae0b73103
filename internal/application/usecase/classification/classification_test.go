package classification

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/scribe-ops/backend/internal/domain/entity"
	domainerror "github.com/scribe-ops/backend/internal/domain/error"
)

type fakeClassRepo struct {
	classes map[string]*entity.Class
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: map[string]*entity.Class{}}
}

func (f *fakeClassRepo) Create(_ context.Context, class *entity.Class) error {
	f.classes[class.Name] = class
	return nil
}

func (f *fakeClassRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Class, error) {
	for _, c := range f.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrClassificationNotFound
}

func (f *fakeClassRepo) FindByName(_ context.Context, name string) (*entity.Class, error) {
	class, ok := f.classes[name]
	if !ok {
		return nil, domainerror.ErrClassificationNotFound
	}
	return class, nil
}

func (f *fakeClassRepo) List(_ context.Context) ([]*entity.Class, error) {
	names := make([]string, 0, len(f.classes))
	for name := range f.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	classes := make([]*entity.Class, len(names))
	for i, name := range names {
		classes[i] = f.classes[name]
	}
	return classes, nil
}

type fakeGenreRepo struct {
	genres map[string]*entity.Genre
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{genres: map[string]*entity.Genre{}}
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	f.genres[genre.Name] = genre
	return nil
}

func (f *fakeGenreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	for _, g := range f.genres {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrClassificationNotFound
}

func (f *fakeGenreRepo) FindByName(_ context.Context, name string) (*entity.Genre, error) {
	genre, ok := f.genres[name]
	if !ok {
		return nil, domainerror.ErrClassificationNotFound
	}
	return genre, nil
}

func (f *fakeGenreRepo) List(_ context.Context) ([]*entity.Genre, error) {
	names := make([]string, 0, len(f.genres))
	for name := range f.genres {
		names = append(names, name)
	}
	sort.Strings(names)
	genres := make([]*entity.Genre, len(names))
	for i, name := range names {
		genres[i] = f.genres[name]
	}
	return genres, nil
}

func TestCreateClassRejectsDuplicate(t *testing.T) {
	repo := newFakeClassRepo()
	uc := NewCreateClassUseCase(repo)

	if _, err := uc.Execute(context.Background(), CreateClassInput{Name: "Economics"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateClassInput{Name: "Economics"})
	if !errors.Is(err, domainerror.ErrClassificationExists) {
		t.Fatalf("expected ErrClassificationExists, got %v", err)
	}
}

func TestCreateClassNameRequired(t *testing.T) {
	uc := NewCreateClassUseCase(newFakeClassRepo())

	_, err := uc.Execute(context.Background(), CreateClassInput{Name: "  "})
	if !errors.Is(err, domainerror.ErrClassificationNameRequired) {
		t.Fatalf("expected ErrClassificationNameRequired, got %v", err)
	}
}

func TestCreateGenreRejectsDuplicate(t *testing.T) {
	repo := newFakeGenreRepo()
	uc := NewCreateGenreUseCase(repo)

	if _, err := uc.Execute(context.Background(), CreateGenreInput{Name: "Essay"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateGenreInput{Name: "Essay"})
	if !errors.Is(err, domainerror.ErrClassificationExists) {
		t.Fatalf("expected ErrClassificationExists, got %v", err)
	}
}

func TestListClassificationsOrdered(t *testing.T) {
	classRepo := newFakeClassRepo()
	genreRepo := newFakeGenreRepo()

	for _, name := range []string{"Statistics", "Economics", "Law"} {
		if _, err := NewCreateClassUseCase(classRepo).Execute(context.Background(), CreateClassInput{Name: name}); err != nil {
			t.Fatalf("create class %q: %v", name, err)
		}
	}
	if _, err := NewCreateGenreUseCase(genreRepo).Execute(context.Background(), CreateGenreInput{Name: "Essay"}); err != nil {
		t.Fatalf("create genre: %v", err)
	}

	uc := NewListClassificationsUseCase(classRepo, genreRepo)
	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Classes) != 3 || len(output.Genres) != 1 {
		t.Fatalf("counts = %d classes, %d genres", len(output.Classes), len(output.Genres))
	}
	if output.Classes[0].Name != "Economics" || output.Classes[2].Name != "Statistics" {
		t.Errorf("classes not ordered by name: %s .. %s", output.Classes[0].Name, output.Classes[2].Name)
	}
}
