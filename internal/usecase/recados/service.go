package recados

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/small-engineer/recados-api/internal/domain"
)

type UserRepo interface {
	List(ctx context.Context) ([]*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// NoteRepo methods resolve the owner and the note themselves and report
// domain.ErrUserNotFound or domain.ErrNoteNotFound.
type NoteRepo interface {
	ListNotes(ctx context.Context, email string) ([]domain.Note, error)
	FindNote(ctx context.Context, email string, id domain.NoteID) (*domain.Note, error)
	AddNote(ctx context.Context, email string, n domain.Note) error
	ReplaceNote(ctx context.Context, email string, n domain.Note) error
	RemoveNote(ctx context.Context, email string, id domain.NoteID) ([]domain.Note, error)
}

type Store interface {
	UserRepo
	NoteRepo
}

// NewUser is the create-user input. Recados is nil when the field was
// absent or null; an empty slice is accepted. Initial notes without an id
// get a fresh one; supplied ids must be distinct.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Recados  []domain.Note
}

type Service struct {
	users UserRepo
	notes NoteRepo
	newID func() domain.NoteID
}

func NewService(s Store) *Service {
	return &Service{
		users: s,
		notes: s,
		newID: func() domain.NoteID {
			return domain.NoteID(uuid.NewString())
		},
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) GetUser(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, in NewUser) (*domain.User, error) {
	if in.Name == "" {
		return nil, domain.Required("name")
	}
	if in.Email == "" {
		return nil, domain.Required("email")
	}
	if in.Password == "" {
		return nil, domain.Required("password")
	}
	if in.Recados == nil {
		return nil, domain.Required("recados")
	}
	seen := make(map[domain.NoteID]bool, len(in.Recados))
	for _, n := range in.Recados {
		if n.ID == "" {
			continue
		}
		if seen[n.ID] {
			return nil, domain.ErrNoteIDExists
		}
		seen[n.ID] = true
	}

	ex, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if ex != nil {
		return nil, domain.ErrEmailExists
	}

	ns := domain.CloneNotes(in.Recados)
	for i := range ns {
		if ns[i].ID == "" {
			ns[i].ID = s.newID()
		}
	}

	u := &domain.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Recados:  ns,
	}
	// Create re-checks the email under the store lock.
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateNote does not check description or detail for presence.
func (s *Service) CreateNote(ctx context.Context, email, description, detail string) (*domain.Note, error) {
	n := domain.Note{
		ID:          s.newID(),
		Description: description,
		Detail:      detail,
	}
	if err := s.notes.AddNote(ctx, email, n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Service) ListNotes(ctx context.Context, email string) ([]domain.Note, error) {
	return s.notes.ListNotes(ctx, email)
}

func (s *Service) GetNote(ctx context.Context, email string, id domain.NoteID) (*domain.Note, error) {
	return s.notes.FindNote(ctx, email, id)
}

// UpdateNote replaces the whole note. Field validation runs before any lookup.
func (s *Service) UpdateNote(ctx context.Context, email string, id domain.NoteID, description, detail string) (*domain.Note, error) {
	if description == "" {
		return nil, domain.Required("description")
	}
	if detail == "" {
		return nil, domain.Required("detail")
	}

	n := domain.Note{
		ID:          id,
		Description: description,
		Detail:      detail,
	}
	if err := s.notes.ReplaceNote(ctx, email, n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Service) DeleteNote(ctx context.Context, email string, id domain.NoteID) ([]domain.Note, error) {
	return s.notes.RemoveNote(ctx, email, id)
}

// Seed creates users in order and stops at the first failure.
// A seed user without notes starts with an empty collection.
func (s *Service) Seed(ctx context.Context, us []domain.User) error {
	for _, u := range us {
		in := NewUser{
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Recados:  u.Recados,
		}
		if in.Recados == nil {
			in.Recados = []domain.Note{}
		}
		if _, err := s.CreateUser(ctx, in); err != nil {
			return fmt.Errorf("seed %s: %w", u.Email, err)
		}
	}
	return nil
}
