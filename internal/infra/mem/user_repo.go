package mem

import (
	"context"
	"sync"

	"github.com/small-engineer/recados-api/internal/domain"
)

// UserRepo keeps users in insertion order with an email index. Every method
// runs under mu, so a lookup and the mutation that follows it are atomic.
// Values handed out are copies.
type UserRepo struct {
	mu  sync.RWMutex
	us  []*domain.User
	idx map[string]int
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		idx: make(map[string]int),
	}
}

func (r *UserRepo) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.us))
	for _, u := range r.us {
		out = append(out, u.Clone())
	}
	return out, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.find(email)
	if !ok {
		return nil, nil
	}
	return u.Clone(), nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.idx[u.Email]; ok {
		return domain.ErrEmailExists
	}
	r.idx[u.Email] = len(r.us)
	r.us = append(r.us, u.Clone())
	return nil
}

func (r *UserRepo) ListNotes(ctx context.Context, email string) ([]domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.find(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return domain.CloneNotes(u.Recados), nil
}

func (r *UserRepo) FindNote(ctx context.Context, email string, id domain.NoteID) (*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.find(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	i := noteIndex(u.Recados, id)
	if i < 0 {
		return nil, domain.ErrNoteNotFound
	}
	n := u.Recados[i]
	return &n, nil
}

func (r *UserRepo) AddNote(ctx context.Context, email string, n domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.find(email)
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Recados = append(u.Recados, n)
	return nil
}

func (r *UserRepo) ReplaceNote(ctx context.Context, email string, n domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.find(email)
	if !ok {
		return domain.ErrUserNotFound
	}
	i := noteIndex(u.Recados, n.ID)
	if i < 0 {
		return domain.ErrNoteNotFound
	}
	u.Recados[i] = n
	return nil
}

// RemoveNote drops the note with the given id and returns what is left.
func (r *UserRepo) RemoveNote(ctx context.Context, email string, id domain.NoteID) ([]domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.find(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if noteIndex(u.Recados, id) < 0 {
		return nil, domain.ErrNoteNotFound
	}

	kept := make([]domain.Note, 0, len(u.Recados)-1)
	for _, n := range u.Recados {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	u.Recados = kept
	return domain.CloneNotes(kept), nil
}

func (r *UserRepo) find(email string) (*domain.User, bool) {
	i, ok := r.idx[email]
	if !ok {
		return nil, false
	}
	return r.us[i], true
}

func noteIndex(ns []domain.Note, id domain.NoteID) int {
	for i, n := range ns {
		if n.ID == id {
			return i
		}
	}
	return -1
}
