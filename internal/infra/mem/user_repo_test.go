package mem_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/small-engineer/recados-api/internal/domain"
	"github.com/small-engineer/recados-api/internal/infra/mem"
)

func newUser(email string) *domain.User {
	return &domain.User{
		Name:     "A",
		Email:    email,
		Password: "p",
		Recados:  []domain.Note{},
	}
}

func TestUserRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	r := mem.NewUserRepo()

	u, err := r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, r.Create(ctx, newUser("a@x.com")))
	require.NoError(t, r.Create(ctx, newUser("b@x.com")))

	u, err = r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "a@x.com", u.Email)

	t.Run("ExactMatchOnly", func(t *testing.T) {
		u, err := r.FindByEmail(ctx, "A@X.COM")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		dup := newUser("a@x.com")
		dup.Name = "other"
		err := r.Create(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrEmailExists)

		u, err := r.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "A", u.Name)
	})

	t.Run("ListKeepsOrder", func(t *testing.T) {
		us, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, us, 2)
		assert.Equal(t, "a@x.com", us[0].Email)
		assert.Equal(t, "b@x.com", us[1].Email)
	})
}

func TestUserRepo_ListEmpty(t *testing.T) {
	us, err := mem.NewUserRepo().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, us)
	assert.Empty(t, us)
}

func TestUserRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := mem.NewUserRepo()
	require.NoError(t, r.Create(ctx, newUser("a@x.com")))
	require.NoError(t, r.AddNote(ctx, "a@x.com", domain.Note{ID: "1", Description: "d", Detail: "t"}))

	u, err := r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	u.Name = "changed"
	u.Recados[0].Description = "changed"

	ns, err := r.ListNotes(ctx, "a@x.com")
	require.NoError(t, err)
	ns[0].Detail = "changed"

	u, err = r.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, domain.Note{ID: "1", Description: "d", Detail: "t"}, u.Recados[0])
}

func TestUserRepo_Notes(t *testing.T) {
	ctx := context.Background()
	r := mem.NewUserRepo()
	require.NoError(t, r.Create(ctx, newUser("a@x.com")))
	require.NoError(t, r.Create(ctx, newUser("b@x.com")))

	for _, id := range []domain.NoteID{"1", "2", "3"} {
		require.NoError(t, r.AddNote(ctx, "a@x.com", domain.Note{ID: id, Description: "d" + string(id), Detail: "t"}))
	}
	require.NoError(t, r.AddNote(ctx, "b@x.com", domain.Note{ID: "2", Description: "other", Detail: "t"}))

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := r.ListNotes(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		_, err = r.FindNote(ctx, "nobody@x.com", "1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		err = r.AddNote(ctx, "nobody@x.com", domain.Note{ID: "9"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		err = r.ReplaceNote(ctx, "nobody@x.com", domain.Note{ID: "1"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		_, err = r.RemoveNote(ctx, "nobody@x.com", "1")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("UnknownNote", func(t *testing.T) {
		_, err := r.FindNote(ctx, "a@x.com", "9")
		assert.ErrorIs(t, err, domain.ErrNoteNotFound)
		err = r.ReplaceNote(ctx, "a@x.com", domain.Note{ID: "9"})
		assert.ErrorIs(t, err, domain.ErrNoteNotFound)
		_, err = r.RemoveNote(ctx, "a@x.com", "9")
		assert.ErrorIs(t, err, domain.ErrNoteNotFound)
	})

	t.Run("Replace", func(t *testing.T) {
		require.NoError(t, r.ReplaceNote(ctx, "a@x.com", domain.Note{ID: "2", Description: "new", Detail: "new"}))
		n, err := r.FindNote(ctx, "a@x.com", "2")
		require.NoError(t, err)
		assert.Equal(t, "new", n.Description)

		ns, err := r.ListNotes(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, domain.NoteID("2"), ns[1].ID)
	})

	t.Run("Remove", func(t *testing.T) {
		left, err := r.RemoveNote(ctx, "a@x.com", "2")
		require.NoError(t, err)
		require.Len(t, left, 2)
		assert.Equal(t, domain.NoteID("1"), left[0].ID)
		assert.Equal(t, domain.NoteID("3"), left[1].ID)

		_, err = r.RemoveNote(ctx, "a@x.com", "2")
		assert.ErrorIs(t, err, domain.ErrNoteNotFound)

		ns, err := r.ListNotes(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, left, ns)

		other, err := r.ListNotes(ctx, "b@x.com")
		require.NoError(t, err)
		require.Len(t, other, 1)
		assert.Equal(t, "other", other[0].Description)
	})
}

func TestUserRepo_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	r := mem.NewUserRepo()
	require.NoError(t, r.Create(ctx, newUser("a@x.com")))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.AddNote(ctx, "a@x.com", domain.Note{ID: domain.NoteID(fmt.Sprint(i))})
		}(i)
		go func() {
			defer wg.Done()
			_ = r.Create(ctx, newUser("a@x.com"))
		}()
	}
	wg.Wait()

	ns, err := r.ListNotes(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, ns, 50)

	us, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, us, 1)
}
