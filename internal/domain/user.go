package domain

type User struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Recados  []Note `json:"recados" yaml:"recados"`
}

type NoteID string

type Note struct {
	ID          NoteID `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Detail      string `json:"detail" yaml:"detail"`
}

// Clone returns a copy of u that shares no backing array with it.
func (u *User) Clone() *User {
	c := *u
	c.Recados = CloneNotes(u.Recados)
	return &c
}

func CloneNotes(ns []Note) []Note {
	c := make([]Note, len(ns))
	copy(c, ns)
	return c
}
