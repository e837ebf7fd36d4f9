package httpadapter

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/small-engineer/recados-api/internal/domain"
)

type noteReq struct {
	Description string `json:"description"`
	Detail      string `json:"detail"`
}

func noteVars(r *http.Request) (string, domain.NoteID) {
	v := mux.Vars(r)
	return v["email"], domain.NoteID(v["id"])
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req noteReq
	if err := decode(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	n, err := s.svc.CreateNote(r.Context(), email, req.Description, req.Detail)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, http.StatusCreated, msgNoteCreated, n)
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ns, err := s.svc.ListNotes(r.Context(), email)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	msg := msgNotesFound
	if len(ns) == 0 {
		msg = msgNoNotes
	}
	respondOK(w, http.StatusOK, msg, ns)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	email, id := noteVars(r)

	n, err := s.svc.GetNote(r.Context(), email, id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, msgNoteFound, n)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	email, id := noteVars(r)

	var req noteReq
	if err := decode(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	n, err := s.svc.UpdateNote(r.Context(), email, id, req.Description, req.Detail)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, msgNoteUpdated, n)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	email, id := noteVars(r)

	ns, err := s.svc.DeleteNote(r.Context(), email, id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, msgNoteDeleted, ns)
}
