package httpadapter

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"

	"github.com/small-engineer/recados-api/internal/domain"
	"github.com/small-engineer/recados-api/internal/usecase/recados"
)

type createUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// nil when the field is absent or null
	Recados *[]domain.Note `json:"recados"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	us, err := s.svc.ListUsers(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	msg := msgUsersFound
	if len(us) == 0 {
		msg = msgNoUsers
	}
	respondOK(w, http.StatusOK, msg, us)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	u, err := s.svc.GetUser(r.Context(), email)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondOK(w, http.StatusOK, msgUserFound, u)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if err := decode(r, &req); err != nil {
		respondErr(w, r, err)
		return
	}

	in := recados.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Recados != nil {
		in.Recados = *req.Recados
		if in.Recados == nil {
			in.Recados = []domain.Note{}
		}
	}

	u, err := s.svc.CreateUser(r.Context(), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	hlog.FromRequest(r).Info().Str("email", u.Email).Msg(msgUserCreated)
	respondOK(w, http.StatusCreated, msgUserCreated, u)
}
