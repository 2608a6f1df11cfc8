package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type onboardReq struct {
	Role string `json:"role"` // "student" or "educator"
	Name string `json:"name,omitempty"`
	PIN  string `json:"pin,omitempty"`
}

type onboardResp struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
}

// OnboardHandler replaces a login: the device picks a role once (students
// also give a name), gets a profile row and a token. An educator PIN hash,
// when configured, gates the educator role.
//
// POST /auth/onboard  { "role": "student|educator", "name": "...", "pin": "..." }
func OnboardHandler(a *AuthService, db *sql.DB, educatorPINHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req onboardReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Name = strings.TrimSpace(req.Name)

		switch req.Role {
		case "student":
			if req.Name == "" {
				http.Error(w, "name required", http.StatusBadRequest)
				return
			}
		case "educator":
			if educatorPINHash != "" {
				if bcrypt.CompareHashAndPassword([]byte(educatorPINHash), []byte(req.PIN)) != nil {
					http.Error(w, "invalid pin", http.StatusUnauthorized)
					return
				}
			}
		default:
			http.Error(w, "role must be student or educator", http.StatusBadRequest)
			return
		}

		id := uuid.NewString()
		if db != nil {
			_, err := db.ExecContext(r.Context(),
				`INSERT INTO users (id, role, name, created_at) VALUES ($1,$2,$3,$4)`,
				id, req.Role, req.Name, time.Now().Unix())
			if err != nil {
				http.Error(w, "store user: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}

		tok, err := a.IssueJWT(id, req.Name, req.Role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(onboardResp{
			AccessToken: tok,
			UserID:      id,
			Role:        req.Role,
			Name:        req.Name,
		})
	}
}
