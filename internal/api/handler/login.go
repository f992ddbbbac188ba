package handler

import (
	"encoding/json"
	"net/http"

	"github.com/laviva-alimentos/previsao-api/internal/auth"
	"github.com/laviva-alimentos/previsao-api/pkg/apiErrors"
	"github.com/pkg/errors"
)

type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

func Login(service auth.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.User, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingCredentials):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios", nil)
			case errors.Is(err, auth.ErrInvalidCredentials):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}
