package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"

	"sportbuddy_server/services"
)

// MatchController handles match requests and the token-link responses.
// The respond endpoint renders HTML because it is opened straight from
// the owner's email client, not by the app.
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController creates a new MatchController instance.
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// Create records a pending match request and mails the owner.
func (c *MatchController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActivityID  string `json:"activityId"`
		RequesterID string `json:"requesterId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.Matches.Request(req.ActivityID, req.RequesterID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": "Solicitação enviada! O organizador receberá um email para aceitar ou recusar.",
	})
}

// Respond resolves a match request from its token link and renders a
// confirmation page.
func (c *MatchController) Respond(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	action := r.URL.Query().Get("action")

	result, err := c.Matches.Respond(token, action)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			writeHTML(w, http.StatusBadRequest, "Link inválido", "Este link está incorreto ou expirado.")
		case errors.Is(err, services.ErrNotFound):
			writeHTML(w, http.StatusNotFound, "Solicitação não encontrada", "Este link pode ter expirado ou já foi processado.")
		case errors.Is(err, services.ErrConflict):
			writeHTML(w, http.StatusConflict, "Já processado", "Esta solicitação já foi respondida.")
		default:
			writeHTML(w, http.StatusInternalServerError, "Erro interno", "Ocorreu um erro ao processar sua resposta.")
		}
		return
	}

	message := "Solicitação recusada."
	if result.Accepted {
		message = "Solicitação aceita! O participante receberá seus dados de contato."
	}
	act := result.Activity
	subject := act.Title
	if subject == "" {
		subject = act.Sport
	}
	detail := fmt.Sprintf(
		"<strong>Atividade:</strong> %s<br><strong>Data:</strong> %s às %s<br><strong>Local:</strong> %s",
		html.EscapeString(subject), html.EscapeString(act.Date), html.EscapeString(act.Time), html.EscapeString(act.Street),
	)
	writeHTML(w, http.StatusOK, message, detail)
}

func writeHTML(w http.ResponseWriter, status int, title, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<html>
  <head>
    <title>Resposta processada</title>
    <style>
      body { font-family: Arial, sans-serif; max-width: 600px; margin: 50px auto; padding: 20px; }
      .info { background: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0; }
    </style>
  </head>
  <body>
    <h1>%s</h1>
    <div class="info">%s</div>
    <p>Obrigado por usar nossa plataforma!</p>
  </body>
</html>
`, html.EscapeString(title), body)
}
