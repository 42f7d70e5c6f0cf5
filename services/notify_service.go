package services

import (
	"fmt"
	"log"
	"net/url"

	"sportbuddy_server/models"
)

// NotifyService delivers contact-exchange messages for the match
// lifecycle. Delivery is a logging stub: synchronous, best effort, no
// retry, and it must never fail the operation that triggered it.
type NotifyService struct {
	AppURL string
}

// MatchRequested tells the activity owner that someone wants in, with
// single-use accept/reject links for the request token.
func (ns *NotifyService) MatchRequested(owner, requester models.User, activity models.Activity, token string) {
	subject := activity.Title
	if subject == "" {
		subject = activity.Sport
	}
	log.Println("=== MATCH REQUEST EMAIL ===")
	log.Printf("To: %s", owner.Email)
	log.Printf("Subject: Nova solicitação - %s", subject)
	log.Printf("%s quer participar da atividade %s em %s às %s", requester.Name, activity.Sport, activity.Date, activity.Time)
	log.Printf("Aceitar: %s/api/matches/respond?token=%s&action=%s", ns.AppURL, token, models.MatchActionAccept)
	log.Printf("Recusar: %s/api/matches/respond?token=%s&action=%s", ns.AppURL, token, models.MatchActionReject)
}

// MatchAccepted sends the requester the owner's contact info along with a
// prefilled WhatsApp link.
func (ns *NotifyService) MatchAccepted(requester, owner models.User, activity models.Activity) {
	message := fmt.Sprintf(
		"Oi! Sou %s, organizador da atividade %s que você se interessou. Vamos nos encontrar dia %s às %s em %s. Qualquer dúvida, me chama!",
		owner.Name, activity.Sport, activity.Date, activity.Time, activity.Street,
	)
	log.Println("=== MATCH ACCEPTED EMAIL ===")
	log.Printf("To: %s", requester.Email)
	log.Printf("Subject: Atividade aceita! Dados para contato")
	log.Printf("Sua solicitação foi aceita por %s (%s)", owner.Name, owner.Email)
	log.Printf("WhatsApp: https://wa.me/?text=%s", url.QueryEscape(message))
}
