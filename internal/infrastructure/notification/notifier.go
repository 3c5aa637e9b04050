// Package notification delivers the follow-up reminders of approved projects.
//
// Two deliveries exist: a log-only notifier used when no webhook is
// configured, and a webhook notifier that POSTs the reminder as JSON to an
// external mailer.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase/interfaces"
)

var ErrDeliveryRejected = errors.New("notification webhook rejected the reminder")

// New returns the webhook notifier when webhookURL is set and the log
// notifier otherwise.
func New(webhookURL string) interfaces.INotifier {
	if u := strings.TrimSpace(webhookURL); u != "" {
		log.Printf("[notification][webhook] enabled url=%s", u)
		return NewWebhookNotifier(u, &http.Client{Timeout: 10 * time.Second})
	}
	log.Printf("[notification][log] webhook not configured, reminders are only logged")
	return LogNotifier{}
}

type LogNotifier struct{}

func (LogNotifier) NotifyFollowUp(_ context.Context, p entities.Project, reminder entities.FollowUpReminder, link string) error {
	log.Printf("[notification][log] follow-up due project_id=%s project=%q period=%s due=%s link=%s",
		p.ID, p.Nome, reminder.Period, reminder.DataAgendada.Format("2006-01-02"), link)
	return nil
}

// Reminder is the JSON body posted to the webhook.
type Reminder struct {
	ProjetoID    string `json:"projetoID"`
	NomeProjeto  string `json:"nomeProjeto"`
	Instituicao  string `json:"instituicao"`
	Periodo      string `json:"periodo"`
	DataAgendada string `json:"dataAgendada"`
	Link         string `json:"link"`
}

type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string, client *http.Client) *WebhookNotifier {
	return &WebhookNotifier{url: url, client: client}
}

func (n *WebhookNotifier) NotifyFollowUp(ctx context.Context, p entities.Project, reminder entities.FollowUpReminder, link string) error {
	body, err := json.Marshal(Reminder{
		ProjetoID:    p.ID,
		NomeProjeto:  p.Nome,
		Instituicao:  p.Instituicao,
		Periodo:      reminder.Period,
		DataAgendada: reminder.DataAgendada.Format("2006-01-02"),
		Link:         link,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[notification][webhook] request failed project_id=%s err=%v", p.ID, err)
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		log.Printf("[notification][webhook] rejected project_id=%s status=%d", p.ID, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrDeliveryRejected, resp.StatusCode)
	}
	log.Printf("[notification][webhook] delivered project_id=%s period=%s", p.ID, reminder.Period)
	return nil
}
