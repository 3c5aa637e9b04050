package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"painel_incentivos/internal/domain/entities"
)

func TestNew(t *testing.T) {
	if _, ok := New("  ").(LogNotifier); !ok {
		t.Fatalf("expected log notifier without webhook url")
	}
	if _, ok := New("http://mailer/hook").(*WebhookNotifier); !ok {
		t.Fatalf("expected webhook notifier")
	}
}

func TestWebhookNotifier(t *testing.T) {
	p := entities.Project{ID: "p1", Nome: "Orquestra", Instituicao: "Instituto"}
	reminder := entities.FollowUpReminder{Period: "p3", DataAgendada: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)}

	t.Run("posts reminder", func(t *testing.T) {
		var got Reminder
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Fatalf("expected POST, got %s", r.Method)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL, srv.Client())
		if err := n.NotifyFollowUp(context.Background(), p, reminder, "http://app/forms-acompanhamento/p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjetoID != "p1" || got.Periodo != "p3" || got.DataAgendada != "2026-01-10" {
			t.Fatalf("unexpected body: %+v", got)
		}
	})

	t.Run("non 2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL, srv.Client())
		err := n.NotifyFollowUp(context.Background(), p, reminder, "")
		if !errors.Is(err, ErrDeliveryRejected) {
			t.Fatalf("expected ErrDeliveryRejected, got %v", err)
		}
	})
}
