package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient wires a Client to a stub backend.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "", nil)
}

func writeEnvelope(w http.ResponseWriter, status int, env map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

func TestGetUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lotes" {
			t.Errorf("path = %q, want /api/lotes", r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id_lote": 1, "nombre_lote": "Lote enero", "estado": "activo"},
			},
		})
	})

	lotes, err := client.ListLotes(context.Background())
	if err != nil {
		t.Fatalf("ListLotes: %v", err)
	}
	if len(lotes) != 1 {
		t.Fatalf("got %d batches, want 1", len(lotes))
	}
	if lotes[0].Name != "Lote enero" {
		t.Errorf("name = %q, want %q", lotes[0].Name, "Lote enero")
	}
}

func TestAppErrorCarriesServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "El lote ya está cerrado",
		})
	})

	err := client.CloseLote(context.Background(), 7)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsAppError(err) {
		t.Fatalf("IsAppError = false for %v", err)
	}
	if err.Error() != "El lote ya está cerrado" {
		t.Errorf("message = %q, want the server text verbatim", err.Error())
	}
}

func TestTransportErrorIsNotAppError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	client := NewClient(srv.URL, "", nil)

	err := client.Get(context.Background(), "/api/lotes", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if IsAppError(err) {
		t.Errorf("transport failure classified as app error: %v", err)
	}
}

func TestListNotificacionesUnreadFilter(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"notificaciones": []map[string]interface{}{
					{"id_notificacion": 3, "titulo": "Vitaminas hoy", "prioridad": "alta", "leida": false},
					{"id_notificacion": 1, "titulo": "Crédito vencido", "prioridad": "critica", "leida": false},
				},
				"total_no_leidas": 2,
			},
		})
	})

	list, err := client.ListNotificaciones(context.Background(), true)
	if err != nil {
		t.Fatalf("ListNotificaciones: %v", err)
	}
	if gotQuery != "no_leidas=true" {
		t.Errorf("query = %q, want no_leidas=true", gotQuery)
	}
	if list.TotalNoLeidas != 2 {
		t.Errorf("total = %d, want 2", list.TotalNoLeidas)
	}
	// Server order must be preserved as-is.
	if list.Notificaciones[0].ID != 3 || list.Notificaciones[1].ID != 1 {
		t.Errorf("order changed: got %d, %d", list.Notificaciones[0].ID, list.Notificaciones[1].ID)
	}
}

func TestGenerateAutomaticas(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"notificaciones_creadas": 4},
		})
	})

	created, err := client.GenerateAutomaticas(context.Background())
	if err != nil {
		t.Fatalf("GenerateAutomaticas: %v", err)
	}
	if created != 4 {
		t.Errorf("created = %d, want 4", created)
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sekrit", nil)
	if err := client.Get(context.Background(), "/api/clientes", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want Bearer sekrit", gotAuth)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
}
