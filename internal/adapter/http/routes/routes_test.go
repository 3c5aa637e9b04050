package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"painel_incentivos/internal/app"
	"painel_incentivos/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registrationBody = `{
	"usuarioID": "user-1",
	"instituicao": "Instituto Aurora",
	"cnpj": "11.222.333/0001-81",
	"representanteLegal": "Maria",
	"telefone": "(11) 99999-9999",
	"emailRepLegal": "maria@aurora.org",
	"responsavel": "João",
	"emailResponsavel": "joao@aurora.org",
	"cep": "13010-000",
	"endereco": "Rua A",
	"cidade": "Campinas",
	"estado": "São Paulo",
	"nomeProjeto": "Orquestra Jovem",
	"valorAprovado": 250000,
	"valorApto": 300000,
	"dataComeco": "2025-01-01",
	"dataFim": "2099-12-31",
	"segmento": 0,
	"descricao": "Projeto de música para jovens da periferia",
	"publico": [true],
	"ods": [false, false, false, true],
	"beneficiariosDiretos": 120,
	"estados": ["São Paulo"],
	"municipios": ["Campinas"],
	"lei": 0,
	"contrapartidasProjeto": "Concertos gratuitos",
	"termosPrivacidade": true
}`

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := app.New(context.Background(), config.Config{StoreDriver: config.StoreMemory, FollowUpLinkBase: "http://app"})
	require.NoError(t, err)
	r := NewRouter(a)

	w := serve(r, http.MethodGet, "/v1/ping", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/v1/forms/cadastro", registrationBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	id := project["id"].(string)
	assert.Equal(t, "pendente", project["status"])
	assert.Equal(t, false, project["ativo"])

	// Pending projects are not aggregated.
	w = serve(r, http.MethodGet, "/v1/dashboard/states/sao_paulo", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var pending map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, float64(0), pending["qtdProjetos"])

	w = serve(r, http.MethodPatch, "/v1/projects/"+id+"/approve", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(r, http.MethodGet, "/v1/dashboard/states/sao_paulo", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sp))
	assert.Equal(t, float64(1), sp["qtdProjetos"])
	assert.Equal(t, []any{"Campinas"}, sp["municipios"])

	w = serve(r, http.MethodGet, "/v1/dashboard/states", "")
	require.Equal(t, http.StatusOK, w.Code)
	var overview map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, float64(1), overview["estadosAtendidos"])

	w = serve(r, http.MethodDelete, "/v1/projects/"+id, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, http.MethodGet, "/v1/dashboard/states/sao_paulo", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sp))
	assert.Equal(t, float64(0), sp["qtdProjetos"])

	w = serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRun(t *testing.T) {
	a, err := app.New(context.Background(), config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- Run(ctx, 0, a) }()
		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatalf("server did not stop")
		}
	})

	t.Run("reports a busy port", func(t *testing.T) {
		ln, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer ln.Close()

		err = Run(context.Background(), ln.Addr().(*net.TCPAddr).Port, a)
		assert.ErrorContains(t, err, "startup the application")
	})
}
