package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httpadapter "github.com/axlwolf/task-manager/internal/adapter/http"
	"github.com/axlwolf/task-manager/internal/adapter/http/handlers"
	"github.com/axlwolf/task-manager/internal/adapter/kv"
	"github.com/axlwolf/task-manager/internal/adapter/memory"
	"github.com/axlwolf/task-manager/internal/app/dialog"
	"github.com/axlwolf/task-manager/internal/app/service"
	"github.com/axlwolf/task-manager/internal/app/store"
	"github.com/axlwolf/task-manager/internal/app/usecase"
	"github.com/axlwolf/task-manager/internal/core/ports"
	"github.com/axlwolf/task-manager/pkg/translator"
)

type testServer struct {
	router *gin.Engine
	store  *store.Store
	outlet *dialog.Outlet
	flags  *service.FeatureFlagService
	tasks  ports.TaskRepository
}

type serverOptions struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	checks map[string]handlers.HealthCheck
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()

	if opts.tasks == nil {
		opts.tasks = memory.NewTaskRepository(memory.SeedTasks())
	}
	if opts.users == nil {
		opts.users = memory.NewUserRepository(memory.SeedUsers())
	}

	logger := zap.NewNop()
	s := store.New(store.UseCases{
		GetTasks:     usecase.NewGetTasks(opts.tasks),
		GetUsers:     usecase.NewGetUsers(opts.users),
		CreateTask:   usecase.NewCreateTask(opts.tasks),
		CompleteTask: usecase.NewCompleteTask(opts.tasks),
	}, dialog.NewService(logger), logger)
	t.Cleanup(s.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Wait(ctx))

	outlet := dialog.NewOutlet()
	s.SetViewAnchor(outlet)

	kvStore := kv.NewMemoryStore()
	flags := service.NewFeatureFlagService(context.Background(), kvStore, logger)
	themes := service.NewThemeService(context.Background(), kvStore, "", logger)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler("easytask", opts.checks),
		Users:       handlers.NewUserHandler(s, opts.users),
		Tasks:       handlers.NewTaskHandler(s, opts.tasks),
		Dialogs:     handlers.NewDialogHandler(s, outlet, flags),
		Preferences: handlers.NewPreferencesHandler(themes, flags),
	})

	return &testServer{router: router, store: s, outlet: outlet, flags: flags, tasks: opts.tasks}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, lang string) *httptest.ResponseRecorder {
	t.Helper()

	var payload *bytes.Buffer
	if body == nil {
		payload = bytes.NewBuffer(nil)
	} else if raw, ok := body.(string); ok {
		payload = bytes.NewBufferString(raw)
	} else {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)
	rec := httptest.NewRecorder()

	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var got T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}

