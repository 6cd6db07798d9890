//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"tour-booking-api/cmd/bootstrap"
	"tour-booking-api/cmd/bootstrap/components"
	"tour-booking-api/internal/infra/db"
	"tour-booking-api/internal/pkg/config"
	"tour-booking-api/internal/pkg/password"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container

	testDBUser     = "test"
	testDBPassword = "testpass"
)

// SharedSuite boots one PostgreSQL container per test binary and a fresh
// database plus fx application per suite.
type SharedSuite struct {
	suite.Suite
	Pool   *pgxpool.Pool
	Router *gin.Engine
	Config config.Config

	app *fx.App
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := startPostgresOnce(t)
	dbConfig := createDatabase(t, host, port)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	require.NoError(t, db.RunMigrations(ctx, pool), "failed to apply schema")

	s.Pool = pool
	s.Router, s.Config, s.app = buildApp(pool, dbConfig)
}

func (s *SharedSuite) TearDownSuite() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.app.Stop(ctx)
}

// CreateUser inserts a user directly and returns its id. The password for
// every fixture user is "password123".
func (s *SharedSuite) CreateUser(email, role string) uuid.UUID {
	t := s.T()
	t.Helper()

	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	var id uuid.UUID
	err = s.Pool.QueryRow(context.Background(),
		`INSERT INTO users (name, email, password_hash, role, status)
		 VALUES ($1, $2, $3, $4, 'active') RETURNING id`,
		"Fixture "+role, email, hash, role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// PerformRequest sends a JSON request through the router, attaching the
// bearer token when one is given.
func (s *SharedSuite) PerformRequest(method, url string, body any, token string) *httptest.ResponseRecorder {
	t := s.T()
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

// Login authenticates a fixture user and returns the issued token.
func (s *SharedSuite) Login(email string) string {
	t := s.T()
	t.Helper()

	rec := s.PerformRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func startPostgresOnce(t *testing.T) (string, nat.Port) {
	pgOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testDBUser,
				"POSTGRES_PASSWORD": testDBPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "full_page_writes=off",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testDBUser, testDBPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
		defer cancel()

		var err error
		pgContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "failed to start postgres container")
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return host, port
}

// createDatabase provisions an isolated database so suites can run in
// parallel against the shared container.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testDBUser, testDBPassword, host, port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			return
		}
		defer cleanupPool.Close()
		_, _ = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName)
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testDBUser,
		Password: testDBPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}
}

func buildApp(pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	app := fx.New(
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() config.Config {
			testConfig := config.NewTestConfig()
			testConfig.DB = dbConfig
			return testConfig
		}),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}
	return router, cfg, app
}
