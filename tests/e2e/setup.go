//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"therapist-management-saas/cmd/bootstrap"
	"therapist-management-saas/cmd/bootstrap/components"
	"therapist-management-saas/internal/infra/db"
	"therapist-management-saas/internal/pkg/config"
	"therapist-management-saas/tests/common/dbtest"

	"ariga.io/atlas/sql/migrate"
	"github.com/alicebob/miniredis/v2"
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

const (
	postgresImage = "postgres:17"
	postgresPort  = nat.Port("5432/tcp")
	testUser      = "test"
	testPassword  = "testpass"
	migrationsDir = "migrations"
)

var (
	containerOnce sync.Once
	containerErr  error
	container     testcontainers.Container
)

// Env is everything one suite needs: an isolated database, the wired router,
// and the in-memory redis behind the pricing cache.
type Env struct {
	Pool   *pgxpool.Pool
	Router *gin.Engine
	Config config.Config
	Redis  *miniredis.Miniredis
}

func newEnv(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	host, port := postgresEndpoint(t)
	dbConfig := createDatabase(t, host, port)

	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	require.NoError(t, applyMigrations(t, pool), "マイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	env := &Env{Pool: pool, Redis: miniredis.RunT(t)}
	env.Config = testConfig(dbConfig, env.Redis.Addr())
	env.Router = startApp(t, pool, env.Config)

	slog.Debug("E2E環境の準備が完了しました", "database", dbConfig.DBName, "redis", env.Redis.Addr())
	return env
}

// postgresEndpoint starts one container per test binary and shares it.
func postgresEndpoint(t *testing.T) (string, nat.Port) {
	t.Helper()
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, containerErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, postgresPort)
	require.NoError(t, err)
	return host, port
}

func postgresRequest() testcontainers.ContainerRequest {
	// 耐久性は不要なのでI/Oを極力減らす
	settings := []string{
		"fsync=off",
		"full_page_writes=off",
		"synchronous_commit=off",
		"shared_buffers=256MB",
		"max_connections=200",
		"log_statement=none",
		"timezone=Asia/Tokyo",
	}
	cmd := []string{"postgres"}
	for _, s := range settings {
		cmd = append(cmd, "-c", s)
	}

	return testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   cmd,
		WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(host, port)
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port.Port())
}

// createDatabase gives each suite its own database and drops it afterwards.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()
	name := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	exec := func(ctx context.Context, sql string) error {
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			return err
		}
		defer admin.Close()
		_, err = admin.Exec(ctx, sql)
		return err
	}

	var err error
	for attempt := range 5 {
		if attempt > 0 {
			// CREATE DATABASE は並列実行時に template1 のロックで失敗することがある
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = exec(ctx, "CREATE DATABASE "+name)
		cancel()
		if err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 10,
		MinConns: 1,
	}
}

// applyMigrations checks atlas.sum and runs every migration file in order.
// The atlas binary is not needed here; cmd/migrate uses it in real deployments.
func applyMigrations(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	dir, err := migrate.NewLocalDir(findMigrationsDir(t))
	if err != nil {
		return fmt.Errorf("open migration dir: %w", err)
	}
	if err := migrate.Validate(dir); err != nil {
		return fmt.Errorf("atlas.sum mismatch: %w", err)
	}
	files, err := dir.Files()
	if err != nil {
		return fmt.Errorf("list migration files: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, f := range files {
		if _, err := pool.Exec(ctx, string(f.Bytes())); err != nil {
			return fmt.Errorf("execute migration %s: %w", f.Name(), err)
		}
	}
	return nil
}

// findMigrationsDir walks up from the package under test to the module root.
func findMigrationsDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, migrationsDir)
		}
		if parent := filepath.Dir(dir); parent == dir {
			require.FailNow(t, "go.mod not found above "+wd)
		}
	}
}

func testConfig(dbConfig config.DBConfig, redisAddr string) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis.Addr = redisAddr
	cfg.Metrics.Enabled = true
	return cfg
}

// startApp wires the production modules around the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Redis  *miniredis.Miniredis
}

func (s *SharedSuite) SetupSuite() {
	env := newEnv(s.T())
	s.DB = env.Pool
	s.Router = env.Router
	s.Config = env.Config
	s.Redis = env.Redis
}

// SetupSubTest gives each subtest an empty schema, reseeded reference data and a cold cache.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	s.Redis.FlushAll()
}
