package integration_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/greenbasket/checkout/internal/app"
	"github.com/greenbasket/checkout/internal/cart"
	"github.com/greenbasket/checkout/internal/payment"
	"github.com/greenbasket/checkout/internal/repository"
	appvalidator "github.com/greenbasket/checkout/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	paymentRepo := repository.NewPostgresPaymentRepository(db)
	paymentProvider := payment.NewMockPaymentProvider()

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		cart.NewRedisStorage(redisClient),
		paymentRepo,
		paymentProvider,
	)

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
	}, nil
}

// guestSessionCookies bootstraps a guest session and returns its cookies, so
// scenarios can share one browser context.
func (ta *TestApp) guestSessionCookies(t testing.TB) []http.Cookie {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)

	ta.App.Routes().ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	cookies := make([]http.Cookie, 0, len(res.Cookies()))
	for _, c := range res.Cookies() {
		cookies = append(cookies, *c)
	}

	if len(cookies) == 0 {
		t.Fatal("expected the guest session to set a cookie")
	}

	return cookies
}
