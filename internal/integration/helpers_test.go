package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(&c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func seedSessionCart(t testing.TB, app *TestApp, token, itemsJSON string) {
	key := fmt.Sprintf("cart:%s", token)

	err := app.RedisClient.Set(context.Background(), key, itemsJSON, 0).Err()
	if err != nil {
		t.Fatalf("failed to seed cart in redis: %v", err)
	}
}

func insertTestPayment(t testing.TB, app *TestApp, checkoutSessionID, status string, amount float64) {
	_, err := app.DB.Exec(context.Background(),
		`INSERT INTO payments (stripe_checkout_session_id, amount, currency, status) VALUES ($1, $2, $3, $4)`,
		checkoutSessionID, amount, "USD", status)
	if err != nil {
		t.Fatalf("failed to insert payment: %v", err)
	}
}

func paymentByCheckoutSessionID(t testing.TB, app *TestApp, checkoutSessionID string) (status, amount string) {
	err := app.DB.QueryRow(context.Background(),
		`SELECT status, amount::text FROM payments WHERE stripe_checkout_session_id = $1`,
		checkoutSessionID).Scan(&status, &amount)
	if err != nil {
		t.Fatalf("failed to query payment: %v", err)
	}

	return status, amount
}
