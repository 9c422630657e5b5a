package tests_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trips/clients"
	"trips/service"
)

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	require.NoError(t, client.Ping(context.Background()).Err())

	return client
}

func startService(t *testing.T, redisClient *redis.Client, gatewayAddr string) {
	t.Helper()

	gateway, err := clients.NewGateway(gatewayAddr)
	require.NoError(t, err)

	svc, err := service.New(watermill.NewStdLogger(false, false), redisClient, gateway, "service-token")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		if err := svc.Run(ctx); err != nil {
			t.Log("service stopped:", err)
		}
	}()

	waitForHttpServer(t)
}

func waitForHttpServer(t *testing.T) {
	t.Helper()

	require.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			resp, err := http.Get("http://localhost:8080/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			if assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode) {
				return
			}
		},
		time.Second*10,
		time.Millisecond*50,
	)
}

func sendRequest(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	payload := bytes.NewBuffer(nil)
	if body != nil {
		require.NoError(t, json.NewEncoder(payload).Encode(body))
	}

	req, err := http.NewRequest(method, "http://localhost:8080"+path, payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func login(t *testing.T, email, password string) string {
	t.Helper()

	resp := sendRequest(t, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)

	return body.Token
}
