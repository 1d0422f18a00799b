package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookline/gateway/internal/adapter/backend"
	"github.com/bookline/gateway/internal/adapter/handler"
	"github.com/bookline/gateway/internal/domain"
	"github.com/bookline/gateway/internal/domain/entity"
	"github.com/bookline/gateway/internal/infrastructure/auth"
	"github.com/bookline/gateway/internal/infrastructure/config"
	"github.com/bookline/gateway/internal/infrastructure/middleware"
	"github.com/bookline/gateway/internal/infrastructure/server"
	"github.com/bookline/gateway/internal/usecase/booking"
	"github.com/bookline/gateway/internal/usecase/catalog"
	"github.com/bookline/gateway/internal/usecase/imgsign"
	"github.com/bookline/gateway/internal/usecase/media"
	"github.com/bookline/gateway/internal/usecase/payment"
	"github.com/bookline/gateway/internal/usecase/subscription"
)

const (
	apiBasePath = "/api/v1"

	testJWTSecret = "e2e-test-secret"

	testImgproxyKey  = "943b421c9eb07c830af81030552c86009268de4e532ba2ee2eab8247c6da0de1"
	testImgproxySalt = "520f986b998545b4785e0defbc4f3c1203f22de2374a3d53cb7a7fe9fea309c5"
)

// TestApp runs the full gateway against a fake upstream backend. The
// subscriber store, email queue, and object storage are in-memory doubles so
// the suite needs no external services.
type TestApp struct {
	Server   *httptest.Server
	Upstream *httptest.Server
	BaseURL  string

	JWTSecret string
	Repo      *memorySubscriberRepo
	Queue     *recordingQueue
	Storage   *memoryObjectStorage

	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	upstream := newFakeUpstream()

	backendClient := backend.NewClient(config.BackendConfig{
		BaseURL:        upstream.URL,
		RequestTimeout: 5 * time.Second,
		BookingTimeout: 5 * time.Second,
		MaxRedirects:   3,
	})

	imgsignSvc, err := imgsign.NewService(testImgproxyKey, testImgproxySalt, "https://img.example.com")
	if err != nil {
		t.Fatalf("failed to build imgsign service: %v", err)
	}

	bookingSvc, err := booking.NewService(backendClient, config.BookingConfig{
		Timezone:        "Asia/Kolkata",
		DefaultDuration: 30,
	})
	if err != nil {
		t.Fatalf("failed to build booking service: %v", err)
	}

	paymentSvc := payment.NewService(backendClient, backendClient)
	catalogSvc := catalog.NewService(backendClient)

	repo := newMemorySubscriberRepo()
	queue := &recordingQueue{}
	subscriptionSvc := subscription.NewService(repo, queue, logger)

	objectStorage := newMemoryObjectStorage()
	mediaSvc := media.NewService(objectStorage, passthroughProcessor{})

	jwtSvc := auth.NewJWTService(testJWTSecret)

	router := server.NewRouter(server.RouterConfig{
		ImgproxyHandler:     handler.NewImgproxyHandler(imgsignSvc, logger),
		BookingHandler:      handler.NewBookingHandler(bookingSvc),
		PaymentHandler:      handler.NewPaymentHandler(paymentSvc),
		CatalogHandler:      handler.NewCatalogHandler(catalogSvc),
		ProfileHandler:      handler.NewProfileHandler(backendClient),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionSvc),
		MediaHandler:        handler.NewMediaHandler(mediaSvc),
		AuthMiddleware:      middleware.NewAuthMiddleware(jwtSvc),
		Logger:              logger,
		Environment:         "test",
	})

	srv := httptest.NewServer(router.Engine())
	t.Cleanup(func() {
		srv.Close()
		upstream.Close()
	})

	return &TestApp{
		Server:     srv,
		Upstream:   upstream,
		BaseURL:    srv.URL,
		JWTSecret:  testJWTSecret,
		Repo:       repo,
		Queue:      queue,
		Storage:    objectStorage,
		httpClient: srv.Client(),
	}
}

// sessionCookie mints an access token the way the upstream identity service
// would and wraps it in the cookie the gateway expects.
func (app *TestApp) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()

	claims := auth.Claims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(app.JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	return &http.Cookie{Name: "access_token", Value: token}
}

func (app *TestApp) request(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.httpClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func (app *TestApp) get(t *testing.T, path string, cookies ...*http.Cookie) *http.Response {
	return app.request(t, http.MethodGet, path, nil, cookies...)
}

func (app *TestApp) post(t *testing.T, path string, body any, cookies ...*http.Cookie) *http.Response {
	return app.request(t, http.MethodPost, path, body, cookies...)
}

func (app *TestApp) patch(t *testing.T, path string, body any, cookies ...*http.Cookie) *http.Response {
	return app.request(t, http.MethodPatch, path, body, cookies...)
}

func parseResponse(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(data)
}

// newFakeUpstream serves the subset of the booking backend the gateway talks
// to, with canned but internally consistent data.
func newFakeUpstream() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /schedule-slots", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("access_token"); err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "not authenticated"})
			return
		}
		var in struct {
			ServiceID string    `json:"service_id"`
			OpenTime  time.Time `json:"open_time"`
			CloseTime time.Time `json:"close_time"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "bad payload"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"slot": map[string]any{
				"id":         101,
				"service_id": in.ServiceID,
				"open_time":  in.OpenTime,
				"close_time": in.CloseTime,
				"status":     "booked",
				"created_at": time.Now().UTC(),
				"updated_at": time.Now().UTC(),
			},
			"message": "Slot created successfully",
		})
	})

	mux.HandleFunc("GET /orders/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		orderID := parts[1]
		if orderID == "404" {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "order not found"})
			return
		}
		order := map[string]any{
			"id":                 orderID,
			"payment_session_id": "sess-" + orderID,
			"status":             "pending",
			"payment": map[string]any{
				"order_amount":   499.0,
				"order_currency": "INR",
				"status":         "pending",
			},
		}
		writeJSON(w, http.StatusOK, order)
	})

	mux.HandleFunc("POST /payments/upi/collect", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			PaymentSessionID string `json:"payment_session_id"`
			UPIID            string `json:"upi_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeJSON(w, http.StatusOK, map[string]any{
			"amount":   499.0,
			"currency": "INR",
			"upi_link": "upi://pay?pa=" + in.UPIID + "&sid=" + in.PaymentSessionID,
		})
	})

	mux.HandleFunc("POST /payments/upi/qr", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"amount":   499.0,
			"currency": "INR",
			"qr_code":  "data:image/png;base64,QR",
		})
	})

	mux.HandleFunc("POST /payments/process", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"amount":   499.0,
			"currency": "INR",
			"status":   "captured",
		})
	})

	mux.HandleFunc("GET /businesses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"businesses": []map[string]any{
				{"id": 1, "public_id": "glow-salon", "name": "Glow Salon", "city": "Pune"},
				{"id": 2, "public_id": "fit-studio", "name": "Fit Studio", "city": "Mumbai"},
			},
		})
	})

	mux.HandleFunc("GET /business/", func(w http.ResponseWriter, r *http.Request) {
		publicID := strings.TrimPrefix(r.URL.Path, "/business/")
		if publicID == "missing" {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "business not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"business": map[string]any{"id": 1, "public_id": publicID, "name": "Glow Salon", "city": "Pune"},
		})
	})

	mux.HandleFunc("GET /services/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": []map[string]any{
				{"id": 11, "business_id": 1, "name": "Haircut", "price": 350, "duration_minutes": 45},
			},
		})
	})

	mux.HandleFunc("GET /public/services/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"times": []string{"10:00", "10:30"},
		})
	})

	mux.HandleFunc("PATCH /update-profile", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("access_token"); err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "not authenticated"})
			return
		}
		var in struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Phone     string `json:"phone"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Profile updated successfully",
			"user": map[string]any{
				"firstName": in.FirstName,
				"lastName":  in.LastName,
				"phone":     in.Phone,
				"email":     "user@example.com",
			},
		})
	})

	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// memorySubscriberRepo mirrors the postgres upsert semantics in a map.
type memorySubscriberRepo struct {
	mu     sync.Mutex
	nextID int64
	byMail map[string]*entity.Subscriber
}

func newMemorySubscriberRepo() *memorySubscriberRepo {
	return &memorySubscriberRepo{nextID: 1, byMail: make(map[string]*entity.Subscriber)}
}

func (r *memorySubscriberRepo) Upsert(_ context.Context, email, confirmationToken string) (*entity.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub, ok := r.byMail[email]; ok {
		if sub.Status != entity.SubscriberConfirmed {
			sub.Status = entity.SubscriberPending
			sub.ConfirmationToken = confirmationToken
		}
		sub.UpdatedAt = time.Now()
		copied := *sub
		return &copied, nil
	}

	sub := &entity.Subscriber{
		ID:                r.nextID,
		Email:             email,
		Status:            entity.SubscriberPending,
		ConfirmationToken: confirmationToken,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	r.nextID++
	r.byMail[email] = sub
	copied := *sub
	return &copied, nil
}

func (r *memorySubscriberRepo) ConfirmByToken(_ context.Context, token string) (*entity.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sub := range r.byMail {
		if sub.ConfirmationToken == token && token != "" {
			sub.Status = entity.SubscriberConfirmed
			sub.ConfirmationToken = ""
			sub.UpdatedAt = time.Now()
			copied := *sub
			return &copied, nil
		}
	}
	return nil, domain.ErrSubscriberNotFound
}

func (r *memorySubscriberRepo) GetByEmail(_ context.Context, email string) (*entity.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byMail[email]
	if !ok {
		return nil, domain.ErrSubscriberNotFound
	}
	copied := *sub
	return &copied, nil
}

type enqueuedEmail struct {
	Email string
	Token string
}

type recordingQueue struct {
	mu   sync.Mutex
	sent []enqueuedEmail
}

func (q *recordingQueue) EnqueueConfirmation(_ context.Context, email, token string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sent = append(q.sent, enqueuedEmail{Email: email, Token: token})
	return nil
}

func (q *recordingQueue) Sent() []enqueuedEmail {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]enqueuedEmail, len(q.sent))
	copy(out, q.sent)
	return out
}

type storedObject struct {
	data        []byte
	contentType string
}

type memoryObjectStorage struct {
	mu      sync.Mutex
	objects map[string]storedObject
}

func newMemoryObjectStorage() *memoryObjectStorage {
	return &memoryObjectStorage{objects: make(map[string]storedObject)}
}

func (s *memoryObjectStorage) Upload(_ context.Context, key string, reader io.Reader, contentType string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = storedObject{data: data, contentType: contentType}
	return nil
}

func (s *memoryObjectStorage) Download(_ context.Context, key string) (io.ReadCloser, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, "", domain.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, nil
}

func (s *memoryObjectStorage) GetURL(key string) string {
	return "https://media.example.com/" + key
}

func (s *memoryObjectStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// passthroughProcessor skips real image decoding so uploads need no valid
// JPEG bytes.
type passthroughProcessor struct{}

func (passthroughProcessor) Process(reader io.Reader) (io.Reader, int64, int, int, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return bytes.NewReader(data), int64(len(data)), 640, 480, nil
}
