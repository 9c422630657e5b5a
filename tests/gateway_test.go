package tests_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"

	"trips/entity"
)

// fakeBackend stands in for the services behind the API gateway. State is
// kept in memory and handlers cover only the endpoints the service calls.
type fakeBackend struct {
	lock       sync.Mutex
	users      map[string]entity.User
	tokens     map[string]entity.User
	packages   map[string]entity.TravelPackage
	plans      map[string]entity.InsurancePlan
	bookings   map[string]entity.Booking
	assistance map[string]entity.AssistanceRequest
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users:      map[string]entity.User{},
		tokens:     map[string]entity.User{},
		packages:   map[string]entity.TravelPackage{},
		plans:      map[string]entity.InsurancePlan{},
		bookings:   map[string]entity.Booking{},
		assistance: map[string]entity.AssistanceRequest{},
	}
}

func (f *fakeBackend) addUser(user entity.User) {
	f.lock.Lock()
	f.users[user.Email] = user
	f.lock.Unlock()
}

func (f *fakeBackend) addPackage(pkg entity.TravelPackage) {
	f.lock.Lock()
	f.packages[pkg.ID] = pkg
	f.lock.Unlock()
}

func (f *fakeBackend) addPlan(plan entity.InsurancePlan) {
	f.lock.Lock()
	f.plans[plan.ID] = plan
	f.lock.Unlock()
}

func (f *fakeBackend) booking(id string) (entity.Booking, bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	b, ok := f.bookings[id]
	return b, ok
}

func (f *fakeBackend) start(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	return server.URL
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		f.lock.Lock()
		defer f.lock.Unlock()
		user, ok := f.users[req.Email]
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token := shortuuid.New()
		f.tokens[token] = user
		json.NewEncoder(w).Encode(map[string]any{"token": token, "user": user})
	})

	mux.HandleFunc("GET /api/users/me", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		user, ok := f.tokens[bearerToken(r)]
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		json.NewEncoder(w).Encode(user)
	})

	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, _ *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		users := make([]entity.User, 0, len(f.users))
		for _, user := range f.users {
			users = append(users, user)
		}
		json.NewEncoder(w).Encode(users)
	})

	mux.HandleFunc("GET /api/packages", func(w http.ResponseWriter, _ *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		packages := make([]entity.TravelPackage, 0, len(f.packages))
		for _, pkg := range f.packages {
			packages = append(packages, pkg)
		}
		json.NewEncoder(w).Encode(packages)
	})

	mux.HandleFunc("GET /api/packages/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		pkg, ok := f.packages[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "package not found")
			return
		}
		json.NewEncoder(w).Encode(pkg)
	})

	mux.HandleFunc("GET /api/insurance/plans", func(w http.ResponseWriter, _ *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		plans := make([]entity.InsurancePlan, 0, len(f.plans))
		for _, plan := range f.plans {
			plans = append(plans, plan)
		}
		json.NewEncoder(w).Encode(plans)
	})

	mux.HandleFunc("GET /api/insurance/plans/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		plan, ok := f.plans[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "plan not found")
			return
		}
		json.NewEncoder(w).Encode(plan)
	})

	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		var booking entity.Booking
		json.NewDecoder(r.Body).Decode(&booking)
		booking.ID = uuid.NewString()
		booking.Status = entity.BookingStatusPending
		booking.CreatedAt = time.Now().UTC()

		f.lock.Lock()
		f.bookings[booking.ID] = booking
		f.lock.Unlock()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(booking)
	})

	mux.HandleFunc("GET /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		userID := r.URL.Query().Get("user_id")
		bookings := make([]entity.Booking, 0, len(f.bookings))
		for _, booking := range f.bookings {
			if userID == "" || booking.UserID == userID {
				bookings = append(bookings, booking)
			}
		}
		json.NewEncoder(w).Encode(bookings)
	})

	mux.HandleFunc("PATCH /api/bookings/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Status string `json:"status"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		f.lock.Lock()
		defer f.lock.Unlock()
		booking, ok := f.bookings[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		booking.Status = req.Status
		f.bookings[booking.ID] = booking
		json.NewEncoder(w).Encode(booking)
	})

	mux.HandleFunc("POST /api/assistance", func(w http.ResponseWriter, r *http.Request) {
		var request entity.AssistanceRequest
		json.NewDecoder(r.Body).Decode(&request)
		request.ID = uuid.NewString()
		request.Status = entity.AssistanceStatusPending
		request.CreatedAt = time.Now().UTC()

		f.lock.Lock()
		f.assistance[request.ID] = request
		f.lock.Unlock()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(request)
	})

	mux.HandleFunc("GET /api/assistance", func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()
		userID := r.URL.Query().Get("user_id")
		requests := make([]entity.AssistanceRequest, 0, len(f.assistance))
		for _, request := range f.assistance {
			if userID == "" || request.UserID == userID {
				requests = append(requests, request)
			}
		}
		json.NewEncoder(w).Encode(requests)
	})

	mux.HandleFunc("PUT /api/assistance/{id}/resolve", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Resolution string `json:"resolution"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		f.lock.Lock()
		defer f.lock.Unlock()
		request, ok := f.assistance[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "assistance request not found")
			return
		}
		request.Status = entity.AssistanceStatusResolved
		request.Resolution = req.Resolution
		request.ResolvedAt = time.Now().UTC()
		f.assistance[request.ID] = request
		json.NewEncoder(w).Encode(request)
	})

	return mux
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) {
		return auth[len(prefix):]
	}
	return ""
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
