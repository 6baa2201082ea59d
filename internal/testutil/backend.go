// Package testutil hosts an in-process stand-in for the community health
// backend: the REST endpoints the client consumes plus a socket.io endpoint
// for the push channel.
package testutil

import (
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/dto/responses"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// TokenMode controls where the login handler puts the issued token.
type TokenMode int

const (
	TokenInBodyAndCookie TokenMode = iota
	TokenInBodyOnly
	TokenInCookieOnly
	// TokenDivergent sends different tokens in the body and the cookie.
	TokenDivergent
	TokenNowhere
)

type contextKey string

const usernameContextKey contextKey = "username"

type account struct {
	ID       string
	Username string
	Email    string
	Password string
}

type failure struct {
	status  int
	message string
}

type Backend struct {
	Server *httptest.Server

	mu           sync.Mutex
	secret       []byte
	tokenMode    TokenMode
	accounts     map[string]*account
	reservations map[string][]responses.Reservation
	failures     map[string]failure
	calls        map[string]int
	lastHeaders  map[string]http.Header

	hospitals     []responses.Hospital
	pharmacies    []responses.Pharmacy
	laboratories  []responses.Laboratory
	phoneLines    []responses.PhoneLine
	doctors       []responses.Doctor
	announcements []responses.Announcement

	sockets *socketHub
}

func NewBackend() *Backend {
	b := &Backend{
		secret:       []byte(uuid.NewString()),
		accounts:     make(map[string]*account),
		reservations: make(map[string][]responses.Reservation),
		failures:     make(map[string]failure),
		calls:        make(map[string]int),
		lastHeaders:  make(map[string]http.Header),
		sockets:      newSocketHub(),
	}
	b.Server = httptest.NewServer(b.routes())
	return b
}

func (b *Backend) URL() string {
	return b.Server.URL
}

func (b *Backend) Close() {
	b.sockets.closeAll()
	b.Server.Close()
}

func (b *Backend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(b.recordCalls)
	r.Use(b.injectFailures)

	r.Post(constvars.EndpointLogin, b.handleLogin)
	r.Post(constvars.EndpointRegister, b.handleRegister)

	r.Group(func(r chi.Router) {
		r.Use(b.requireBearer)
		r.Get(constvars.EndpointVerify, b.handleVerify)
		r.Get(constvars.EndpointMyReservations, b.handleMyReservations)
		r.Post(constvars.EndpointCreateReservation, b.handleCreateReservation)
	})

	r.Get(constvars.EndpointHospitals, listHandler(b, func() interface{} { return b.hospitals }))
	r.Get(constvars.EndpointPharmacies, listHandler(b, func() interface{} { return b.pharmacies }))
	r.Get(constvars.EndpointLaboratories, listHandler(b, func() interface{} { return b.laboratories }))
	r.Get(constvars.EndpointPhoneLines, listHandler(b, func() interface{} { return b.phoneLines }))
	r.Get(constvars.EndpointDoctors, listHandler(b, func() interface{} { return b.doctors }))
	r.Get(constvars.EndpointAnnouncements, listHandler(b, func() interface{} { return b.announcements }))

	r.Get(constvars.EndpointRealtimeSocketPath, b.sockets.serve)
	return r
}

func (b *Backend) recordCalls(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[r.URL.Path]++
		b.lastHeaders[r.URL.Path] = r.Header.Clone()
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		f, ok := b.failures[r.URL.Path]
		b.mu.Unlock()
		if ok {
			writeJSON(w, f.status, responses.ErrorBody{Message: f.message})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
			writeJSON(w, http.StatusUnauthorized, responses.ErrorBody{Message: "Token no proporcionado"})
			return
		}
		username, err := b.parseToken(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, responses.ErrorBody{Message: "Token no válido"})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), usernameContextKey, username)))
	})
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var request requests.LoginUser
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, responses.ErrorBody{Message: "Solicitud inválida"})
		return
	}

	b.mu.Lock()
	acc, ok := b.accounts[strings.ToLower(request.Email)]
	mode := b.tokenMode
	b.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, responses.ErrorBody{Message: "Usuario no encontrado"})
		return
	}
	if acc.Password != request.Password {
		writeJSON(w, http.StatusUnauthorized, responses.ErrorBody{Message: "Contraseña incorrecta"})
		return
	}

	token := b.IssueToken(acc.Username)
	body := responses.LoginUser{Username: acc.Username, Message: "Inicio de sesión exitoso"}

	switch mode {
	case TokenInBodyAndCookie:
		body.Token = token
		setTokenCookie(w, token)
	case TokenInBodyOnly:
		body.Token = token
	case TokenInCookieOnly:
		setTokenCookie(w, token)
	case TokenDivergent:
		body.Token = token
		setTokenCookie(w, b.IssueToken(acc.Username))
	}
	writeJSON(w, http.StatusOK, body)
}

func (b *Backend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var request requests.RegisterUser
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, responses.ErrorBody{Message: "Solicitud inválida"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	email := strings.ToLower(request.Email)
	if _, exists := b.accounts[email]; exists {
		writeJSON(w, http.StatusBadRequest, responses.ErrorBody{Message: "El usuario ya existe"})
		return
	}
	acc := &account{ID: uuid.NewString(), Username: request.Username, Email: email, Password: request.Password}
	b.accounts[email] = acc

	writeJSON(w, http.StatusCreated, responses.RegisterUser{
		ID:       acc.ID,
		Username: acc.Username,
		Email:    acc.Email,
		Message:  "Usuario registrado",
	})
}

func (b *Backend) handleVerify(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(usernameContextKey).(string)

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, acc := range b.accounts {
		if acc.Username == username {
			writeJSON(w, http.StatusOK, responses.VerifyUser{ID: acc.ID, Username: acc.Username, Email: acc.Email})
			return
		}
	}
	writeJSON(w, http.StatusOK, responses.VerifyUser{Username: username})
}

func (b *Backend) handleMyReservations(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(usernameContextKey).(string)

	b.mu.Lock()
	docs := append([]responses.Reservation{}, b.reservations[username]...)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, responses.ReservationList{Docs: docs})
}

func (b *Backend) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(usernameContextKey).(string)

	var request requests.CreateReservation
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, responses.ErrorBody{Message: "Solicitud inválida"})
		return
	}

	reservation := responses.Reservation{
		ID:            uuid.NewString(),
		AttentionType: request.AttentionType,
		PatientName:   username,
		Phone:         request.Phone,
		Address:       request.Address,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	b.mu.Lock()
	b.reservations[username] = append(b.reservations[username], reservation)
	b.mu.Unlock()

	writeJSON(w, http.StatusCreated, responses.CreatedReservation{ID: reservation.ID, Message: "Atención registrada"})
}

func listHandler(b *Backend, items func() interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		payload := items()
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, payload)
	}
}

func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieNameToken,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
