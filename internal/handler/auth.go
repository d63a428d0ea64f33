package handler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const sessionCookieName = "__guard_journal_token"

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// lockout check: repeated failures from one address get throttled
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	attemptsKey := fmt.Sprintf("login_attempts_%s", clientIP(r))
	attempts, err := h.redisClient.Get(ctx, attemptsKey).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		h.internalServerError(w, r, err)
		return
	}
	if attempts >= h.config.Auth.MaxLoginAttempts {
		h.errorResponse(w, r, "too many failed attempts, try again later")
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.accessHash, []byte(req.Password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			if err := h.redisClient.Incr(ctx, attemptsKey).Err(); err != nil {
				h.internalServerError(w, r, err)
				return
			}
			if err := h.redisClient.Expire(ctx, attemptsKey, time.Duration(h.config.Auth.LockoutDuration)*time.Second).Err(); err != nil {
				h.internalServerError(w, r, err)
				return
			}
			h.errorResponse(w, r, "wrong password")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.redisClient.Del(ctx, attemptsKey).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiration),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
		Subject:   "guard-journal",
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "logged in", nil)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	h.successResponse(w, r, "logged out", nil)
}

// CheckAuth lets the frontend decide between the login screen and the
// dashboard without triggering the auth middleware's error responses.
func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	status := struct {
		Authenticated bool `json:"authenticated"`
	}{}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.successResponse(w, r, "authentication status", status)
		return
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWT.Secret), nil
	}); err == nil {
		status.Authenticated = true
	}

	h.successResponse(w, r, "authentication status", status)
}
