package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

func verificationRedisKey(email string) string {
	return fmt.Sprintf("verification_%s", email)
}

func (h *Handler) createVerificationToken(email string) (string, error) {
	now := time.Now()
	expiration := now.Add(time.Duration(h.config.Verification.TokenExpiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(expiration),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	})

	return token.SignedString([]byte(h.config.Verification.Secret))
}

func (h *Handler) parseVerificationToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(h.config.Verification.Secret), nil
	})
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// buildVerificationLink appends the token and email to the configured
// confirmation base URL.
func (h *Handler) buildVerificationLink(token string, email string) string {
	separator := "?"
	if strings.Contains(h.config.Verification.BaseURL, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%stoken=%s&email=%s", h.config.Verification.BaseURL, separator, url.QueryEscape(token), url.QueryEscape(email))
}

// publishVerificationMail issues a fresh single-use token, stores it in
// redis with the configured expiration and enqueues the verification mail.
// An enqueue failure is returned to the caller, never swallowed.
func (h *Handler) publishVerificationMail(ctx context.Context, email string, names string, surnames string) error {
	token, err := h.createVerificationToken(email)
	if err != nil {
		return err
	}

	redisCtx, cancel := context.WithTimeout(ctx, time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	expiration := time.Duration(h.config.Verification.TokenExpiration) * time.Second
	if err := h.redisClient.Set(redisCtx, verificationRedisKey(email), token, expiration).Err(); err != nil {
		return err
	}

	mailMessage := domain.MailMessage{
		Type: domain.MailTypeVerification,
		To:   email,
		Data: domain.VerificationMailData{
			Alumni:     firstNameAndSurname(names, surnames),
			Names:      names,
			Surnames:   surnames,
			Link:       h.buildVerificationLink(token, email),
			Expiration: expirationHours(h.config.Verification.TokenExpiration),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		return err
	}

	publishCtx, cancel := context.WithTimeout(ctx, time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		publishCtx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}

// firstNameAndSurname is the short form used in mail greetings. Blank
// names fall back to the raw value instead of indexing into nothing.
func firstNameAndSurname(names string, surnames string) string {
	first := names
	if fields := strings.Fields(names); len(fields) > 0 {
		first = fields[0]
	}
	last := surnames
	if fields := strings.Fields(surnames); len(fields) > 0 {
		last = fields[0]
	}
	return strings.TrimSpace(first + " " + last)
}

// expirationHours reports a lifetime in whole hours, rounding up so short
// lifetimes never display as zero in the mail body.
func expirationHours(seconds int) int {
	return (seconds + 3599) / 3600
}

func (h *Handler) SendVerification(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	alumni, err := h.repository.GetAlumniByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no alumni with the given email (%s)", email))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.publishVerificationMail(r.Context(), alumni.Email, alumni.Names, alumni.Surnames); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, nil)
}

func (h *Handler) ConfirmVerification(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	email := r.URL.Query().Get("email")
	if token == "" || email == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "token and email are required")
		return
	}

	subject, err := h.parseVerificationToken(token)
	if err != nil || subject != email {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid or expired verification token")
		return
	}

	// the token must also match the stored single-use copy
	redisCtx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	stored, err := h.redisClient.Get(redisCtx, verificationRedisKey(email)).Result()
	if err != nil || stored != token {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid or expired verification token")
		return
	}

	if err := h.repository.SetAlumniVerified(r.Context(), email); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("there is no alumni with the given email (%s)", email))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.redisClient.Del(redisCtx, verificationRedisKey(email)).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, nil)
}
