package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// VaultService is the subset of services.VaultService the handlers call.
type VaultService interface {
	Register(ctx context.Context, username, password string) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, token, username string) error
	ListPasswords(ctx context.Context, token, username string) ([]models.Record, error)
	SearchPasswords(ctx context.Context, token, username, site string) ([]models.Record, error)
	AddPassword(ctx context.Context, token, username string, fields models.RecordFields) (*models.Record, error)
	UpdatePassword(ctx context.Context, token, username, id string, patch models.RecordPatch) (*models.Record, error)
	DeletePassword(ctx context.Context, token, username, id string) error
}

type handlers struct {
	svc    VaultService
	logger logging.Logger
}

// credentials reads the session token and claimed username from headers.
func credentials(r *http.Request) (token, username string) {
	token = strings.TrimSpace(r.Header.Get(common.AuthorizationHeaderName))
	token = strings.TrimPrefix(token, common.BearerPrefix)
	username = strings.TrimSpace(r.Header.Get(common.UsernameHeaderName))
	return token, username
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	fail(w, status, msg)
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, healthPayload{Payload: Payload{Success: true}, Status: "ok"})
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	fail(w, http.StatusNotFound, "Not found")
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	h.openSession(w, r, h.svc.Register)
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	h.openSession(w, r, h.svc.Login)
}

func (h *handlers) openSession(w http.ResponseWriter, r *http.Request,
	open func(ctx context.Context, username, password string) (*models.Session, error)) {

	var in credentialsRequest
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess, err := open(r.Context(), in.Username, in.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSONResponse(w, http.StatusOK, sessionPayload{
		Payload:      Payload{Success: true},
		SessionToken: sess.Token,
		Username:     sess.UserName,
	})
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	token, username := credentials(r)
	if err := h.svc.Logout(r.Context(), token, username); err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, Payload{Success: true, Message: "Logged out successfully"})
}

func (h *handlers) listPasswords(w http.ResponseWriter, r *http.Request) {
	token, username := credentials(r)

	var (
		recs []models.Record
		err  error
	)
	if r.URL.Query().Has("site") {
		recs, err = h.svc.SearchPasswords(r.Context(), token, username, r.URL.Query().Get("site"))
	} else {
		recs, err = h.svc.ListPasswords(r.Context(), token, username)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSONResponse(w, http.StatusOK, listPayload{Payload: Payload{Success: true}, Passwords: toRecordsJSON(recs)})
}

func (h *handlers) addPassword(w http.ResponseWriter, r *http.Request) {
	token, username := credentials(r)

	var in addRecordRequest
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, err := h.svc.AddPassword(r.Context(), token, username, in.fields())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSONResponse(w, http.StatusOK, recordPayload{
		Payload:  Payload{Success: true, Message: "Password added successfully"},
		Password: toRecordJSON(rec),
	})
}

func (h *handlers) updatePassword(w http.ResponseWriter, r *http.Request) {
	token, username := credentials(r)

	var in updateRecordRequest
	if err := decodeJSON(w, r, &in); err != nil {
		fail(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	rec, err := h.svc.UpdatePassword(r.Context(), token, username, r.PathValue("id"), in.patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	JSONResponse(w, http.StatusOK, recordPayload{
		Payload:  Payload{Success: true, Message: "Password updated successfully"},
		Password: toRecordJSON(rec),
	})
}

func (h *handlers) deletePassword(w http.ResponseWriter, r *http.Request) {
	token, username := credentials(r)

	if err := h.svc.DeletePassword(r.Context(), token, username, r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, Payload{Success: true, Message: "Password deleted successfully"})
}
