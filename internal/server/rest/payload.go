package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

const maxBodyBytes = 1 << 20

// Payload is the envelope every response carries.
type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type sessionPayload struct {
	Payload
	SessionToken string `json:"sessionToken"`
	Username     string `json:"username"`
}

type listPayload struct {
	Payload
	Passwords []recordJSON `json:"passwords"`
}

type recordPayload struct {
	Payload
	Password recordJSON `json:"password"`
}

type healthPayload struct {
	Payload
	Status string `json:"status"`
}

// recordJSON is the wire form of a record. "username" and "password" are the
// account credentials stored in the vault, not the caller's.
type recordJSON struct {
	ID        string    `json:"id"`
	Site      string    `json:"site"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toRecordJSON(r *models.Record) recordJSON {
	return recordJSON{
		ID:        r.ID,
		Site:      r.Site,
		Username:  r.AccountUsername,
		Password:  r.Secret,
		Category:  r.Category,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toRecordsJSON(rs []models.Record) []recordJSON {
	out := make([]recordJSON, 0, len(rs))
	for i := range rs {
		out = append(out, toRecordJSON(&rs[i]))
	}
	return out
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type addRecordRequest struct {
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

func (a addRecordRequest) fields() models.RecordFields {
	return models.RecordFields{
		Site:            a.Site,
		AccountUsername: a.Username,
		Secret:          a.Password,
		Category:        a.Category,
		Notes:           a.Notes,
	}
}

// updateRecordRequest uses pointers so absent keys stay untouched.
type updateRecordRequest struct {
	Site     *string `json:"site"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Category *string `json:"category"`
	Notes    *string `json:"notes"`
}

func (u updateRecordRequest) patch() models.RecordPatch {
	return models.RecordPatch{
		Site:            u.Site,
		AccountUsername: u.Username,
		Secret:          u.Password,
		Category:        u.Category,
		Notes:           u.Notes,
	}
}

// JSONResponse writes v with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Payload{Success: false, Message: message})
}

// decodeJSON reads a JSON object from the request body. An empty body
// decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
