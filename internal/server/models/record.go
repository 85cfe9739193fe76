package models

import "time"

// Record is one stored site credential. Secret is kept in plain text.
type Record struct {
	ID              string
	UserName        string
	Site            string
	AccountUsername string
	Secret          string
	Category        string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecordFields is the input for creating a record.
type RecordFields struct {
	Site            string
	AccountUsername string
	Secret          string
	Category        string
	Notes           string
}

// RecordPatch is a partial update; nil fields are left untouched.
type RecordPatch struct {
	Site            *string
	AccountUsername *string
	Secret          *string
	Category        *string
	Notes           *string
}

// Apply copies every non-nil patch field onto r.
func (p RecordPatch) Apply(r *Record) {
	if p.Site != nil {
		r.Site = *p.Site
	}
	if p.AccountUsername != nil {
		r.AccountUsername = *p.AccountUsername
	}
	if p.Secret != nil {
		r.Secret = *p.Secret
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// Empty reports whether the patch changes nothing.
func (p RecordPatch) Empty() bool {
	return p.Site == nil && p.AccountUsername == nil && p.Secret == nil &&
		p.Category == nil && p.Notes == nil
}
