package mysql

import (
	"context"
	"database/sql"
	"time"

	"roamio/internal/domain"
)

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// GetPartner reads one projected row from the unified view. The rating column
// is scanned as text because the view may encode it either way; coercion is
// the app layer's job.
func (r *Repo) GetPartner(ctx context.Context, id string) (domain.PartnerRecord, error) {
	row := r.db.QueryRowContext(ctx, getPartnerSQL, id)

	var rec domain.PartnerRecord
	var (
		typ, desc, loc, price, rating sql.NullString
		createdAt, updatedAt          sql.NullTime
	)
	if err := row.Scan(
		&rec.ID,
		&rec.Name,
		&typ,
		&desc,
		&loc,
		&price,
		&rating,
		&rec.Amenities,
		&rec.Coordinates,
		&rec.Images,
		&rec.ContactInfo,
		&createdAt,
		&updatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.PartnerRecord{}, domain.ErrNotFound
		}
		return domain.PartnerRecord{}, err
	}

	rec.Type = strPtr(typ)
	rec.Description = strPtr(desc)
	rec.Location = strPtr(loc)
	rec.PriceRange = strPtr(price)
	rec.RatingRaw = strPtr(rating)
	rec.CreatedAt = timePtr(createdAt)
	rec.UpdatedAt = timePtr(updatedAt)
	return rec, nil
}

func (r *Repo) ListPartners(ctx context.Context, limit int) ([]domain.PartnerRecord, error) {
	rows, err := r.db.QueryContext(ctx, listPartnersSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PartnerRecord
	for rows.Next() {
		var rec domain.PartnerRecord
		var typ, loc, rating sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Name, &typ, &loc, &rating); err != nil {
			return nil, err
		}
		rec.Type = strPtr(typ)
		rec.Location = strPtr(loc)
		rec.RatingRaw = strPtr(rating)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *Repo) ListPartnerIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listPartnerIDsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repo) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, getProfileSQL, userID)

	var p domain.Profile
	var name, avatar sql.NullString
	if err := row.Scan(&p.UserID, &name, &avatar); err != nil {
		if err == sql.ErrNoRows {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}
	p.DisplayName = strPtr(name)
	p.AvatarURL = strPtr(avatar)
	return p, nil
}
