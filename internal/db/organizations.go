package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"frictionless/internal/models"
)

// CreateOrganization creates a new organization.
func (d *DB) CreateOrganization(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (name, slug, website)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := d.Pool.QueryRow(ctx, query, org.Name, org.Slug, org.Website).Scan(
		&org.ID, &org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSlug
		}
		return err
	}
	return nil
}

// GetOrganizationByID retrieves an organization by ID.
func (d *DB) GetOrganizationByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	query := `
		SELECT id, name, slug, website, created_at, updated_at
		FROM organizations WHERE id = $1
	`

	var org models.Organization
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.Slug, &org.Website, &org.CreatedAt, &org.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrgNotFound
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

// GetOrCreateOrganization returns the organization with the given slug,
// creating it on first sight. Used when provisioning users from an OIDC
// organization claim.
func (d *DB) GetOrCreateOrganization(ctx context.Context, slug string) (*models.Organization, error) {
	org, err := d.GetOrganizationBySlug(ctx, slug)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, ErrOrgNotFound) {
		return nil, err
	}

	org = &models.Organization{Name: slug, Slug: slug}
	if err := d.CreateOrganization(ctx, org); err != nil {
		// Lost a race with a concurrent first login for the same org.
		if errors.Is(err, ErrDuplicateSlug) {
			return d.GetOrganizationBySlug(ctx, slug)
		}
		return nil, err
	}
	return org, nil
}

// GetOrganizationBySlug retrieves an organization by its slug.
func (d *DB) GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	query := `
		SELECT id, name, slug, website, created_at, updated_at
		FROM organizations WHERE slug = $1
	`

	var org models.Organization
	err := d.Pool.QueryRow(ctx, query, slug).Scan(
		&org.ID, &org.Name, &org.Slug, &org.Website, &org.CreatedAt, &org.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrgNotFound
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}
