package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acehidan/bingo/domain"
)

type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(ctx context.Context, connString string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	return &PostgresRepo{pool: pool}, nil
}

func (r *PostgresRepo) Close() {
	r.pool.Close()
}

func (r *PostgresRepo) UpsertListing(ctx context.Context, listing domain.RoomListing) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO room_listings(id, name, player_count, status, is_single_player)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    player_count = EXCLUDED.player_count,
		    status = EXCLUDED.status,
		    is_single_player = EXCLUDED.is_single_player,
		    updated_at = now()`,
		listing.ID, listing.Name, listing.PlayerCount, listing.Status, listing.IsSinglePlayer)

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return nil
}

func (r *PostgresRepo) DeleteListing(ctx context.Context, roomID string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM room_listings WHERE id = $1", roomID)

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	return nil
}

func (r *PostgresRepo) GetListing(ctx context.Context, roomID string) (domain.RoomListing, error) {
	listing := domain.RoomListing{ID: roomID}

	row := r.pool.QueryRow(ctx,
		"SELECT name, player_count, status, is_single_player FROM room_listings WHERE id = $1", roomID)

	err := row.Scan(&listing.Name, &listing.PlayerCount, &listing.Status, &listing.IsSinglePlayer)

	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.RoomListing{}, domain.ErrListingNotFound
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return domain.RoomListing{}, err
		default:
			return domain.RoomListing{}, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
	}

	return listing, nil
}

func (r *PostgresRepo) ListListings(ctx context.Context) ([]domain.RoomListing, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, name, player_count, status, is_single_player FROM room_listings ORDER BY updated_at DESC")
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
	defer rows.Close()

	listings := []domain.RoomListing{}
	for rows.Next() {
		var l domain.RoomListing
		if err := rows.Scan(&l.ID, &l.Name, &l.PlayerCount, &l.Status, &l.IsSinglePlayer); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}

	return listings, nil
}
