package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/database"
	"github.com/smarttravellers/tripplanner/pkg/plan_overlay"
	"github.com/smarttravellers/tripplanner/pkg/planner"
)

// ErrDuplicateReference is returned by Store when the reference is already taken.
var ErrDuplicateReference = errors.New("booking reference already exists")

const uniqueViolation = "23505"

type Repository interface {
	Store(ctx context.Context, sessionId string, booking Booking) error
	Get(ctx context.Context, sessionId string, bookingId string) (Booking, error)
	// List returns the session's bookings, oldest first.
	List(ctx context.Context, sessionId string) ([]Booking, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookingColumns = []string{
	"id", "reference", "plan_id", "full_name", "email", "phone", "amount",
	"confirmation_code", "status", "details", "created_at",
}

type RepositoryImpl struct {
	db database.Querier
}

func NewRepository(db database.Querier) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

type bookingRow struct {
	Id               string    `db:"id"`
	Reference        string    `db:"reference"`
	PlanId           string    `db:"plan_id"`
	FullName         string    `db:"full_name"`
	Email            string    `db:"email"`
	Phone            string    `db:"phone"`
	Amount           int64     `db:"amount"`
	ConfirmationCode string    `db:"confirmation_code"`
	Status           string    `db:"status"`
	Details          []byte    `db:"details"`
	CreatedAt        time.Time `db:"created_at"`
}

// details holds the parts of a booking that are only read back as a whole.
type details struct {
	DestinationId   string                    `json:"destinationId"`
	DestinationName string                    `json:"destinationName"`
	StartDate       time.Time                 `json:"startDate"`
	Duration        int                       `json:"duration"`
	Costs           planner.CostBreakdown     `json:"costs"`
	Adjustments     []plan_overlay.Adjustment `json:"adjustments"`
}

func (r *RepositoryImpl) Store(ctx context.Context, sessionId string, booking Booking) error {
	document, err := json.Marshal(details{
		DestinationId:   booking.DestinationId,
		DestinationName: booking.DestinationName,
		StartDate:       booking.StartDate,
		Duration:        booking.Duration,
		Costs:           booking.Costs,
		Adjustments:     booking.Adjustments,
	})
	if err != nil {
		return fmt.Errorf("could not encode booking %s: %w", booking.Id, err)
	}

	query, args, err := psql.Insert("booking").
		Columns(append([]string{"session_id"}, bookingColumns...)...).
		Values(sessionId, booking.Id, booking.Reference, booking.PlanId, booking.FullName, booking.Email,
			booking.Phone, booking.Amount, booking.ConfirmationCode, string(booking.Status), document, booking.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("could not build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateReference, booking.Reference)
		}
		err := fmt.Errorf("could not store booking %s: %w", booking.Id, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) Get(ctx context.Context, sessionId string, bookingId string) (Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("booking").
		Where(sq.Eq{"session_id": sessionId, "id": bookingId}).
		ToSql()
	if err != nil {
		return Booking{}, fmt.Errorf("could not build query: %w", err)
	}

	var row bookingRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return Booking{}, ErrBookingNotFound
		}
		err := fmt.Errorf("could not query booking %s: %w", bookingId, err)
		log.Error(err)
		return Booking{}, err
	}
	return rowToBooking(row)
}

func (r *RepositoryImpl) List(ctx context.Context, sessionId string) ([]Booking, error) {
	query, args, err := psql.Select(bookingColumns...).
		From("booking").
		Where(sq.Eq{"session_id": sessionId}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("could not build query: %w", err)
	}

	var rows []bookingRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		err := fmt.Errorf("could not query bookings: %w", err)
		log.Error(err)
		return nil, err
	}

	bookings := make([]Booking, 0, len(rows))
	for _, row := range rows {
		booking, err := rowToBooking(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func rowToBooking(row bookingRow) (Booking, error) {
	var d details
	if err := json.Unmarshal(row.Details, &d); err != nil {
		return Booking{}, fmt.Errorf("could not decode details of booking %s: %w", row.Id, err)
	}
	return Booking{
		Id:               row.Id,
		Reference:        row.Reference,
		PlanId:           row.PlanId,
		FullName:         row.FullName,
		Email:            row.Email,
		Phone:            row.Phone,
		DestinationId:    d.DestinationId,
		DestinationName:  d.DestinationName,
		StartDate:        d.StartDate,
		Duration:         d.Duration,
		Amount:           row.Amount,
		Costs:            d.Costs,
		Adjustments:      d.Adjustments,
		ConfirmationCode: row.ConfirmationCode,
		Status:           Status(row.Status),
		CreatedAt:        row.CreatedAt,
	}, nil
}
