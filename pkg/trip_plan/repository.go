package trip_plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	log "github.com/sirupsen/logrus"
	"github.com/smarttravellers/tripplanner/internal/database"
	"github.com/smarttravellers/tripplanner/pkg/planner"
)

var ErrPlanNotFound = errors.New("plan not found")

// Repository stores generated plans per session. Plans are immutable, so there is no update.
type Repository interface {
	Store(ctx context.Context, sessionId string, plan planner.TripPlan) error
	Get(ctx context.Context, sessionId string, planId string) (planner.TripPlan, error)
	// List returns the session's plans, oldest first.
	List(ctx context.Context, sessionId string) ([]planner.TripPlan, error)
	Delete(ctx context.Context, sessionId string, planId string) (bool, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type RepositoryImpl struct {
	db database.Querier
}

func NewRepository(db database.Querier) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

type planRow struct {
	Plan []byte `db:"plan"`
}

func (r *RepositoryImpl) Store(ctx context.Context, sessionId string, plan planner.TripPlan) error {
	document, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("could not encode plan %s: %w", plan.Id, err)
	}

	query, args, err := psql.Insert("trip_plan").
		Columns("id", "session_id", "destination_id", "start_date", "duration", "budget", "plan", "created_at").
		Values(plan.Id, sessionId, plan.DestinationId, plan.StartDate, plan.Duration, plan.Budget, document, plan.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("could not build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		err := fmt.Errorf("could not store plan %s: %w", plan.Id, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) Get(ctx context.Context, sessionId string, planId string) (planner.TripPlan, error) {
	query, args, err := psql.Select("plan").
		From("trip_plan").
		Where(sq.Eq{"session_id": sessionId, "id": planId}).
		ToSql()
	if err != nil {
		return planner.TripPlan{}, fmt.Errorf("could not build query: %w", err)
	}

	var row planRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return planner.TripPlan{}, ErrPlanNotFound
		}
		err := fmt.Errorf("could not query plan %s: %w", planId, err)
		log.Error(err)
		return planner.TripPlan{}, err
	}
	return decodePlan(row)
}

func (r *RepositoryImpl) List(ctx context.Context, sessionId string) ([]planner.TripPlan, error) {
	query, args, err := psql.Select("plan").
		From("trip_plan").
		Where(sq.Eq{"session_id": sessionId}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("could not build query: %w", err)
	}

	var rows []planRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		err := fmt.Errorf("could not query plans: %w", err)
		log.Error(err)
		return nil, err
	}

	plans := make([]planner.TripPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := decodePlan(row)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, sessionId string, planId string) (bool, error) {
	query, args, err := psql.Delete("trip_plan").
		Where(sq.Eq{"session_id": sessionId, "id": planId}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("could not build query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not delete plan %s: %w", planId, err)
		log.Error(err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func decodePlan(row planRow) (planner.TripPlan, error) {
	var plan planner.TripPlan
	if err := json.Unmarshal(row.Plan, &plan); err != nil {
		return planner.TripPlan{}, fmt.Errorf("could not decode stored plan: %w", err)
	}
	return plan, nil
}
