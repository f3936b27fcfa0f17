package booking

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/field-booking-backend/internal/billing"
	"github.com/sportbook/field-booking-backend/internal/pricing"
)

// testDB connects to the database named by TEST_DB_DSN, or skips the test.
// The schema from migrations/001_init.sql must be applied.
func testDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping database test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// fixture seeds one user, field, schedule, slot and price rule and returns
// their ids. Everything is removed again in test cleanup.
type fixture struct {
	userID      int64
	fieldID     int64
	scheduleID  int64
	typeFieldID int64
	capacity    int
}

func seedFixture(t *testing.T, pool *pgxpool.Pool, capacity int, dayOfWeek int) fixture {
	t.Helper()
	ctx := context.Background()

	var f fixture
	f.capacity = capacity

	err := pool.QueryRow(ctx,
		`INSERT INTO public.users (username, email, password, role_id)
		 VALUES ('tester', 'tester+' || clock_timestamp()::text || '@example.com', 'x', 1)
		 RETURNING id`).Scan(&f.userID)
	require.NoError(t, err)

	var locationID, sportTypeID int64
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO public.locations (name, description) VALUES ('test loc', '') RETURNING id`).
		Scan(&locationID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO public.field_types (name, description) VALUES ('test type', '') RETURNING id`).
		Scan(&f.typeFieldID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO public.sport_types (name, description) VALUES ('test sport', '') RETURNING id`).
		Scan(&sportTypeID))

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO public.fields
		 (name, address, contact, description, open, close, id_type_field, id_type_sport, id_location, amount_available, status)
		 VALUES ('test field', 'addr', 'contact', '', '06:00', '23:00', $1, $2, $3, 10, 'available')
		 RETURNING id`, f.typeFieldID, sportTypeID, locationID).Scan(&f.fieldID))

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO public.schedules (time_from, time_to) VALUES ('08:00', '10:00') RETURNING id`).
		Scan(&f.scheduleID))

	_, err = pool.Exec(ctx,
		`INSERT INTO public.schedule_for_field (id_schedule, id_type, id_field, amount_available, status)
		 VALUES ($1, $2, $3, $4, 'active')`, f.scheduleID, f.typeFieldID, f.fieldID, capacity)
	require.NoError(t, err)

	_, err = pool.Exec(ctx,
		`INSERT INTO public.field_price (id_type_field, day_of_week, start_time, end_time, price)
		 VALUES ($1, $2, '06:00', '23:00', 150)`, f.typeFieldID, dayOfWeek)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM public.bill WHERE id_booking IN (SELECT id FROM public.booking WHERE id_field = $1)`, f.fieldID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.booking WHERE id_field = $1`, f.fieldID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.field_price WHERE id_type_field = $1`, f.typeFieldID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.schedule_for_field WHERE id_field = $1`, f.fieldID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.schedules WHERE id = $1`, f.scheduleID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.fields WHERE id = $1`, f.fieldID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.sport_types WHERE id = $1`, sportTypeID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.field_types WHERE id = $1`, f.typeFieldID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.locations WHERE id = $1`, locationID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.users WHERE id = $1`, f.userID)
	})

	return f
}

func newDBRepo(pool *pgxpool.Pool) Repository {
	return NewPgxRepository(pool, billing.NewPgxIssuer(pool), pricing.NewPgxCatalog(pool))
}

func TestCreateEnforcesSlotCapacity(t *testing.T) {
	pool := testDB(t)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday
	f := seedFixture(t, pool, 2, 1)
	repo := newDBRepo(pool)
	ctx := context.Background()

	first := &Booking{
		FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: f.userID,
		Time: "08:00 - 10:00", Hour: 2, Date: date,
	}
	require.NoError(t, repo.Create(ctx, first))
	require.NotZero(t, first.ID)

	// Capacity is exhausted, the next booking must be rejected.
	second := &Booking{
		FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: f.userID,
		Time: "08:00 - 10:00", Hour: 1, Date: date,
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrNoCapacity)

	// A different date starts from a clean slate.
	second.Date = date.AddDate(0, 0, 7)
	assert.NoError(t, repo.Create(ctx, second))
}

func TestAmendIssuesBillAndCancelsPending(t *testing.T) {
	pool := testDB(t)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	f := seedFixture(t, pool, 10, 1)
	repo := newDBRepo(pool)
	issuer := billing.NewPgxIssuer(pool)
	ctx := context.Background()

	b := &Booking{
		FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: f.userID,
		Time: "08:00 - 10:00", Hour: 2, Date: date,
	}
	require.NoError(t, repo.Create(ctx, b))

	updated, bill, err := repo.Amend(ctx, AmendParams{
		BookingID:     b.ID,
		Time:          "10:00 - 12:00",
		Hour:          2,
		TimeFrom:      "10:00",
		TimeTo:        "12:00",
		TransactionID: billing.NewTransactionID(),
	})
	require.NoError(t, err)

	assert.Equal(t, "10:00 - 12:00", updated.Time)
	assert.Equal(t, billing.StatusPending, bill.Status)
	assert.Equal(t, 300.0, bill.Amount) // 150/hour x 2

	// A second amend cancels the first bill and issues a fresh one.
	_, bill2, err := repo.Amend(ctx, AmendParams{
		BookingID:     b.ID,
		Time:          "12:00 - 13:00",
		Hour:          1,
		TimeFrom:      "12:00",
		TimeTo:        "13:00",
		TransactionID: billing.NewTransactionID(),
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, bill2.Amount)

	bills, err := issuer.ListByBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, bills, 2)

	statuses := map[string]int{}
	for _, bl := range bills {
		statuses[bl.Status]++
	}
	assert.Equal(t, 1, statuses[billing.StatusPending])
	assert.Equal(t, 1, statuses[billing.StatusCancelled])
}

func TestAmendRollsBackWhenNoPriceRuleCovers(t *testing.T) {
	pool := testDB(t)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	f := seedFixture(t, pool, 10, 1)
	repo := newDBRepo(pool)
	issuer := billing.NewPgxIssuer(pool)
	ctx := context.Background()

	b := &Booking{
		FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: f.userID,
		Time: "08:00 - 10:00", Hour: 2, Date: date,
	}
	require.NoError(t, repo.Create(ctx, b))

	// Establish a pending bill through a successful amend first.
	_, _, err := repo.Amend(ctx, AmendParams{
		BookingID: b.ID, Time: "10:00 - 12:00", Hour: 2,
		TimeFrom: "10:00", TimeTo: "12:00",
		TransactionID: billing.NewTransactionID(),
	})
	require.NoError(t, err)

	// The seeded rule covers 06:00-23:00, so 23:00-23:30 has no price.
	_, _, err = repo.Amend(ctx, AmendParams{
		BookingID: b.ID, Time: "23:00 - 23:30", Hour: 0.5,
		TimeFrom: "23:00", TimeTo: "23:30",
		TransactionID: billing.NewTransactionID(),
	})
	var priceErr *pricing.NotFoundError
	require.ErrorAs(t, err, &priceErr)

	// The failed amend must leave the booking and pending bill untouched.
	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00 - 12:00", got.Time)
	assert.Equal(t, 2.0, got.Hour)

	bills, err := issuer.ListByBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, billing.StatusPending, bills[0].Status)
}

func TestListByUserScopesAndOrders(t *testing.T) {
	pool := testDB(t)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday
	f := seedFixture(t, pool, 10, 1)
	repo := newDBRepo(pool)
	ctx := context.Background()

	var otherUserID int64
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO public.users (username, email, password, role_id)
		 VALUES ('other', 'other+' || clock_timestamp()::text || '@example.com', 'x', 1)
		 RETURNING id`).Scan(&otherUserID))
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM public.booking WHERE id_user = $1`, otherUserID)
		_, _ = pool.Exec(ctx, `DELETE FROM public.users WHERE id = $1`, otherUserID)
	})

	laterDate := date.AddDate(0, 0, 7)
	seed := []*Booking{
		{FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: f.userID, Time: "10:00 - 12:00", Hour: 2, Date: date},
		{FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: f.userID, Time: "08:00 - 10:00", Hour: 2, Date: date},
		{FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: f.userID, Time: "09:00 - 10:00", Hour: 1, Date: laterDate},
		{FieldID: f.fieldID, ScheduleID: f.scheduleID, UserID: otherUserID, Time: "08:00 - 10:00", Hour: 2, Date: date},
	}
	for _, b := range seed {
		require.NoError(t, repo.Create(ctx, b))
	}

	got, err := repo.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Only the caller's bookings, newest date first, earlier window first
	// within a date.
	for _, b := range got {
		assert.Equal(t, f.userID, b.UserID)
	}
	assert.Equal(t, laterDate.Format("2006-01-02"), got[0].Date.Format("2006-01-02"))
	assert.Equal(t, "09:00 - 10:00", got[0].Time)
	assert.Equal(t, "08:00 - 10:00", got[1].Time)
	assert.Equal(t, "10:00 - 12:00", got[2].Time)
}

func TestAmendMissingBooking(t *testing.T) {
	pool := testDB(t)
	repo := newDBRepo(pool)

	_, _, err := repo.Amend(context.Background(), AmendParams{
		BookingID: -1, Time: "10:00 - 12:00", Hour: 2,
		TimeFrom: "10:00", TimeTo: "12:00",
		TransactionID: billing.NewTransactionID(),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
