package limiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newMockPG(t *testing.T, window time.Duration, maxFails int, blockFor time.Duration) (*PG, pgxmock.PgxPoolIface, time.Time) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	l := NewPGWithQuerier(mock, window, maxFails, blockFor)
	l.now = func() time.Time { return now }
	return l, mock, now
}

const (
	selectAttempt = `SELECT blocked_until, updated_at FROM login_attempts WHERE username=\$1 AND ip_hash=\$2`
	upsertFailure = `(?s)INSERT INTO login_attempts.*RETURNING fail_count`
	resetAttempt  = `(?s)INSERT INTO login_attempts.*DO UPDATE SET fail_count=0`
	setBlock      = `UPDATE login_attempts SET blocked_until=\$3 WHERE username=\$1 AND ip_hash=\$2`
)

func TestPG_Allow(t *testing.T) {
	l, mock, now := newMockPG(t, time.Minute, 3, 10*time.Minute)
	ctx := context.Background()
	ip := HashIP("10.0.0.1")

	mock.ExpectQuery(selectAttempt).WithArgs("alice", ip).WillReturnError(pgx.ErrNoRows)
	ok, wait, err := l.Allow(ctx, "alice", ip)
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, wait)

	mock.ExpectQuery(selectAttempt).WithArgs("alice", ip).
		WillReturnRows(pgxmock.NewRows([]string{"blocked_until", "updated_at"}).AddRow(now.Add(5*time.Minute), now))
	ok, wait, err = l.Allow(ctx, "alice", ip)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 5*time.Minute, wait)

	mock.ExpectQuery(selectAttempt).WithArgs("alice", ip).
		WillReturnRows(pgxmock.NewRows([]string{"blocked_until", "updated_at"}).AddRow(time.Unix(0, 0), now))
	ok, _, err = l.Allow(ctx, "alice", ip)
	require.NoError(t, err)
	require.True(t, ok)

	boom := errors.New("db down")
	mock.ExpectQuery(selectAttempt).WithArgs("alice", ip).WillReturnError(boom)
	ok, _, err = l.Allow(ctx, "alice", ip)
	require.ErrorIs(t, err, boom)
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPG_FailureBlocksAtThreshold(t *testing.T) {
	l, mock, now := newMockPG(t, time.Minute, 3, 10*time.Minute)
	ctx := context.Background()
	ip := HashIP("10.0.0.1")

	mock.ExpectQuery(upsertFailure).WithArgs("alice", ip, time.Minute).
		WillReturnRows(pgxmock.NewRows([]string{"fail_count"}).AddRow(2))
	blocked, _, err := l.Failure(ctx, "alice", ip)
	require.NoError(t, err)
	require.False(t, blocked)

	mock.ExpectQuery(upsertFailure).WithArgs("alice", ip, time.Minute).
		WillReturnRows(pgxmock.NewRows([]string{"fail_count"}).AddRow(3))
	mock.ExpectExec(setBlock).WithArgs("alice", ip, now.Add(10*time.Minute)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	blocked, wait, err := l.Failure(ctx, "alice", ip)
	require.NoError(t, err)
	require.True(t, blocked)
	require.Equal(t, 10*time.Minute, wait)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPG_FailureErrors(t *testing.T) {
	l, mock, _ := newMockPG(t, time.Minute, 1, time.Minute)
	ctx := context.Background()
	ip := HashIP("10.0.0.2")

	mock.ExpectQuery(upsertFailure).WithArgs("bob", ip, time.Minute).WillReturnError(errors.New("query error"))
	_, _, err := l.Failure(ctx, "bob", ip)
	require.Error(t, err)

	mock.ExpectQuery(upsertFailure).WithArgs("bob", ip, time.Minute).
		WillReturnRows(pgxmock.NewRows([]string{"fail_count"}).AddRow(1))
	mock.ExpectExec(setBlock).WithArgs("bob", ip, pgxmock.AnyArg()).WillReturnError(errors.New("exec error"))
	blocked, _, err := l.Failure(ctx, "bob", ip)
	require.Error(t, err)
	require.False(t, blocked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPG_Success(t *testing.T) {
	l, mock, _ := newMockPG(t, time.Minute, 3, time.Minute)
	ctx := context.Background()
	ip := HashIP("10.0.0.3")

	mock.ExpectExec(resetAttempt).WithArgs("carol", ip).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, l.Success(ctx, "carol", ip))

	mock.ExpectExec(resetAttempt).WithArgs("carol", ip).WillReturnError(errors.New("exec fail"))
	require.Error(t, l.Success(ctx, "carol", ip))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHashIP_Determinism(t *testing.T) {
	a := HashIP("1.2.3.4")
	b := HashIP("1.2.3.4")
	c := HashIP("5.6.7.8")
	if string(a) != string(b) || string(a) == string(c) || len(a) != 32 {
		t.Fatalf("hash mismatch/len: %d", len(a))
	}
}

func TestNop(t *testing.T) {
	var l Limiter = Nop{}
	ok, _, err := l.Allow(context.Background(), "u", nil)
	if !ok || err != nil {
		t.Fatalf("Nop must allow")
	}
	if blocked, _, _ := l.Failure(context.Background(), "u", nil); blocked {
		t.Fatalf("Nop must never block")
	}
}
