package database

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// A saturated pool must fail the call with a deadline error instead of
// parking it until the caller disconnects, even when the caller's context
// carries no deadline of its own.
func TestStore_SaturatedPoolTimesOut(t *testing.T) {
	ctx := context.Background()
	pool := testStore.GetPool()

	maxConns := pool.Stat().MaxConns()
	held := make([]*pgxpool.Conn, 0, maxConns)
	for i := int32(0); i < maxConns; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		held = append(held, conn)
	}
	defer func() {
		for _, conn := range held {
			conn.Release()
		}
	}()

	start := time.Now()
	_, err := testStore.CountProducts(ctx)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.GreaterOrEqual(t, elapsed, queryTimeout-time.Second)
	require.Less(t, elapsed, queryTimeout+5*time.Second)
}
