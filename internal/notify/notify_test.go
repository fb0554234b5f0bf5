package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndExpire(t *testing.T) {
	c := NewCenter(30 * time.Millisecond)
	defer c.Close()

	toast := c.Success(MsgRecipeAdded)
	assert.Equal(t, KindSuccess, toast.Kind)
	assert.Equal(t, toast.CreatedAt.Add(30*time.Millisecond), toast.ExpiresAt)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, MsgRecipeAdded, active[0].Message)

	assert.Eventually(t, func() bool {
		return len(c.Active()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestDismiss(t *testing.T) {
	c := NewCenter(time.Hour)
	defer c.Close()

	a := c.Success(MsgInvoiceUploaded)
	b := c.Error("Could not save")

	assert.True(t, c.Dismiss(a.ID))
	assert.False(t, c.Dismiss(a.ID))
	assert.False(t, c.Dismiss("missing"))

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, b.ID, active[0].ID)
	assert.Equal(t, KindError, active[0].Kind)
}

func TestActiveOrder(t *testing.T) {
	c := NewCenter(time.Hour)
	defer c.Close()

	base := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	step := 0
	c.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	first := c.Success(MsgInvoiceRemoved)
	second := c.Push(KindInfo, MsgDataCopied)

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
}

func TestCloseCancelsTimers(t *testing.T) {
	c := NewCenter(10 * time.Millisecond)
	c.Success(MsgRecipeDeleted)
	c.Close()

	assert.Empty(t, c.Active())
	c.Success(MsgRecipeAdded)
	assert.Empty(t, c.Active())

	// expired timers after close must not panic or resurrect anything
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, c.Active())
}

func TestDefaultDuration(t *testing.T) {
	c := NewCenter(0)
	defer c.Close()
	b := c.Success(MsgRecipeAdded)
	assert.Equal(t, DefaultDuration, b.ExpiresAt.Sub(b.CreatedAt))
}
