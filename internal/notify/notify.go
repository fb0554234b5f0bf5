// Package notify keeps short lived banners reporting the outcome of a
// mutation. Each banner removes itself after a fixed duration.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// DefaultDuration is how long a banner stays visible
const DefaultDuration = 3 * time.Second

// Kind is the banner style
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Messages produced by the mutations
const (
	MsgRecipeAdded     = "Recipe added successfully"
	MsgRecipeDeleted   = "Recipe deleted successfully"
	MsgInvoiceUploaded = "Invoice uploaded successfully"
	MsgInvoiceRemoved  = "Invoice removed"
	MsgDataCopied      = "Data copied to clipboard"
	MsgInvoiceImageBad = "Invoice image could not be uploaded"
)

// Toast is a single banner
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type entry struct {
	toast Toast
	timer *time.Timer
}

// Center holds the live banners
type Center struct {
	mu       sync.Mutex
	duration time.Duration
	toasts   map[string]*entry
	closed   bool
	now      func() time.Time
}

// NewCenter creates a center whose banners expire after d. A non-positive
// d selects DefaultDuration.
func NewCenter(d time.Duration) *Center {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Center{
		duration: d,
		toasts:   make(map[string]*entry),
		now:      time.Now,
	}
}

// Success shows a success banner
func (c *Center) Success(msg string) Toast {
	return c.Push(KindSuccess, msg)
}

// Error shows an error banner
func (c *Center) Error(msg string) Toast {
	return c.Push(KindError, msg)
}

// Push shows a banner and schedules its removal. After Close the banner is
// returned but not kept.
func (c *Center) Push(kind Kind, msg string) Toast {
	now := c.now()
	t := Toast{
		ID:        uuid.NewString(),
		Message:   msg,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(c.duration),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return t
	}
	id := t.ID
	c.toasts[id] = &entry{
		toast: t,
		timer: time.AfterFunc(c.duration, func() { c.expire(id) }),
	}
	log.WithFields(logrus.Fields{"id": id, "type": kind}).Debug(msg)
	return t
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.toasts, id)
}

// Dismiss removes a banner early and cancels its timer. It reports whether
// the banner was still live.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.toasts[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(c.toasts, id)
	return true
}

// Active lists the live banners, oldest first
func (c *Center) Active() []Toast {
	c.mu.Lock()
	out := make([]Toast, 0, len(c.toasts))
	for _, e := range c.toasts {
		out = append(out, e.toast)
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Close cancels every pending timer and drops all banners. Later pushes are
// not kept.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.toasts {
		e.timer.Stop()
		delete(c.toasts, id)
	}
	c.closed = true
}
