package costmodel

import (
	"fmt"
	"maps"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	// created counts every resource constructed by this process
	created atomic.Int64

	subscriptionID = uuid.NewString()

	now = time.Now
)

// TotalCreated returns the number of resources constructed so far
func TotalCreated() int64 {
	return created.Load()
}

type base struct {
	name          string
	resourceGroup string
	location      string
	tags          map[string]string
	createdAt     time.Time
	status        Status
	id            string
}

func newBase(kind Kind, c Common) base {
	created.Add(1)

	tags := make(map[string]string, len(c.Tags))
	maps.Copy(tags, c.Tags)

	return base{
		name:          c.Name,
		resourceGroup: c.ResourceGroup,
		location:      c.Location,
		tags:          tags,
		createdAt:     now(),
		status:        StatusRunning,
		id:            fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s", subscriptionID, c.ResourceGroup, kind.Namespace(), c.Name),
	}
}

func (b *base) Name() string          { return b.name }
func (b *base) ResourceGroup() string { return b.resourceGroup }
func (b *base) Location() string      { return b.location }
func (b *base) ID() string            { return b.id }
func (b *base) Status() Status        { return b.status }
func (b *base) CreatedAt() time.Time  { return b.createdAt }

// Tags returns a copy of the resource tags
func (b *base) Tags() map[string]string {
	return maps.Clone(b.tags)
}

func (b *base) AddTag(key, value string) {
	b.tags[key] = value
}

func (b *base) Start() bool {
	if b.status == StatusRunning {
		return false
	}
	b.status = StatusRunning
	return true
}

func (b *base) Stop() bool {
	if b.status == StatusStopped {
		return false
	}
	b.status = StatusStopped
	return true
}

func describe(kind Kind, b *base) string {
	return fmt.Sprintf("%s(name=%q, status=%q)", kind, b.name, b.status)
}
