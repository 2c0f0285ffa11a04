// Package deploy holds the Railway deployment model shared by the data
// sources and the timeline UI.
package deploy

import (
	"context"
	"slices"
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

// LabelLayout formats a deployment's creation time in its label.
const LabelLayout = "Jan 2, 2006, 3:04pm"

// Ref identifies a project or environment in a picker list.
type Ref struct {
	ID   string
	Name string
}

// Event is one step of a deployment's lifecycle.
type Event struct {
	ID          string
	Step        string
	CreatedAt   time.Time
	CompletedAt time.Time
}

// Deployment is a single deployment of a service into an environment.
type Deployment struct {
	ID              string
	Status          Status
	CreatedAt       time.Time
	StatusUpdatedAt time.Time
	Events          []Event
}

// Range spans the earliest to the latest event creation time. Deployments
// without events have no range.
func (d Deployment) Range() (timeutil.Range, bool) {
	if len(d.Events) == 0 {
		return timeutil.Range{}, false
	}
	r := timeutil.NewRange(d.Events[0].CreatedAt, d.Events[0].CreatedAt)
	for _, ev := range d.Events[1:] {
		r = r.Union(timeutil.NewRange(ev.CreatedAt, ev.CreatedAt))
	}
	return r, true
}

// TimeRange makes Deployment a timeline item.
func (d Deployment) TimeRange() timeutil.Range {
	r, _ := d.Range()
	return r
}

// Label renders "Jan 4, 2023, 3:04pm - Took 2 hours" with the creation time
// in loc. Without a range only the creation time is shown.
func (d Deployment) Label(loc *time.Location) string {
	created := d.CreatedAt.In(loc).Format(LabelLayout)
	r, ok := d.Range()
	if !ok {
		return created
	}
	return created + " - " + timeutil.Took(r.Start, r.End)
}

// Service is a Railway service with its deployments in one environment.
type Service struct {
	ID          string
	Name        string
	CreatedAt   time.Time
	DeletedAt   time.Time
	Deployments []Deployment
}

// Deleted reports whether the service was removed from the project.
func (s Service) Deleted() bool { return !s.DeletedAt.IsZero() }

// Environment is the Railway environment being browsed.
type Environment struct {
	ID        string
	Name      string
	CreatedAt time.Time
	DeletedAt time.Time
}

// Project is the Railway project owning the services.
type Project struct {
	ID       string
	Name     string
	Services []Service
}

// Snapshot is everything the timeline shows at one point in time.
type Snapshot struct {
	Project     Project
	Environment Environment
	FetchedAt   time.Time

	// Range, when set, replaces the computed extent.
	Range *timeutil.Range
	// InitialViewport, when set, is shown instead of the whole range on
	// first load.
	InitialViewport *timeutil.Range
}

// Source produces snapshots. Implementations must honor ctx.
type Source interface {
	Load(ctx context.Context) (Snapshot, error)
	Describe() string
}

// Extent returns the range the timeline browses: the environment's creation
// time up to now, widened to cover every deployment. An explicit Range wins.
func (s Snapshot) Extent(now time.Time) timeutil.Range {
	if s.Range != nil {
		return *s.Range
	}
	start := s.Environment.CreatedAt
	if start.IsZero() || start.After(now) {
		start = now.AddDate(0, 0, -1)
	}
	out := timeutil.NewRange(start, now)
	for _, svc := range s.Project.Services {
		for _, d := range svc.Deployments {
			if r, ok := d.Range(); ok {
				out = out.Union(r)
			}
		}
	}
	return out
}

// Focus returns the range to show on first load.
func (s Snapshot) Focus(now time.Time) timeutil.Range {
	if s.InitialViewport != nil {
		return *s.InitialViewport
	}
	return s.Extent(now)
}

// Located is a deployment together with the row it is drawn in.
type Located struct {
	Service    int
	Deployment Deployment
}

// Timeline lists every deployment that has a range, ordered by start time.
func (s Snapshot) Timeline() []Located {
	var out []Located
	for i, svc := range s.Project.Services {
		for _, d := range svc.Deployments {
			if _, ok := d.Range(); ok {
				out = append(out, Located{Service: i, Deployment: d})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Located) int {
		return a.Deployment.TimeRange().Start.Compare(b.Deployment.TimeRange().Start)
	})
	return out
}

// Find returns the deployment with id and the index of its service.
func (s Snapshot) Find(id string) (Located, bool) {
	for i, svc := range s.Project.Services {
		for _, d := range svc.Deployments {
			if d.ID == id {
				return Located{Service: i, Deployment: d}, true
			}
		}
	}
	return Located{}, false
}

// CountByStatus tallies deployments per status across all services.
func (s Snapshot) CountByStatus() map[Status]int {
	counts := map[Status]int{}
	for _, svc := range s.Project.Services {
		for _, d := range svc.Deployments {
			counts[d.Status]++
		}
	}
	return counts
}

// Pick returns the only ref when exactly one is available.
func Pick(refs []Ref) (Ref, bool) {
	if len(refs) != 1 {
		return Ref{}, false
	}
	return refs[0], true
}
